// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono_test

import (
	"context"
	"math"
	"testing"
	"time"

	"cloudeng.io/chrono"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func losAngeles(t *testing.T) chrono.TimeZone {
	t.Helper()
	tz, err := chrono.LoadTimeZone(context.Background(), "America/Los_Angeles")
	require.NoError(t, err)
	return tz
}

func TestSysTimeElapsed(t *testing.T) {
	mdt := chrono.MustNewDateTime
	for _, tz := range []chrono.TimeZone{chrono.UTC(), mustSimpleTimeZone(t, -5*chrono.Hour)} {
		a := chrono.MustNewSysTime(mdt(2015, 12, 31, 23, 59, 59), tz)
		b := chrono.MustNewSysTime(mdt(2016, 1, 1, 0, 0, 0), tz)
		assert.True(t, a.Add(chrono.Second).Equal(b), tz.Name())
		assert.Equal(t, b, a.Add(chrono.Second), tz.Name())
		assert.Equal(t, chrono.Second, b.Sub(a))
		assert.Equal(t, a, b.Add(-chrono.Second))
	}

	epoch := chrono.MustNewSysTime(mdt(1970, 1, 1, 0, 0, 0), chrono.UTC())
	assert.Equal(t, int64(621_355_968_000_000_000), epoch.StdTime())
	assert.Equal(t, int64(0), epoch.ToUnixTime())

	var zero chrono.SysTime
	assert.Equal(t, int64(0), zero.StdTime())
	assert.Equal(t, "0001-01-01T00:00:00Z", zero.ToISOExtString())
	assert.Equal(t, "UTC", zero.TimeZone().Name())
}

func TestSysTimeDST(t *testing.T) {
	la := losAngeles(t)
	st := chrono.MustNewSysTime(chrono.MustNewDateTime(2024, 3, 9, 12, 0, 0), la)
	assert.False(t, st.DSTInEffect())
	assert.Equal(t, -8*chrono.Hour, st.UTCOffset())

	rolled, err := st.Roll(chrono.Days, 1, chrono.Overflow)
	require.NoError(t, err)
	added := st.Add(24 * chrono.Hour)

	assert.False(t, rolled.Equal(added))
	assert.Equal(t, chrono.Hour, added.Sub(rolled))
	assert.Equal(t, 23*chrono.Hour, rolled.Sub(st))
	assert.Equal(t, chrono.MustNewDateTime(2024, 3, 10, 12, 0, 0), rolled.DateTime())
	assert.Equal(t, chrono.MustNewDateTime(2024, 3, 10, 13, 0, 0), added.DateTime())
	assert.True(t, rolled.DSTInEffect())
	assert.Equal(t, -7*chrono.Hour, rolled.UTCOffset())
	assert.Equal(t, "PDT", la.DisplayName(rolled.DSTInEffect()))
	assert.Equal(t, "PST", la.DisplayName(st.DSTInEffect()))

	byUnits, err := st.AddUnits(chrono.Hours, 24, chrono.Overflow)
	require.NoError(t, err)
	assert.Equal(t, rolled, byUnits)

	// Falling back in November produces a 25 hour day.
	st = chrono.MustNewSysTime(chrono.MustNewDateTime(2024, 11, 2, 12, 0, 0), la)
	next, err := st.AddUnits(chrono.Days, 1, chrono.Overflow)
	require.NoError(t, err)
	assert.Equal(t, 25*chrono.Hour, next.Sub(st))
	assert.Equal(t, "2024-11-03T12:00:00-08:00", next.ToISOExtString())
	assert.Equal(t, "20241102T120000-0700", st.ToISOString())
}

func TestSysTimeSetters(t *testing.T) {
	tz := mustSimpleTimeZone(t, 5*chrono.Hour+30*chrono.Minute)
	st, err := chrono.NewSysTimeFrac(chrono.MustNewDateTime(2000, 1, 31, 10, 20, 30), 1234567, tz)
	require.NoError(t, err)
	orig := st

	require.ErrorIs(t, st.SetMonth(chrono.February), chrono.ErrInvalidDate)
	require.ErrorIs(t, st.SetHour(24), chrono.ErrInvalidTime)
	require.ErrorIs(t, st.SetFracSecs(chrono.Second), chrono.ErrInvalidTime)
	require.ErrorIs(t, st.SetYearBC(0), chrono.ErrInvalidYearBC)
	require.ErrorIs(t, st.SetDayOfYear(367), chrono.ErrInvalidDate)
	assert.Equal(t, orig, st)

	require.NoError(t, st.SetDay(29))
	require.NoError(t, st.SetMonth(chrono.February))
	require.NoError(t, st.SetYear(2004))
	require.NoError(t, st.SetHour(23))
	require.NoError(t, st.SetMinute(0))
	require.NoError(t, st.SetSecond(1))
	assert.Equal(t, chrono.MustNewDateTime(2004, 2, 29, 23, 0, 1), st.DateTime())
	assert.Equal(t, chrono.Duration(1234567), st.FracSecs())
	assert.Equal(t, "2004-02-29T23:00:01.1234567+05:30", st.ToISOExtString())
	assert.Equal(t, "2004-02-29T17:30:01.1234567Z", st.UTC().ToISOExtString())

	require.NoError(t, st.SetFracSecs(5000000))
	assert.Equal(t, "20040229T230001.5+0530", st.ToISOString())

	require.ErrorIs(t, st.SetYearBC(4), chrono.ErrInvalidDate)
	require.NoError(t, st.SetYearBC(5))
	assert.Equal(t, -4, st.Year())
	require.NoError(t, st.SetDayOfYear(1))
	assert.Equal(t, chrono.MustNewDate(-4, 1, 1), st.Date())

	require.NoError(t, st.SetDayOfGregorianCal(730120))
	assert.Equal(t, chrono.MustNewDate(2000, 1, 1), st.Date())
	assert.Equal(t, chrono.MustNewTimeOfDay(23, 0, 1), st.TimeOfDay())
}

func TestSysTimeAddRoll(t *testing.T) {
	st, err := chrono.NewSysTimeFrac(chrono.MustNewDateTime(2000, 1, 31, 23, 59, 59), 999*chrono.Millisecond, chrono.UTC())
	require.NoError(t, err)

	for i, tc := range []struct {
		unit   chrono.Unit
		delta  int
		roll   bool
		policy chrono.AllowDayOverflow
		want   string
	}{
		{chrono.Months, 1, false, chrono.Overflow, "2000-03-02T23:59:59.999Z"},
		{chrono.Months, 1, false, chrono.Clamp, "2000-02-29T23:59:59.999Z"},
		{chrono.Months, 11, true, chrono.Clamp, "2000-12-31T23:59:59.999Z"},
		{chrono.Years, -1, false, chrono.Overflow, "1999-01-31T23:59:59.999Z"},
		{chrono.Days, 1, true, chrono.Overflow, "2000-01-01T23:59:59.999Z"},
		{chrono.Hours, 1, true, chrono.Overflow, "2000-01-31T00:59:59.999Z"},
		{chrono.Seconds, 1, true, chrono.Overflow, "2000-01-31T23:59:00.999Z"},
		{chrono.Seconds, 1, false, chrono.Overflow, "2000-02-01T00:00:00.999Z"},
		{chrono.Msecs, 2, true, chrono.Overflow, "2000-01-31T23:59:59.001Z"},
		{chrono.Msecs, 2, false, chrono.Overflow, "2000-02-01T00:00:00.001Z"},
		{chrono.Usecs, -999000, true, chrono.Overflow, "2000-01-31T23:59:59Z"},
		{chrono.Hnsecs, 10, true, chrono.Overflow, "2000-01-31T23:59:59.999001Z"},
		{chrono.Weeks, -1, false, chrono.Overflow, "2000-01-24T23:59:59.999Z"},
	} {
		var got chrono.SysTime
		var err error
		if tc.roll {
			got, err = st.Roll(tc.unit, tc.delta, tc.policy)
		} else {
			got, err = st.AddUnits(tc.unit, tc.delta, tc.policy)
		}
		require.NoError(t, err, i)
		assert.Equal(t, tc.want, got.ToISOExtString(), i)
	}

	_, err = st.Roll(chrono.Weeks, 1, chrono.Overflow)
	require.ErrorIs(t, err, chrono.ErrInvalidUnit)

	eom := st.EndOfMonth()
	assert.Equal(t, "2000-01-31T23:59:59.9999999Z", eom.ToISOExtString())
	next := eom.Add(chrono.Hnsec)
	assert.Equal(t, "2000-02-01T00:00:00Z", next.ToISOExtString())
}

func TestSysTimeCompare(t *testing.T) {
	la := losAngeles(t)
	utc := chrono.MustNewSysTime(chrono.MustNewDateTime(2024, 7, 1, 19, 0, 0), chrono.UTC())
	local := utc.In(la)
	assert.True(t, utc.Equal(local))
	assert.NotEqual(t, utc, local)
	assert.Equal(t, 0, utc.Compare(local))
	assert.Equal(t, utc.StdTime(), local.StdTime())
	assert.Equal(t, chrono.MustNewDateTime(2024, 7, 1, 12, 0, 0), local.DateTime())
	assert.True(t, local.DSTInEffect())

	later := local.Add(chrono.Hnsec)
	assert.True(t, later.After(utc))
	assert.True(t, utc.Before(later))
	assert.Equal(t, -1, utc.Compare(later))
	assert.Equal(t, 1, later.Compare(utc))

	keys := map[int64]bool{utc.StdTime(): true}
	assert.True(t, keys[local.StdTime()])

	assert.Equal(t, int64(math.MinInt64), chrono.MinSysTime().StdTime())
	assert.Equal(t, int64(math.MaxInt64), chrono.MaxSysTime().StdTime())
	assert.True(t, chrono.MinSysTime().Before(chrono.SysTimeFromStdTime(0, la)))
	assert.True(t, chrono.MaxSysTime().After(local))
}

func TestSysTimeNegative(t *testing.T) {
	st := chrono.SysTimeFromStdTime(-1, chrono.UTC())
	assert.Equal(t, chrono.MustNewDateTime(0, 12, 31, 23, 59, 59), st.DateTime())
	assert.Equal(t, chrono.Duration(9999999), st.FracSecs())
	assert.Equal(t, "0000-12-31T23:59:59.9999999Z", st.ToISOExtString())

	st = chrono.MustNewSysTime(chrono.MustNewDateTime(-4, 1, 5, 0, 0, 2), chrono.UTC())
	assert.Equal(t, "-0004-01-05T00:00:02Z", st.ToISOExtString())
	bc, err := st.YearBC()
	require.NoError(t, err)
	assert.Equal(t, 5, bc)
}

func TestUnixTime(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 86399, -86401, math.MaxInt32, math.MinInt32, 1e12, -1e12} {
		assert.Equal(t, n, chrono.StdTimeToUnixTime[int64](chrono.UnixTimeToStdTime(n)), n)
	}
	limit := (math.MaxInt64 - chrono.UnixTimeToStdTime(0)) / int64(chrono.Second)
	for _, n := range []int64{limit, -limit} {
		assert.Equal(t, n, chrono.StdTimeToUnixTime[int64](chrono.UnixTimeToStdTime(n)), n)
	}
	for n := int64(-1e9); n < 1e9; n += 9_999_991 {
		if got, want := chrono.StdTimeToUnixTime[int64](chrono.UnixTimeToStdTime(n)), n; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	assert.Equal(t, int64(-1), chrono.StdTimeToUnixTime[int64](chrono.UnixTimeToStdTime(0)-1))
	assert.Equal(t, int32(math.MaxInt32), chrono.StdTimeToUnixTime[int32](chrono.UnixTimeToStdTime(math.MaxInt32+10)))
	assert.Equal(t, int32(math.MinInt32), chrono.StdTimeToUnixTime[int32](chrono.UnixTimeToStdTime(math.MinInt32-10)))
	assert.Equal(t, int32(-20), chrono.StdTimeToUnixTime[int32](chrono.UnixTimeToStdTime(-20)))

	st := chrono.SysTimeFromUnixTime(1_000_000_000, chrono.UTC())
	assert.Equal(t, "2001-09-09T01:46:40Z", st.ToISOExtString())
	assert.Equal(t, int64(1_000_000_000), st.ToUnixTime())
}

func TestSysTimeTimeInterop(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	tm := time.Date(2024, 7, 4, 9, 30, 15, 123456700, loc)

	st := chrono.SysTimeFromTime(tm)
	assert.Equal(t, chrono.MustNewDateTime(2024, 7, 4, 9, 30, 15), st.DateTime())
	assert.Equal(t, chrono.Duration(1234567), st.FracSecs())
	assert.Equal(t, tm.Unix(), st.ToUnixTime())
	assert.True(t, st.Time().Equal(tm))
	assert.Equal(t, "America/Los_Angeles", st.Time().Location().String())
	assert.Equal(t, "America/Los_Angeles", st.TimeZone().Name())

	utc := chrono.SysTimeFromTime(tm.UTC())
	assert.Equal(t, chrono.UTC(), utc.TimeZone())
	assert.Equal(t, time.UTC, utc.Time().Location())

	fixed := chrono.MustNewSysTime(chrono.MustNewDateTime(2024, 7, 4, 9, 30, 15), mustSimpleTimeZone(t, -2*chrono.Hour))
	_, offset := fixed.Time().Zone()
	assert.Equal(t, -2*60*60, offset)

	date, err := chrono.SysTimeFromDate(chrono.MustNewDate(2024, 7, 4), chrono.NewLocationTimeZone(loc))
	require.NoError(t, err)
	assert.Equal(t, "2024-07-04T00:00:00-07:00", date.ToISOExtString())

	now := chrono.Now()
	assert.Equal(t, chrono.LocalTime(), now.TimeZone())
	assert.WithinDuration(t, time.Now(), now.Time(), time.Minute)
}

func mustSimpleTimeZone(t *testing.T, offset chrono.Duration) *chrono.SimpleTimeZone {
	t.Helper()
	tz, err := chrono.NewSimpleTimeZone(offset, "")
	require.NoError(t, err)
	return tz
}

func TestSysTimeRange(t *testing.T) {
	for _, tc := range []string{
		"+99999-01-01T00:00:00Z",
		"-99999-01-01T00:00:00Z",
		"+40000-01-01T00:00:00+05:00",
	} {
		_, err := chrono.ParseSysTimeISOExtString(tc)
		assert.ErrorIs(t, err, chrono.ErrInvalidDate, tc)
	}
	_, err := chrono.NewSysTime(chrono.MustNewDateTime(40000, 1, 1, 0, 0, 0), chrono.UTC())
	assert.ErrorIs(t, err, chrono.ErrInvalidDate)
	_, err = chrono.SysTimeFromDate(chrono.MustNewDate(-40000, 1, 1), chrono.UTC())
	assert.ErrorIs(t, err, chrono.ErrInvalidDate)

	// The extremes are exactly representable, one more hnsec is not.
	for _, st := range []chrono.SysTime{chrono.MaxSysTime(), chrono.MinSysTime()} {
		rt, err := chrono.NewSysTimeFrac(st.DateTime(), st.FracSecs(), chrono.UTC())
		require.NoError(t, err)
		assert.Equal(t, st.StdTime(), rt.StdTime())
		parsed, err := chrono.ParseSysTimeISOExtString(st.ToISOExtString())
		require.NoError(t, err)
		assert.Equal(t, st.StdTime(), parsed.StdTime())
	}
	maxT, minT := chrono.MaxSysTime(), chrono.MinSysTime()
	_, err = chrono.ParseSysTimeISOExtString("+29228-09-14T02:48:05.4775808Z")
	assert.ErrorIs(t, err, chrono.ErrInvalidDate)
	assert.Equal(t, "+29228-09-14T02:48:05.4775807Z", maxT.ToISOExtString())

	_, err = maxT.Roll(chrono.Hnsecs, 1, chrono.Overflow)
	assert.ErrorIs(t, err, chrono.ErrInvalidDate)
	_, err = maxT.AddUnits(chrono.Days, 1, chrono.Overflow)
	assert.ErrorIs(t, err, chrono.ErrInvalidDate)
	_, err = minT.AddUnits(chrono.Hours, -1, chrono.Overflow)
	assert.ErrorIs(t, err, chrono.ErrInvalidDate)
	_, err = maxT.AddUnits(chrono.Weeks, math.MaxInt, chrono.Overflow)
	assert.ErrorIs(t, err, chrono.ErrInvalidDate)
	_, err = maxT.AddUnits(chrono.Years, 1, chrono.Overflow)
	assert.ErrorIs(t, err, chrono.ErrInvalidDate)

	st := maxT
	assert.ErrorIs(t, st.SetMonth(chrono.December), chrono.ErrInvalidDate)
	assert.ErrorIs(t, st.SetDayOfGregorianCal(20000000), chrono.ErrInvalidDate)
	assert.Equal(t, maxT, st)
	assert.Equal(t, maxT.StdTime(), maxT.EndOfMonth().StdTime())

	// Zone offsets saturate rather than wrap around.
	east := mustSimpleTimeZone(t, 5*chrono.Hour)
	west := mustSimpleTimeZone(t, -5*chrono.Hour)
	assert.Equal(t, maxT.Year(), maxT.In(east).Year())
	assert.Equal(t, minT.Year(), minT.In(west).Year())
	assert.Equal(t, maxT.StdTime(), maxT.In(east).StdTime())
	assert.Equal(t, int64(math.MaxInt64), east.UTCToTZ(math.MaxInt64))
	assert.Equal(t, int64(math.MinInt64), east.TZToUTC(math.MinInt64))
	la := losAngeles(t)
	assert.Equal(t, minT.Year(), minT.In(la).Year())
}
