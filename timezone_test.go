// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"cloudeng.io/chrono"
	"cloudeng.io/logging/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTimeZone(t *testing.T) {
	out := &bytes.Buffer{}
	ctx := ctxlog.NewJSONLogger(context.Background(), out, &slog.HandlerOptions{Level: slog.LevelDebug})

	tz, err := chrono.LoadTimeZone(ctx, "UTC")
	require.NoError(t, err)
	assert.Equal(t, chrono.UTC(), tz)
	tz, err = chrono.LoadTimeZone(ctx, "Z")
	require.NoError(t, err)
	assert.Equal(t, chrono.UTC(), tz)

	for _, name := range []string{"", "Local"} {
		tz, err = chrono.LoadTimeZone(ctx, name)
		require.NoError(t, err)
		assert.True(t, tz == chrono.LocalTime(), name)
	}

	tz, err = chrono.LoadTimeZone(ctx, "+05:30")
	require.NoError(t, err)
	stz, ok := tz.(*chrono.SimpleTimeZone)
	require.True(t, ok)
	assert.Equal(t, "+05:30", stz.Name())
	assert.Equal(t, 5*chrono.Hour+30*chrono.Minute, stz.UTCOffset())
	assert.Contains(t, out.String(), "loaded fixed offset time zone")

	tz, err = chrono.LoadTimeZone(ctx, "America/Los_Angeles")
	require.NoError(t, err)
	assert.Equal(t, "America/Los_Angeles", tz.Name())
	assert.Contains(t, out.String(), "loaded time zone")

	_, err = chrono.LoadTimeZone(ctx, "Not/AZone")
	assert.Error(t, err)
	assert.Contains(t, out.String(), "failed to load time zone")

	_, err = chrono.LoadTimeZone(ctx, "+25:00")
	assert.ErrorIs(t, err, chrono.ErrInvalidFormat)
	assert.Contains(t, out.String(), "invalid time zone offset")

	// No logger in the context.
	_, err = chrono.LoadTimeZone(context.Background(), "Not/AZone")
	assert.Error(t, err)
}

func TestLocalTime(t *testing.T) {
	local := chrono.LocalTime()
	assert.True(t, local == chrono.LocalTime())

	var wg sync.WaitGroup
	zones := make([]chrono.TimeZone, 10)
	for i := range zones {
		wg.Add(1)
		go func() {
			defer wg.Done()
			zones[i] = chrono.LocalTime()
		}()
	}
	wg.Wait()
	for _, tz := range zones {
		assert.True(t, tz == local)
	}
	ltz, ok := local.(*chrono.LocationTimeZone)
	require.True(t, ok)
	assert.Equal(t, time.Local, ltz.Location())
}

func TestSimpleTimeZone(t *testing.T) {
	for _, offset := range []chrono.Duration{chrono.Day, -chrono.Day, 25 * chrono.Hour} {
		_, err := chrono.NewSimpleTimeZone(offset, "")
		assert.ErrorIs(t, err, chrono.ErrInvalidTime)
	}
	tz, err := chrono.NewSimpleTimeZone(-(3*chrono.Hour + 30*chrono.Minute), "")
	require.NoError(t, err)
	assert.Equal(t, "-03:30", tz.String())
	assert.False(t, tz.DSTInEffect(0))
	assert.Equal(t, int64(-3*chrono.Hour-30*chrono.Minute), tz.UTCToTZ(0))
	assert.Equal(t, int64(0), tz.TZToUTC(tz.UTCToTZ(0)))

	tz, err = chrono.NewSimpleTimeZone(chrono.Hour, "CET")
	require.NoError(t, err)
	assert.Equal(t, "CET", tz.Name())
	assert.Equal(t, "CET", tz.DisplayName(true))
	st := chrono.MustNewSysTime(chrono.MustNewDateTime(2024, 1, 2, 3, 4, 5), tz)
	_, offset := st.Time().Zone()
	assert.Equal(t, 3600, offset)
}

func TestLocationTimeZone(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	tz := chrono.NewLocationTimeZone(loc)
	assert.Equal(t, loc, tz.Location())
	assert.Equal(t, "America/Los_Angeles", tz.Name())
	assert.Equal(t, "America/Los_Angeles", tz.String())
	assert.Equal(t, "PST", tz.DisplayName(false))
	assert.Equal(t, "PDT", tz.DisplayName(true))

	winter := chrono.MustNewSysTime(chrono.MustNewDateTime(2024, 1, 15, 12, 0, 0), tz)
	summer := chrono.MustNewSysTime(chrono.MustNewDateTime(2024, 7, 15, 12, 0, 0), tz)
	assert.False(t, tz.DSTInEffect(winter.StdTime()))
	assert.True(t, tz.DSTInEffect(summer.StdTime()))
	assert.Equal(t, -8*chrono.Hour, tz.UTCOffsetAt(winter.StdTime()))
	assert.Equal(t, -7*chrono.Hour, tz.UTCOffsetAt(summer.StdTime()))
	assert.Equal(t, 20, winter.UTC().Hour())
	assert.Equal(t, 19, summer.UTC().Hour())

	// Times that do not fall in a transition round trip.
	for _, st := range []chrono.SysTime{winter, summer} {
		assert.Equal(t, st.StdTime(), tz.TZToUTC(tz.UTCToTZ(st.StdTime())))
	}

	// Zones without daylight saving time use the same name for both.
	utc := chrono.NewLocationTimeZone(time.UTC)
	assert.Equal(t, utc.DisplayName(false), utc.DisplayName(true))
}

// fixedZone is a TimeZone implemented outside of the package.
type fixedZone struct{ offset chrono.Duration }

func (z fixedZone) Name() string                      { return "fixed" }
func (z fixedZone) DisplayName(bool) string           { return "FX" }
func (z fixedZone) UTCToTZ(stdTime int64) int64       { return stdTime + int64(z.offset) }
func (z fixedZone) TZToUTC(adjTime int64) int64       { return adjTime - int64(z.offset) }
func (z fixedZone) DSTInEffect(int64) bool            { return false }
func (z fixedZone) UTCOffsetAt(int64) chrono.Duration { return z.offset }

func TestCustomTimeZone(t *testing.T) {
	tz := fixedZone{offset: 2 * chrono.Hour}
	st := chrono.MustNewSysTime(chrono.MustNewDateTime(2024, 1, 2, 3, 4, 5), tz)
	assert.Equal(t, 1, st.UTC().Hour())
	assert.Equal(t, 2*chrono.Hour, st.UTCOffset())
	name, offset := st.Time().Zone()
	assert.Equal(t, "FX", name)
	assert.Equal(t, 7200, offset)
	assert.Equal(t, 3, st.Time().Hour())
}

func TestTimeZoneContext(t *testing.T) {
	ctx := context.Background()
	assert.True(t, chrono.TimeZoneFromContext(ctx) == chrono.LocalTime())
	assert.True(t, chrono.TimeZoneFromContext(chrono.ContextWithTimeZone(ctx, nil)) == chrono.LocalTime())

	tz, err := chrono.NewSimpleTimeZone(9*chrono.Hour, "")
	require.NoError(t, err)
	ctx = chrono.ContextWithTimeZone(ctx, tz)
	assert.Equal(t, chrono.TimeZone(tz), chrono.TimeZoneFromContext(ctx))

	now := chrono.NowInContext(ctx)
	assert.Equal(t, chrono.TimeZone(tz), now.TimeZone())
	assert.Equal(t, 9*chrono.Hour, now.UTCOffset())
	assert.WithinDuration(t, time.Now(), now.Time(), time.Minute)
}
