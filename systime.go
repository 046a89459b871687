// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"math"
	"time"
)

// SysTime represents an absolute instant as std time, hnsecs since
// 0001-01-01T00:00:00 UTC, together with the TimeZone used to present
// it. All of the calendar and clock fields are computed from the
// adjusted time for the zone on every access.
//
// Comparisons via Compare, Equal, Before and After depend only on the
// instant and not on the zone. Use StdTime as a map key where values
// in different zones must be treated as equal since the == operator
// also compares the zone.
//
// There are two distinct kinds of arithmetic. Add and Sub operate on
// the instant and hence on elapsed time, whereas AddUnits and Roll
// operate on the calendar and clock fields as seen in the zone. These
// differ across daylight saving transitions, eg. adding 24 hours is not
// the same as rolling the day by one if the clocks change in between.
//
// The zero value is 0001-01-01T00:00:00Z.
type SysTime struct {
	stdTime int64
	tz      TimeZone // nil is treated as UTC.
}

// NewSysTime returns the SysTime for dt interpreted as a time in tz. It
// fails with ErrInvalidDate if dt cannot be represented.
func NewSysTime(dt DateTime, tz TimeZone) (SysTime, error) {
	return NewSysTimeFrac(dt, 0, tz)
}

// MustNewSysTime is like NewSysTime but panics on error.
func MustNewSysTime(dt DateTime, tz TimeZone) SysTime {
	st, err := NewSysTime(dt, tz)
	if err != nil {
		panic(err)
	}
	return st
}

// NewSysTimeFrac is like NewSysTime but also specifies fractional
// seconds which must be in the range [0, 1s).
func NewSysTimeFrac(dt DateTime, frac Duration, tz TimeZone) (SysTime, error) {
	if frac < 0 || frac >= Second {
		return SysTime{}, invalidFracSecs(frac)
	}
	st := SysTime{tz: tz}
	if err := st.setDateTime(dt, frac); err != nil {
		return SysTime{}, err
	}
	return st, nil
}

// SysTimeFromDate returns the SysTime for midnight of date in tz.
func SysTimeFromDate(date Date, tz TimeZone) (SysTime, error) {
	return NewSysTime(NewDateTime(date, 0), tz)
}

// SysTimeFromStdTime returns the SysTime for stdTime presented in tz.
func SysTimeFromStdTime(stdTime int64, tz TimeZone) SysTime {
	return SysTime{stdTime: stdTime, tz: tz}
}

// SysTimeFromUnixTime returns the SysTime for the unix time presented in tz.
func SysTimeFromUnixTime(unixTime int64, tz TimeZone) SysTime {
	return SysTime{stdTime: UnixTimeToStdTime(unixTime), tz: tz}
}

// SysTimeFromTime returns the SysTime for t using t's location. The
// UTC and Local locations map to UTC() and LocalTime() respectively.
func SysTimeFromTime(t time.Time) SysTime {
	var tz TimeZone
	switch loc := t.Location(); loc {
	case time.UTC:
		tz = UTC()
	case time.Local:
		tz = LocalTime()
	default:
		tz = NewLocationTimeZone(loc)
	}
	return SysTime{stdTime: timeToStdTime(t), tz: tz}
}

// Now returns the current time in LocalTime.
func Now() SysTime {
	return SysTime{stdTime: timeToStdTime(time.Now()), tz: LocalTime()}
}

// MinSysTime returns the earliest representable SysTime, in UTC.
// MinSysTime and MaxSysTime are only meaningful in UTC, presented in
// another zone their adjusted times saturate at the int64 limits.
func MinSysTime() SysTime {
	return SysTime{stdTime: math.MinInt64, tz: UTC()}
}

// MaxSysTime returns the latest representable SysTime, in UTC.
func MaxSysTime() SysTime {
	return SysTime{stdTime: math.MaxInt64, tz: UTC()}
}

func (st SysTime) zone() TimeZone {
	if st.tz == nil {
		return UTC()
	}
	return st.tz
}

func (st SysTime) adjTime() int64 {
	return st.zone().UTCToTZ(st.stdTime)
}

func (st *SysTime) setAdjTime(adj int64) {
	st.stdTime = st.zone().TZToUTC(adj)
}

func (st *SysTime) setDateTime(dt DateTime, frac Duration) error {
	adj, err := dt.hnsecs(frac)
	if err != nil {
		return err
	}
	st.setAdjTime(adj)
	return nil
}

func (st SysTime) split() (DateTime, Duration) {
	return dateTimeFromHnsecs(st.adjTime())
}

// update applies fn to the DateTime for st, preserving the fractional
// seconds, and only commits the result if fn succeeds.
func (st *SysTime) update(fn func(dt *DateTime) error) error {
	dt, frac := st.split()
	if err := fn(&dt); err != nil {
		return err
	}
	return st.setDateTime(dt, frac)
}

// StdTime returns the instant as hnsecs since 0001-01-01T00:00:00 UTC.
func (st SysTime) StdTime() int64 { return st.stdTime }

// SetStdTime sets the instant, the zone is unchanged.
func (st *SysTime) SetStdTime(stdTime int64) { st.stdTime = stdTime }

// TimeZone returns the zone used to present st.
func (st SysTime) TimeZone() TimeZone { return st.zone() }

// In returns st presented in tz, the instant is unchanged.
func (st SysTime) In(tz TimeZone) SysTime {
	return SysTime{stdTime: st.stdTime, tz: tz}
}

// UTC returns st presented in UTC.
func (st SysTime) UTC() SysTime { return st.In(UTC()) }

// Local returns st presented in LocalTime.
func (st SysTime) Local() SysTime { return st.In(LocalTime()) }

// DSTInEffect returns true if daylight saving time is in effect for st.
func (st SysTime) DSTInEffect() bool {
	return st.zone().DSTInEffect(st.stdTime)
}

// UTCOffset returns the offset from UTC in effect for st.
func (st SysTime) UTCOffset() Duration {
	return st.zone().UTCOffsetAt(st.stdTime)
}

func (st SysTime) DateTime() DateTime {
	dt, _ := st.split()
	return dt
}

func (st SysTime) Date() Date           { return st.DateTime().Date() }
func (st SysTime) TimeOfDay() TimeOfDay { return st.DateTime().TimeOfDay() }
func (st SysTime) Year() int            { return st.DateTime().Year() }
func (st SysTime) Month() Month         { return st.DateTime().Month() }
func (st SysTime) Day() int             { return st.DateTime().Day() }
func (st SysTime) Hour() int            { return st.DateTime().Hour() }
func (st SysTime) Minute() int          { return st.DateTime().Minute() }
func (st SysTime) Second() int          { return st.DateTime().Second() }

// FracSecs returns the fractional seconds, in the range [0, 1s).
func (st SysTime) FracSecs() Duration {
	_, frac := st.split()
	return frac
}

func (st SysTime) YearBC() (int, error)      { return st.DateTime().YearBC() }
func (st SysTime) DayOfYear() int            { return st.DateTime().DayOfYear() }
func (st SysTime) DayOfGregorianCal() int    { return st.DateTime().DayOfGregorianCal() }
func (st SysTime) DayOfWeek() time.Weekday   { return st.DateTime().DayOfWeek() }
func (st SysTime) ISOWeek() (year, week int) { return st.DateTime().ISOWeek() }
func (st SysTime) IsLeapYear() bool          { return st.DateTime().IsLeapYear() }
func (st SysTime) DaysInMonth() int          { return st.DateTime().DaysInMonth() }
func (st SysTime) JulianDay() int            { return st.DateTime().JulianDay() }
func (st SysTime) ModJulianDay() int         { return st.DateTime().ModJulianDay() }

// EndOfMonth returns the last hnsec of the month in the same zone. The
// month containing MaxSysTime ends after it, MaxSysTime is returned
// in its place.
func (st SysTime) EndOfMonth() SysTime {
	dt := st.DateTime().EndOfMonth()
	r := SysTime{tz: st.tz}
	if err := r.setDateTime(dt, Second-Hnsec); err != nil {
		r.stdTime = math.MaxInt64
	}
	return r
}

func (st *SysTime) SetYear(year int) error {
	return st.update(func(dt *DateTime) error { return dt.SetYear(year) })
}

func (st *SysTime) SetMonth(month Month) error {
	return st.update(func(dt *DateTime) error { return dt.SetMonth(month) })
}

func (st *SysTime) SetDay(day int) error {
	return st.update(func(dt *DateTime) error { return dt.SetDay(day) })
}

func (st *SysTime) SetHour(hour int) error {
	return st.update(func(dt *DateTime) error { return dt.SetHour(hour) })
}

func (st *SysTime) SetMinute(minute int) error {
	return st.update(func(dt *DateTime) error { return dt.SetMinute(minute) })
}

func (st *SysTime) SetSecond(second int) error {
	return st.update(func(dt *DateTime) error { return dt.SetSecond(second) })
}

func (st *SysTime) SetYearBC(bc int) error {
	return st.update(func(dt *DateTime) error { return dt.SetYearBC(bc) })
}

func (st *SysTime) SetDayOfYear(day int) error {
	return st.update(func(dt *DateTime) error { return dt.SetDayOfYear(day) })
}

// SetDayOfGregorianCal sets the date, it fails with ErrInvalidDate if
// the result cannot be represented.
func (st *SysTime) SetDayOfGregorianCal(ordinal int) error {
	return st.update(func(dt *DateTime) error {
		dt.SetDayOfGregorianCal(ordinal)
		return nil
	})
}

// SetFracSecs sets the fractional seconds, which must be in [0, 1s).
func (st *SysTime) SetFracSecs(frac Duration) error {
	if frac < 0 || frac >= Second {
		return invalidFracSecs(frac)
	}
	dt, _ := st.split()
	return st.setDateTime(dt, frac)
}

// Add returns st plus d as elapsed time, the zone plays no part.
func (st SysTime) Add(d Duration) SysTime {
	st.stdTime += int64(d)
	return st
}

// Sub returns the elapsed time between st and other.
func (st SysTime) Sub(other SysTime) Duration {
	return Duration(st.stdTime - other.stdTime)
}

// AddUnits adds delta units to the calendar and clock fields as seen in
// st's zone, the result is then converted back to an instant. Years and
// months use policy for days past the end of the resulting month.
func (st SysTime) AddUnits(u Unit, delta int, policy AllowDayOverflow) (SysTime, error) {
	switch u {
	case Years, Months:
		err := st.update(func(dt *DateTime) error {
			r, err := dt.AddUnits(u, delta, policy)
			*dt = r
			return err
		})
		return st, err
	case Weeks, Days, Hours, Minutes, Seconds, Msecs, Usecs, Hnsecs:
		adj, ok := addScaled(st.adjTime(), int64(delta), int64(unitDurations[u]))
		if !ok {
			return st, fmt.Errorf("SysTime.AddUnits: %v %v: outside the range of SysTime: %w", delta, u, ErrInvalidDate)
		}
		st.setAdjTime(adj)
		return st, nil
	}
	return st, invalidUnit("SysTime.AddUnits", u)
}

// addScaled returns adj + n*unit, ok is false if the result overflows.
func addScaled(adj, n, unit int64) (int64, bool) {
	if n > math.MaxInt64/unit || n < math.MinInt64/unit {
		return 0, false
	}
	d := n * unit
	if (d > 0 && adj > math.MaxInt64-d) || (d < 0 && adj < math.MinInt64-d) {
		return 0, false
	}
	return adj + d, true
}

// Roll rolls the specified unit as seen in st's zone without changing
// any larger unit. Rolling msecs, usecs or hnsecs wraps within the
// current second.
func (st SysTime) Roll(u Unit, delta int, policy AllowDayOverflow) (SysTime, error) {
	switch u {
	case Years, Months, Days, Hours, Minutes, Seconds:
		err := st.update(func(dt *DateTime) error {
			r, err := dt.Roll(u, delta, policy)
			*dt = r
			return err
		})
		return st, err
	case Msecs, Usecs, Hnsecs:
		dt, frac := st.split()
		frac = Duration(floorMod(int64(frac)+int64(delta)*int64(unitDurations[u]), int64(Second)))
		err := st.setDateTime(dt, frac)
		return st, err
	}
	return st, invalidUnit("SysTime.Roll", u)
}

// Compare returns -1, 0 or +1 depending on whether st is before, at the
// same instant as, or after other.
func (st SysTime) Compare(other SysTime) int {
	switch {
	case st.stdTime < other.stdTime:
		return -1
	case st.stdTime > other.stdTime:
		return 1
	}
	return 0
}

// Equal returns true if st and other represent the same instant,
// regardless of their zones.
func (st SysTime) Equal(other SysTime) bool  { return st.stdTime == other.stdTime }
func (st SysTime) Before(other SysTime) bool { return st.stdTime < other.stdTime }
func (st SysTime) After(other SysTime) bool  { return st.stdTime > other.stdTime }

// ToUnixTime returns the number of seconds since the unix epoch.
func (st SysTime) ToUnixTime() int64 {
	return StdTimeToUnixTime[int64](st.stdTime)
}

// Time returns st as a time.Time in the corresponding location.
func (st SysTime) Time() time.Time {
	return stdTimeToTime(st.stdTime).In(locationFor(st.zone(), st.stdTime))
}
