// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"math"
	"time"
)

// DateTime is a Date combined with a TimeOfDay. It has no time zone and
// a resolution of one second.
type DateTime struct {
	date Date
	tod  TimeOfDay
}

// NewDateTime returns the DateTime for the date and time of day.
func NewDateTime(date Date, tod TimeOfDay) DateTime {
	return DateTime{date: date, tod: tod}
}

// NewDateTimeFields validates and returns the DateTime for the specified
// fields.
func NewDateTimeFields(year int, month Month, day, hour, minute, second int) (DateTime, error) {
	date, err := NewDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	tod, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: date, tod: tod}, nil
}

// MustNewDateTime is like NewDateTimeFields but panics on error.
func MustNewDateTime(year int, month Month, day, hour, minute, second int) DateTime {
	dt, err := NewDateTimeFields(year, month, day, hour, minute, second)
	if err != nil {
		panic(err)
	}
	return dt
}

// DateTimeFromTime returns the DateTime for t in t's location.
func DateTimeFromTime(t time.Time) DateTime {
	return DateTime{date: DateFromTime(t), tod: TimeOfDayFromTime(t)}
}

func (dt DateTime) Date() Date           { return dt.date }
func (dt DateTime) TimeOfDay() TimeOfDay { return dt.tod }
func (dt DateTime) Year() int            { return dt.date.Year() }
func (dt DateTime) Month() Month         { return dt.date.Month() }
func (dt DateTime) Day() int             { return dt.date.Day() }
func (dt DateTime) Hour() int            { return dt.tod.Hour() }
func (dt DateTime) Minute() int          { return dt.tod.Minute() }
func (dt DateTime) Second() int          { return dt.tod.Second() }

func (dt *DateTime) SetDate(d Date)           { dt.date = d }
func (dt *DateTime) SetTimeOfDay(t TimeOfDay) { dt.tod = t }

func (dt *DateTime) SetYear(year int) error     { return dt.date.SetYear(year) }
func (dt *DateTime) SetMonth(month Month) error { return dt.date.SetMonth(month) }
func (dt *DateTime) SetDay(day int) error       { return dt.date.SetDay(day) }
func (dt *DateTime) SetYearBC(bc int) error     { return dt.date.SetYearBC(bc) }
func (dt *DateTime) SetDayOfYear(day int) error { return dt.date.SetDayOfYear(day) }
func (dt *DateTime) SetHour(hour int) error     { return dt.tod.SetHour(hour) }
func (dt *DateTime) SetMinute(minute int) error { return dt.tod.SetMinute(minute) }
func (dt *DateTime) SetSecond(second int) error { return dt.tod.SetSecond(second) }
func (dt *DateTime) SetDayOfGregorianCal(n int) { dt.date.SetDayOfGregorianCal(n) }
func (dt DateTime) YearBC() (int, error)        { return dt.date.YearBC() }
func (dt DateTime) DayOfYear() int              { return dt.date.DayOfYear() }
func (dt DateTime) DayOfGregorianCal() int      { return dt.date.DayOfGregorianCal() }
func (dt DateTime) DayOfWeek() time.Weekday     { return dt.date.DayOfWeek() }
func (dt DateTime) ISOWeek() (year, week int)   { return dt.date.ISOWeek() }
func (dt DateTime) IsLeapYear() bool            { return dt.date.IsLeapYear() }
func (dt DateTime) DaysInMonth() int            { return dt.date.DaysInMonth() }
func (dt DateTime) ModJulianDay() int           { return dt.date.ModJulianDay() }
func (dt DateTime) EndOfMonth() DateTime {
	return DateTime{dt.date.EndOfMonth(), newTimeOfDay(23, 59, 59)}
}
func (dt DateTime) Compare(other DateTime) int { return dt.compare(other) }
func (dt DateTime) Before(other DateTime) bool { return dt.compare(other) < 0 }
func (dt DateTime) After(other DateTime) bool  { return dt.compare(other) > 0 }
func (dt DateTime) Equal(other DateTime) bool  { return dt == other }
func (dt DateTime) Time(loc *time.Location) time.Time {
	return time.Date(dt.Year(), time.Month(dt.Month()), dt.Day(), dt.Hour(), dt.Minute(), dt.Second(), 0, loc)
}

func (dt DateTime) compare(other DateTime) int {
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}
	return cmpInt(int(dt.tod), int(other.tod))
}

// JulianDay returns the Julian day, which starts at noon, so the
// Julian day before noon is one less than that of the date.
func (dt DateTime) JulianDay() int {
	if dt.Hour() >= 12 {
		return dt.date.JulianDay()
	}
	return dt.date.JulianDay() - 1
}

// addSeconds is the only place where a change in time is carried over
// into the date. The time of day plus delta is split into a whole number
// of days, applied to the date, and a remainder in [0, 1 day) that
// becomes the new time of day.
func (dt DateTime) addSeconds(delta int64) DateTime {
	total := dt.tod.seconds() + delta
	days := total / 86400
	rem := total % 86400
	if rem < 0 {
		rem += 86400
		days--
	}
	if days != 0 {
		dt.date = dt.date.AddDays(int(days))
	}
	dt.tod = timeOfDayFromSeconds(rem)
	return dt
}

// Add returns dt plus d, fractions of a second in d are truncated.
func (dt DateTime) Add(d Duration) DateTime {
	return dt.addSeconds(d.Seconds())
}

// Sub returns the duration between dt and other.
func (dt DateTime) Sub(other DateTime) Duration {
	return dt.date.Sub(other.date) + dt.tod.Sub(other.tod)
}

// AddUnits adds delta of the specified unit. Years and months are added
// to the date using policy, all other units carry over into the date as
// required.
func (dt DateTime) AddUnits(u Unit, delta int, policy AllowDayOverflow) (DateTime, error) {
	switch u {
	case Years, Months:
		date, err := dt.date.Add(u, delta, policy)
		if err != nil {
			return dt, err
		}
		dt.date = date
		return dt, nil
	case Weeks, Days, Hours, Minutes, Seconds:
		return dt.addSeconds(int64(delta) * int64(unitDurations[u]/Second)), nil
	}
	return dt, invalidUnit("DateTime.AddUnits", u)
}

// Roll rolls the specified unit without affecting any larger unit. In
// particular rolling hours, minutes or seconds never changes the date.
func (dt DateTime) Roll(u Unit, delta int, policy AllowDayOverflow) (DateTime, error) {
	switch u {
	case Years, Months, Days:
		date, err := dt.date.Roll(u, delta, policy)
		if err != nil {
			return dt, err
		}
		dt.date = date
		return dt, nil
	case Hours, Minutes, Seconds:
		tod, err := dt.tod.Roll(u, delta)
		if err != nil {
			return dt, err
		}
		dt.tod = tod
		return dt, nil
	}
	return dt, invalidUnit("DateTime.Roll", u)
}

// hnsecs returns the number of hnsecs since 0001-01-01T00:00:00 plus
// frac, which must be in [0, 1s). This is the adjusted time
// representation used by SysTime and it fails with ErrInvalidDate when
// dt lies outside the int64 range, roughly +/- 29,227 years.
func (dt DateTime) hnsecs(frac Duration) (int64, error) {
	const perDay = int64(Day)
	days := int64(dt.date.DayOfGregorianCal() - 1)
	within := dt.tod.seconds()*int64(Second) + int64(frac)
	if days >= 0 {
		if days > (math.MaxInt64-within)/perDay {
			return 0, outOfRange(dt)
		}
		return days*perDay + within, nil
	}
	// Work with days+1 so that neither intermediate overflows.
	if days+1 < (math.MinInt64+perDay-within)/perDay {
		return 0, outOfRange(dt)
	}
	return (days+1)*perDay - (perDay - within), nil
}

// dateTimeFromHnsecs is the inverse of hnsecs, it returns the DateTime
// and the fractional seconds.
func dateTimeFromHnsecs(hnsecs int64) (DateTime, Duration) {
	days := floorDiv(hnsecs, int64(Day))
	rem := hnsecs - days*int64(Day)
	secs := rem / int64(Second)
	frac := Duration(rem - secs*int64(Second))
	return DateTime{
		date: DateFromDayOrdinal(int(days) + 1),
		tod:  timeOfDayFromSeconds(secs),
	}, frac
}
