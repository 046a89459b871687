// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"time"
)

// Date represents a date in the proleptic Gregorian calendar. Years use
// astronomical numbering, year 0 is 1 B.C. and negative years are
// valid. The zero value is 0001-01-01.
//
// A Date is always valid: the constructors and setters reject values
// that do not correspond to a real day and leave the receiver unchanged.
type Date struct {
	year  int
	month Month // stored as an offset from January so that the zero value is valid.
	day   int   // offset from 1, as for month.
}

func newDate(year int, month Month, day int) Date {
	return Date{year: year - 1, month: month - 1, day: day - 1}
}

func validDate(year int, month Month, day int) error {
	if !month.Valid() || day < 1 || day > DaysInMonth(year, month) {
		return invalidDate(year, month, day)
	}
	return nil
}

// NewDate returns the Date for the specified year, month and day.
func NewDate(year int, month Month, day int) (Date, error) {
	if err := validDate(year, month, day); err != nil {
		return Date{}, err
	}
	return newDate(year, month, day), nil
}

// MustNewDate is like NewDate but panics on error.
func MustNewDate(year int, month Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateFromDayOrdinal returns the Date for the specified day ordinal.
func DateFromDayOrdinal(ordinal int) Date {
	return newDate(FieldsOf(ordinal))
}

// DateFromTime returns the Date for t in t's location.
func DateFromTime(t time.Time) Date {
	return newDate(t.Year(), Month(t.Month()), t.Day())
}

func (d Date) Year() int    { return d.year + 1 }
func (d Date) Month() Month { return d.month + 1 }
func (d Date) Day() int     { return d.day + 1 }

// Fields returns the year, month and day.
func (d Date) Fields() (int, Month, int) {
	return d.Year(), d.Month(), d.Day()
}

// SetYear sets the year. An error is returned, and d is unchanged,
// if the day is not valid for the new year, ie. Feb 29.
func (d *Date) SetYear(year int) error {
	return d.set(year, d.Month(), d.Day())
}

// SetMonth sets the month. An error is returned, and d is unchanged,
// if the month is out of range or the day is not valid for the new month.
func (d *Date) SetMonth(month Month) error {
	return d.set(d.Year(), month, d.Day())
}

// SetDay sets the day of the month.
func (d *Date) SetDay(day int) error {
	return d.set(d.Year(), d.Month(), day)
}

func (d *Date) set(year int, month Month, day int) error {
	if err := validDate(year, month, day); err != nil {
		return err
	}
	*d = newDate(year, month, day)
	return nil
}

// YearBC returns the year counting from 1 B.C. (year 0) backwards. It
// returns ErrInvalidYearBC for A.D. years.
func (d Date) YearBC() (int, error) {
	return yearBC(d.Year())
}

// SetYearBC sets the year as a B.C. year, 1 B.C. is year 0.
func (d *Date) SetYearBC(bc int) error {
	year, err := yearFromBC(bc)
	if err != nil {
		return err
	}
	return d.SetYear(year)
}

// DayOfGregorianCal returns the day ordinal of d, where 0001-01-01 is day 1.
func (d Date) DayOfGregorianCal() int {
	return DayOrdinal(d.Fields())
}

// SetDayOfGregorianCal sets the date to the specified day ordinal.
func (d *Date) SetDayOfGregorianCal(ordinal int) {
	*d = DateFromDayOrdinal(ordinal)
}

// DayOfYear returns the day of the year in the range 1-365, or 1-366 for
// leap years.
func (d Date) DayOfYear() int {
	return daysBeforeMonth(d.Year(), d.Month()) + d.Day()
}

// SetDayOfYear sets the month and day for the specified day of the
// current year.
func (d *Date) SetDayOfYear(day int) error {
	year := d.Year()
	if day < 1 || day > DaysInYear(year) {
		return invalidDate(year, 0, day)
	}
	*d = DateFromDayOrdinal(DayOrdinal(year, January, 1) + day - 1)
	return nil
}

// IsLeapYear returns true if the date is in a leap year.
func (d Date) IsLeapYear() bool {
	return IsLeapYear(d.Year())
}

// DaysInMonth returns the number of days in the date's month.
func (d Date) DaysInMonth() int {
	return DaysInMonth(d.Year(), d.Month())
}

// EndOfMonth returns the last day of the date's month.
func (d Date) EndOfMonth() Date {
	return newDate(d.Year(), d.Month(), d.DaysInMonth())
}

// DayOfWeek returns the day of the week.
func (d Date) DayOfWeek() time.Weekday {
	return DayOfWeek(d.DayOfGregorianCal())
}

// ISOWeek returns the ISO 8601 year and week number.
func (d Date) ISOWeek() (year, week int) {
	return ISOWeek(d.DayOfGregorianCal())
}

// JulianDay returns the Julian day number at noon of the date.
func (d Date) JulianDay() int {
	return d.DayOfGregorianCal() + 1_721_425
}

// ModJulianDay returns the modified Julian day, which starts at midnight.
func (d Date) ModJulianDay() int {
	return d.JulianDay() - 2_400_001
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to
// or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return cmpInt(d.year, other.year)
	case d.month != other.month:
		return cmpInt(int(d.month), int(other.month))
	}
	return cmpInt(d.day, other.day)
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool  { return d == other }

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Tomorrow returns the date of the next day.
func (d Date) Tomorrow() Date {
	return d.AddDays(1)
}

// Yesterday returns the date of the previous day.
func (d Date) Yesterday() Date {
	return d.AddDays(-1)
}

// AddDays returns the date n days after d, n may be negative.
func (d Date) AddDays(n int) Date {
	return DateFromDayOrdinal(d.DayOfGregorianCal() + n)
}

// AddDuration returns the date moved by the number of whole days in dur.
func (d Date) AddDuration(dur Duration) Date {
	return d.AddDays(int(dur.Days()))
}

// Sub returns the number of days between d and other as a Duration.
func (d Date) Sub(other Date) Duration {
	return Duration(d.DayOfGregorianCal()-other.DayOfGregorianCal()) * Day
}

// DiffMonths returns the difference in months between d and other
// ignoring the day of the month, eg. 1999-02-01 and 1999-01-31 are
// one month apart.
func (d Date) DiffMonths(other Date) int {
	return (d.Year()*12 + int(d.Month())) - (other.Year()*12 + int(other.Month()))
}

// Add returns the result of adding delta years or months to d. Days may
// be added using Days, in which case the policy is ignored. If the
// resulting day is past the end of the resulting month then the policy
// determines whether the excess days overflow into the following month
// or are clamped to the last day of the month.
func (d Date) Add(u Unit, delta int, policy AllowDayOverflow) (Date, error) {
	switch u {
	case Years:
		return d.addMonths(delta*12, policy), nil
	case Months:
		return d.addMonths(delta, policy), nil
	case Weeks:
		return d.AddDays(delta * 7), nil
	case Days:
		return d.AddDays(delta), nil
	}
	return d, invalidUnit("Date.Add", u)
}

// Roll is like Add except that it never changes the next larger unit:
// rolling months never changes the year and rolling days never changes
// the month or year. Rolling years is identical to adding years.
func (d Date) Roll(u Unit, delta int, policy AllowDayOverflow) (Date, error) {
	switch u {
	case Years:
		return d.addMonths(delta*12, policy), nil
	case Months:
		return d.rollMonths(delta, policy), nil
	case Days:
		return d.rollDays(delta), nil
	}
	return d, invalidUnit("Date.Roll", u)
}

func (d Date) addMonths(delta int, policy AllowDayOverflow) Date {
	idx := int64(d.Year())*12 + int64(d.Month()-1) + int64(delta)
	year := int(floorDiv(idx, 12))
	month := Month(floorMod(idx, 12) + 1)
	return fixOverflow(year, month, d.Day(), policy)
}

func (d Date) rollMonths(delta int, policy AllowDayOverflow) Date {
	month := Month(floorMod(int64(d.Month()-1)+int64(delta), 12) + 1)
	return fixOverflow(d.Year(), month, d.Day(), policy)
}

func (d Date) rollDays(delta int) Date {
	n := int64(d.DaysInMonth())
	day := int(floorMod(int64(d.Day()-1)+int64(delta), n) + 1)
	return newDate(d.Year(), d.Month(), day)
}

// fixOverflow handles a day that may be past the end of month. Only
// the 31st of a month can overflow by more than the following month
// and December has 31 days so the year never changes on overflow.
func fixOverflow(year int, month Month, day int, policy AllowDayOverflow) Date {
	last := DaysInMonth(year, month)
	if day <= last {
		return newDate(year, month, day)
	}
	if policy == Clamp {
		return newDate(year, month, last)
	}
	return newDate(year, month+1, day-last)
}

// Time returns the time.Time at midnight of d in the specified location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year(), time.Month(d.Month()), d.Day(), 0, 0, 0, 0, loc)
}
