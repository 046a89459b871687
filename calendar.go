// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import "time"

const (
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
)

var (
	daysInMonth     = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	daysInMonthLeap = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

// cumulative days before each month, [0, 31, 59, ...]
var dayOfYear, dayOfYearLeap [13]int

func init() {
	for i := 0; i < 12; i++ {
		dayOfYear[i+1] = dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] = dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// floorDiv and floorMod round towards negative infinity so that
// negative years and ordinals decompose the same way as positive ones.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

// IsLeapYear returns true if the given year is a leap year in the
// proleptic Gregorian calendar. Year 0 and year -4 are leap years.
func IsLeapYear(year int) bool {
	y := int64(year)
	return floorMod(y, 4) == 0 && (floorMod(y, 100) != 0 || floorMod(y, 400) == 0)
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month Month) int {
	if IsLeapYear(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

func daysBeforeMonth(year int, month Month) int {
	if IsLeapYear(year) {
		return dayOfYearLeap[month-1]
	}
	return dayOfYear[month-1]
}

// DayOrdinal returns the day ordinal of the specified date, where
// 0001-01-01 is day 1 and 0000-12-31 is day 0. The month and day are
// assumed to be valid.
func DayOrdinal(year int, month Month, day int) int {
	y := int64(year) - 1
	days := 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400)
	return int(days) + daysBeforeMonth(year, month) + day
}

// FieldsOf is the inverse of DayOrdinal.
func FieldsOf(ordinal int) (year int, month Month, day int) {
	year, yd := yearAndDay(ordinal)
	table := &dayOfYear
	if IsLeapYear(year) {
		table = &dayOfYearLeap
	}
	m := yd / 31 // estimate, too low by at most one month
	if yd >= table[m+1] {
		m++
	}
	return year, Month(m + 1), yd - table[m] + 1
}

// yearAndDay returns the year and zero based day of the year for ordinal.
func yearAndDay(ordinal int) (int, int) {
	d := int64(ordinal) - 1
	cycles := floorDiv(d, daysPer400Years)
	d -= cycles * daysPer400Years
	year := 1 + 400*cycles

	n := d / daysPer100Years
	if n == 4 {
		// last day of a 400 year cycle.
		n = 3
	}
	year += 100 * n
	d -= daysPer100Years * n

	n = d / daysPer4Years
	year += 4 * n
	d -= daysPer4Years * n

	n = d / 365
	if n == 4 {
		// last day of a leap year.
		n = 3
	}
	year += n
	d -= 365 * n
	return int(year), int(d)
}

// DayOfWeek returns the day of the week for the given day ordinal,
// ordinal 1 (0001-01-01) is a Monday.
func DayOfWeek(ordinal int) time.Weekday {
	return time.Weekday(floorMod(int64(ordinal), 7))
}

// ISOWeek returns the ISO 8601 year and week number for the given day
// ordinal. Week 1 is the week containing the first Thursday of the year
// and weeks start on Monday.
func ISOWeek(ordinal int) (year, week int) {
	thursday := ordinal + 4 - isoWeekday(ordinal)
	year, yd := yearAndDay(thursday)
	return year, yd/7 + 1
}

// isoWeekday returns Monday as 1 and Sunday as 7.
func isoWeekday(ordinal int) int {
	wd := int(DayOfWeek(ordinal))
	if wd == 0 {
		return 7
	}
	return wd
}

func yearBC(year int) (int, error) {
	if year > 0 {
		return 0, ErrInvalidYearBC
	}
	return 1 - year, nil
}

func yearFromBC(bc int) (int, error) {
	if bc <= 0 {
		return 0, ErrInvalidYearBC
	}
	return 1 - bc, nil
}
