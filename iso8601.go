// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"strconv"
	"strings"
)

// The ISO 8601 formats supported are:
//
//	basic:    YYYYMMDDTHHMMSS[.FFFFFFF][Z|+HHMM]
//	extended: YYYY-MM-DDTHH:MM:SS[.FFFFFFF][Z|+HH:MM]
//	simple:   YYYY-Mon-DD HH:MM:SS[.FFFFFFF][Z|+HH:MM]
//
// The simple format is not part of ISO 8601 but is easier to read.
// Years are zero padded to at least 4 digits, years after 9999 are
// prefixed with '+' and negative years with '-'. Fractional seconds and
// time zones only apply to SysTime values; local times have no zone
// suffix and UTC is written as 'Z'. When parsing, either form of offset,
// as well as +HH, is accepted for every format.

func yearToString(year int) string {
	switch {
	case year > 9999:
		return fmt.Sprintf("+%05d", year)
	case year >= 0:
		return fmt.Sprintf("%04d", year)
	}
	return fmt.Sprintf("-%04d", -year)
}

func allDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parseYear(val, s string) (int, error) {
	digits := s
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		digits = s[1:]
	} else if len(s) > 4 {
		return 0, invalidFormat(val, "years after 9999 must be prefixed with '+'")
	}
	if len(digits) < 4 || !allDigits(digits) {
		return 0, invalidFormat(val, "year must have at least 4 digits")
	}
	year, err := strconv.Atoi(digits)
	if err != nil {
		return 0, invalidFormat(val, err.Error())
	}
	if s[0] == '-' {
		year = -year
	}
	return year, nil
}

func parseTwoDigits(val, s, field string) (int, error) {
	if len(s) != 2 || !allDigits(s) {
		return 0, invalidFormat(val, "invalid "+field)
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), nil
}

func newParsedDate(val string, year int, month Month, day int) (Date, error) {
	d, err := NewDate(year, month, day)
	if err != nil {
		return Date{}, fmt.Errorf("%q: %w: %w", val, ErrInvalidFormat, err)
	}
	return d, nil
}

// ToISOString returns the date as YYYYMMDD.
func (d Date) ToISOString() string {
	return fmt.Sprintf("%s%02d%02d", yearToString(d.Year()), int(d.Month()), d.Day())
}

// ToISOExtString returns the date as YYYY-MM-DD.
func (d Date) ToISOExtString() string {
	return fmt.Sprintf("%s-%02d-%02d", yearToString(d.Year()), int(d.Month()), d.Day())
}

// ToSimpleString returns the date as YYYY-Mon-DD.
func (d Date) ToSimpleString() string {
	return fmt.Sprintf("%s-%s-%02d", yearToString(d.Year()), d.Month().Short(), d.Day())
}

// String returns the ISO 8601 extended representation of d.
func (d Date) String() string {
	return d.ToISOExtString()
}

func parseDateISO(val, s string) (Date, error) {
	if len(s) < 8 {
		return Date{}, invalidFormat(val, "too short")
	}
	n := len(s)
	day, err := parseTwoDigits(val, s[n-2:], "day")
	if err != nil {
		return Date{}, err
	}
	month, err := parseTwoDigits(val, s[n-4:n-2], "month")
	if err != nil {
		return Date{}, err
	}
	year, err := parseYear(val, s[:n-4])
	if err != nil {
		return Date{}, err
	}
	return newParsedDate(val, year, Month(month), day)
}

func parseDateISOExt(val, s string) (Date, error) {
	n := len(s)
	if n < 10 || s[n-3] != '-' || s[n-6] != '-' {
		return Date{}, invalidFormat(val, "expected YYYY-MM-DD")
	}
	day, err := parseTwoDigits(val, s[n-2:], "day")
	if err != nil {
		return Date{}, err
	}
	month, err := parseTwoDigits(val, s[n-5:n-3], "month")
	if err != nil {
		return Date{}, err
	}
	year, err := parseYear(val, s[:n-6])
	if err != nil {
		return Date{}, err
	}
	return newParsedDate(val, year, Month(month), day)
}

func parseDateSimple(val, s string) (Date, error) {
	n := len(s)
	if n < 11 || s[n-3] != '-' || s[n-7] != '-' {
		return Date{}, invalidFormat(val, "expected YYYY-Mon-DD")
	}
	day, err := parseTwoDigits(val, s[n-2:], "day")
	if err != nil {
		return Date{}, err
	}
	month, ok := parseShortMonth(s[n-6 : n-3])
	if !ok {
		return Date{}, invalidFormat(val, "invalid month")
	}
	year, err := parseYear(val, s[:n-7])
	if err != nil {
		return Date{}, err
	}
	return newParsedDate(val, year, month, day)
}

// ParseDateISOString parses a date in the form YYYYMMDD, surrounding
// whitespace is ignored.
func ParseDateISOString(val string) (Date, error) {
	return parseDateISO(val, strings.TrimSpace(val))
}

// ParseDateISOExtString parses a date in the form YYYY-MM-DD.
func ParseDateISOExtString(val string) (Date, error) {
	return parseDateISOExt(val, strings.TrimSpace(val))
}

// ParseDateSimpleString parses a date in the form YYYY-Mon-DD.
func ParseDateSimpleString(val string) (Date, error) {
	return parseDateSimple(val, strings.TrimSpace(val))
}

// ParseDate parses a date in any of the basic, extended or simple formats.
func ParseDate(val string) (Date, error) {
	s := strings.TrimSpace(val)
	switch n := len(s); {
	case n >= 11 && s[n-3] == '-' && s[n-7] == '-':
		return parseDateSimple(val, s)
	case n >= 10 && s[n-3] == '-' && s[n-6] == '-':
		return parseDateISOExt(val, s)
	}
	return parseDateISO(val, s)
}

// ToISOString returns the time of day as HHMMSS.
func (t TimeOfDay) ToISOString() string {
	return fmt.Sprintf("%02d%02d%02d", t.Hour(), t.Minute(), t.Second())
}

// ToISOExtString returns the time of day as HH:MM:SS.
func (t TimeOfDay) ToISOExtString() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

func (t TimeOfDay) String() string {
	return t.ToISOExtString()
}

func newParsedTimeOfDay(val string, hour, minute, second int) (TimeOfDay, error) {
	t, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		return 0, fmt.Errorf("%q: %w: %w", val, ErrInvalidFormat, err)
	}
	return t, nil
}

func parseTimeOfDayISO(val, s string) (TimeOfDay, error) {
	if len(s) != 6 || !allDigits(s) {
		return 0, invalidFormat(val, "expected HHMMSS")
	}
	h, _ := parseTwoDigits(val, s[0:2], "hour")
	m, _ := parseTwoDigits(val, s[2:4], "minute")
	sec, _ := parseTwoDigits(val, s[4:6], "second")
	return newParsedTimeOfDay(val, h, m, sec)
}

func parseTimeOfDayISOExt(val, s string) (TimeOfDay, error) {
	if len(s) != 8 || s[2] != ':' || s[5] != ':' {
		return 0, invalidFormat(val, "expected HH:MM:SS")
	}
	h, err := parseTwoDigits(val, s[0:2], "hour")
	if err != nil {
		return 0, err
	}
	m, err := parseTwoDigits(val, s[3:5], "minute")
	if err != nil {
		return 0, err
	}
	sec, err := parseTwoDigits(val, s[6:8], "second")
	if err != nil {
		return 0, err
	}
	return newParsedTimeOfDay(val, h, m, sec)
}

// ParseTimeOfDayISOString parses a time of day in the form HHMMSS.
func ParseTimeOfDayISOString(val string) (TimeOfDay, error) {
	return parseTimeOfDayISO(val, strings.TrimSpace(val))
}

// ParseTimeOfDayISOExtString parses a time of day in the form HH:MM:SS.
func ParseTimeOfDayISOExtString(val string) (TimeOfDay, error) {
	return parseTimeOfDayISOExt(val, strings.TrimSpace(val))
}

// ToISOString returns the date and time as YYYYMMDDTHHMMSS.
func (dt DateTime) ToISOString() string {
	return dt.date.ToISOString() + "T" + dt.tod.ToISOString()
}

// ToISOExtString returns the date and time as YYYY-MM-DDTHH:MM:SS.
func (dt DateTime) ToISOExtString() string {
	return dt.date.ToISOExtString() + "T" + dt.tod.ToISOExtString()
}

// ToSimpleString returns the date and time as YYYY-Mon-DD HH:MM:SS.
func (dt DateTime) ToSimpleString() string {
	return dt.date.ToSimpleString() + " " + dt.tod.ToISOExtString()
}

func (dt DateTime) String() string {
	return dt.ToISOExtString()
}

// layout describes one of the three supported string formats.
type layout struct {
	sep       byte
	date      func(val, s string) (Date, error)
	tod       func(val, s string) (TimeOfDay, error)
	extOffset bool
}

var (
	isoLayout    = layout{'T', parseDateISO, parseTimeOfDayISO, false}
	isoExtLayout = layout{'T', parseDateISOExt, parseTimeOfDayISOExt, true}
	simpleLayout = layout{' ', parseDateSimple, parseTimeOfDayISOExt, true}
)

func (l layout) splitDateTime(val, s string) (string, string, error) {
	i := strings.IndexByte(s, l.sep)
	if i < 0 {
		return "", "", invalidFormat(val, fmt.Sprintf("missing %q separator", l.sep))
	}
	return s[:i], s[i+1:], nil
}

func (l layout) parseDateTime(val, date, tod string) (DateTime, error) {
	d, err := l.date(val, date)
	if err != nil {
		return DateTime{}, err
	}
	t, err := l.tod(val, tod)
	if err != nil {
		return DateTime{}, err
	}
	return NewDateTime(d, t), nil
}

func (l layout) parseDateTimeString(val string) (DateTime, error) {
	date, tod, err := l.splitDateTime(val, strings.TrimSpace(val))
	if err != nil {
		return DateTime{}, err
	}
	return l.parseDateTime(val, date, tod)
}

// ParseDateTimeISOString parses a date and time in the form YYYYMMDDTHHMMSS.
func ParseDateTimeISOString(val string) (DateTime, error) {
	return isoLayout.parseDateTimeString(val)
}

// ParseDateTimeISOExtString parses a date and time in the form
// YYYY-MM-DDTHH:MM:SS.
func ParseDateTimeISOExtString(val string) (DateTime, error) {
	return isoExtLayout.parseDateTimeString(val)
}

// ParseDateTimeSimpleString parses a date and time in the form
// YYYY-Mon-DD HH:MM:SS.
func ParseDateTimeSimpleString(val string) (DateTime, error) {
	return simpleLayout.parseDateTimeString(val)
}

// ParseDateTime parses a date and time in any of the basic, extended or
// simple formats.
func ParseDateTime(val string) (DateTime, error) {
	l, err := layoutFor(val)
	if err != nil {
		return DateTime{}, err
	}
	return l.parseDateTimeString(val)
}

func layoutFor(val string) (layout, error) {
	s := strings.TrimSpace(val)
	if strings.IndexByte(s, ' ') > 0 {
		return simpleLayout, nil
	}
	i := strings.IndexByte(s, 'T')
	if i < 0 {
		return layout{}, invalidFormat(val, "missing date/time separator")
	}
	if i >= 3 && s[i-3] == '-' {
		return isoExtLayout, nil
	}
	return isoLayout, nil
}

// fracSecsToISOString returns frac as a '.' followed by up to 7 digits
// with trailing zeros removed, or the empty string if frac is zero.
func fracSecsToISOString(frac Duration) string {
	if frac == 0 {
		return ""
	}
	return "." + strings.TrimRight(fmt.Sprintf("%07d", int64(frac)), "0")
}

func parseFracSecs(val, s string) (Duration, error) {
	digits := s[1:]
	if len(digits) == 0 || len(digits) > 7 || !allDigits(digits) {
		return 0, invalidFormat(val, "fractional seconds must have between 1 and 7 digits")
	}
	n, _ := strconv.Atoi(digits + strings.Repeat("0", 7-len(digits)))
	return Duration(n), nil
}

func offsetToISOString(offset Duration, ext bool) string {
	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	minutes := int64(offset / Minute)
	if ext {
		return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60)
	}
	return fmt.Sprintf("%c%02d%02d", sign, minutes/60, minutes%60)
}

// parseZoneOffset parses +HH, +HHMM or +HH:MM, and their negative
// counterparts, with hours in [00, 23] and minutes in [00, 59].
func parseZoneOffset(s string) (Duration, error) {
	if len(s) < 3 || (s[0] != '+' && s[0] != '-') {
		return 0, invalidFormat(s, "invalid utc offset")
	}
	var hh, mm string
	switch rest := s[1:]; len(rest) {
	case 2:
		hh, mm = rest, "00"
	case 4:
		hh, mm = rest[:2], rest[2:]
	case 5:
		if rest[2] != ':' {
			return 0, invalidFormat(s, "invalid utc offset")
		}
		hh, mm = rest[:2], rest[3:]
	default:
		return 0, invalidFormat(s, "invalid utc offset")
	}
	h, err := parseTwoDigits(s, hh, "utc offset hours")
	if err != nil {
		return 0, err
	}
	m, err := parseTwoDigits(s, mm, "utc offset minutes")
	if err != nil {
		return 0, err
	}
	if h > 23 || m > 59 {
		return 0, invalidFormat(s, "utc offset out of range")
	}
	offset := Duration(h)*Hour + Duration(m)*Minute
	if s[0] == '-' {
		offset = -offset
	}
	return offset, nil
}

func (st SysTime) zoneSuffix(ext bool) string {
	tz := st.zone()
	switch {
	case isLocalTime(tz):
		return ""
	case isUTC(tz):
		return "Z"
	}
	return offsetToISOString(tz.UTCOffsetAt(st.stdTime), ext)
}

// ToISOString returns st as YYYYMMDDTHHMMSS[.FFFFFFF][Z|+HHMM].
//
// UTC offsets are written in whole minutes, any seconds in the offset
// are dropped. Historical local mean time offsets such as
// America/New_York's -04:56:02 before 1883 are therefore written as
// -04:56 and parsing the result yields an instant that differs from st
// by those seconds. The same applies to ToISOExtString and
// ToSimpleString.
func (st SysTime) ToISOString() string {
	dt, frac := st.split()
	return dt.ToISOString() + fracSecsToISOString(frac) + st.zoneSuffix(false)
}

// ToISOExtString returns st as YYYY-MM-DDTHH:MM:SS[.FFFFFFF][Z|+HH:MM].
func (st SysTime) ToISOExtString() string {
	dt, frac := st.split()
	return dt.ToISOExtString() + fracSecsToISOString(frac) + st.zoneSuffix(true)
}

// ToSimpleString returns st as YYYY-Mon-DD HH:MM:SS[.FFFFFFF][Z|+HH:MM].
func (st SysTime) ToSimpleString() string {
	dt, frac := st.split()
	return dt.ToSimpleString() + fracSecsToISOString(frac) + st.zoneSuffix(true)
}

func (st SysTime) String() string {
	return st.ToISOExtString()
}

func (l layout) parseSysTimeString(val string) (SysTime, error) {
	date, rest, err := l.splitDateTime(val, strings.TrimSpace(val))
	if err != nil {
		return SysTime{}, err
	}
	tod, frac, zone := rest, "", ""
	if i := strings.IndexAny(rest, ".Z+-"); i >= 0 {
		tod = rest[:i]
		tail := rest[i:]
		if tail[0] == '.' {
			frac = tail
			if j := strings.IndexAny(tail, "Z+-"); j >= 0 {
				frac, zone = tail[:j], tail[j:]
			}
		} else {
			zone = tail
		}
	}
	dt, err := l.parseDateTime(val, date, tod)
	if err != nil {
		return SysTime{}, err
	}
	var fracSecs Duration
	if len(frac) > 0 {
		if fracSecs, err = parseFracSecs(val, frac); err != nil {
			return SysTime{}, err
		}
	}
	var tz TimeZone
	switch zone {
	case "":
		tz = LocalTime()
	case "Z":
		tz = UTC()
	default:
		offset, err := parseZoneOffset(zone)
		if err != nil {
			return SysTime{}, fmt.Errorf("%q: %w", val, err)
		}
		stz, err := NewSimpleTimeZone(offset, "")
		if err != nil {
			return SysTime{}, err
		}
		tz = stz
	}
	return NewSysTimeFrac(dt, fracSecs, tz)
}

// ParseSysTimeISOString parses YYYYMMDDTHHMMSS[.FFFFFFF][Z|+HHMM]. A
// value without a zone is interpreted in LocalTime, 'Z' as UTC and an
// offset as a SimpleTimeZone with that offset.
func ParseSysTimeISOString(val string) (SysTime, error) {
	return isoLayout.parseSysTimeString(val)
}

// ParseSysTimeISOExtString parses YYYY-MM-DDTHH:MM:SS[.FFFFFFF][Z|+HH:MM].
func ParseSysTimeISOExtString(val string) (SysTime, error) {
	return isoExtLayout.parseSysTimeString(val)
}

// ParseSysTimeSimpleString parses YYYY-Mon-DD HH:MM:SS[.FFFFFFF][Z|+HH:MM].
func ParseSysTimeSimpleString(val string) (SysTime, error) {
	return simpleLayout.parseSysTimeString(val)
}

// ParseSysTime parses any of the basic, extended or simple formats.
func ParseSysTime(val string) (SysTime, error) {
	l, err := layoutFor(val)
	if err != nil {
		return SysTime{}, err
	}
	return l.parseSysTimeString(val)
}
