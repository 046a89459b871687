// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// TimeOfDay represents a time of day with a resolution of one second.
// The hour, minute and second are packed so that TimeOfDay values can
// be compared and sorted directly.
type TimeOfDay uint32

func newTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour<<16 | minute<<8 | second)
}

func validTimeOfDay(hour, minute, second int) error {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return invalidTime(hour, minute, second)
	}
	return nil
}

// NewTimeOfDay creates a new TimeOfDay from the specified hour, minute and second.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if err := validTimeOfDay(hour, minute, second); err != nil {
		return 0, err
	}
	return newTimeOfDay(hour, minute, second), nil
}

// MustNewTimeOfDay is like NewTimeOfDay but panics on error.
func MustNewTimeOfDay(hour, minute, second int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayFromTime returns a TimeOfDay from the specified time.Time.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return newTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

// timeOfDayFromSeconds expects secs to be in the range [0, 86400).
func timeOfDayFromSeconds(secs int64) TimeOfDay {
	return newTimeOfDay(int(secs/3600), int(secs/60%60), int(secs%60))
}

func (t TimeOfDay) Hour() int {
	return int(t >> 16)
}

func (t TimeOfDay) Minute() int {
	return int(t >> 8 & 0xff)
}

func (t TimeOfDay) Second() int {
	return int(t & 0xff)
}

func (t *TimeOfDay) set(hour, minute, second int) error {
	if err := validTimeOfDay(hour, minute, second); err != nil {
		return err
	}
	*t = newTimeOfDay(hour, minute, second)
	return nil
}

func (t *TimeOfDay) SetHour(hour int) error {
	return t.set(hour, t.Minute(), t.Second())
}

func (t *TimeOfDay) SetMinute(minute int) error {
	return t.set(t.Hour(), minute, t.Second())
}

func (t *TimeOfDay) SetSecond(second int) error {
	return t.set(t.Hour(), t.Minute(), second)
}

// Duration returns the time elapsed since midnight.
func (t TimeOfDay) Duration() Duration {
	return Duration(t.seconds()) * Second
}

func (t TimeOfDay) seconds() int64 {
	return int64(t.Hour())*3600 + int64(t.Minute())*60 + int64(t.Second())
}

// Add delta to the time of day, wrapping around midnight in either
// direction. Fractions of a second in delta are ignored.
func (t TimeOfDay) Add(delta Duration) TimeOfDay {
	secs := floorMod(t.seconds()+delta.Seconds(), 86400)
	return timeOfDayFromSeconds(secs)
}

// Sub returns the signed duration between t and other.
func (t TimeOfDay) Sub(other TimeOfDay) Duration {
	return Duration(t.seconds()-other.seconds()) * Second
}

// Roll adds delta to the specified field, wrapping within that field
// only, eg. rolling 23:10:00 by one hour yields 00:10:00 and rolling
// 10:59:00 by one minute yields 10:00:00.
func (t TimeOfDay) Roll(u Unit, delta int) (TimeOfDay, error) {
	h, m, s := t.Hour(), t.Minute(), t.Second()
	switch u {
	case Hours:
		h = int(floorMod(int64(h)+int64(delta), 24))
	case Minutes:
		m = int(floorMod(int64(m)+int64(delta), 60))
	case Seconds:
		s = int(floorMod(int64(s)+int64(delta), 60))
	default:
		return t, invalidUnit("TimeOfDay.Roll", u)
	}
	return newTimeOfDay(h, m, s), nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if !unicode.IsNumber(c) {
			return false
		}
	}
	return true
}

func parseHour(h string, ampmState int) (int, error) {
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour: %s: %w", h, ErrInvalidTime)
	}
	if ampmState != 0 && hour > 12 {
		return 0, fmt.Errorf("invalid hour: %s with am/pm: %w", h, ErrInvalidTime)
	}
	if ampmState == 2 && hour < 12 {
		hour += 12
	}
	if ampmState == 1 && hour == 12 {
		hour = 0
	}
	return hour, nil
}

func parseHourMinuteSec(h, m, s string, ampmState int) (TimeOfDay, error) {
	if !isDigits(s) || !isDigits(h) || !isDigits(m) {
		return 0, fmt.Errorf("non-numeric value in %s:%s:%s: %w", h, m, s, ErrInvalidFormat)
	}
	hour, err := parseHour(h, ampmState)
	if err != nil {
		return 0, err
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute: %s: %w", m, ErrInvalidTime)
	}
	sec, err := strconv.Atoi(s)
	if err != nil || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("invalid second: %s: %w", s, ErrInvalidTime)
	}
	return newTimeOfDay(hour, minute, sec), nil
}

// ParseTimeOfDay parses the more relaxed formats '08[:12[:10]][am|pm]'
// that are convenient for configuration files and command line flags.
// Use ParseTimeOfDayISOExtString for ISO 8601 strings.
func ParseTimeOfDay(val string) (TimeOfDay, error) {
	if len(val) == 0 {
		return 0, fmt.Errorf("empty value, expected '08[:12][:10][am|pm]': %w", ErrInvalidFormat)
	}
	tl := strings.TrimSpace(strings.ToLower(val))
	val = tl
	ampmState := 0
	if strings.HasSuffix(tl, "am") {
		val = strings.TrimSpace(tl[:len(tl)-2])
		ampmState = 1
	}
	if strings.HasSuffix(tl, "pm") {
		val = strings.TrimSpace(tl[:len(tl)-2])
		ampmState = 2
	}
	parts := strings.Split(val, ":")
	switch len(parts) {
	case 1:
		return parseHourMinuteSec(parts[0], "0", "0", ampmState)
	case 2:
		return parseHourMinuteSec(parts[0], parts[1], "0", ampmState)
	case 3:
		return parseHourMinuteSec(parts[0], parts[1], parts[2], ampmState)
	}
	return 0, fmt.Errorf("%q: expected '08:12[:10]': %w", val, ErrInvalidFormat)
}
