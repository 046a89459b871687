// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Duration represents elapsed time in hnsecs (100 nanosecond ticks).
// It spans roughly +/- 29,000 years, as opposed to time.Duration's
// +/- 292 years.
type Duration int64

const (
	Hnsec       Duration = 1
	Microsecond          = 10 * Hnsec
	Millisecond          = 1000 * Microsecond
	Second               = 1000 * Millisecond
	Minute               = 60 * Second
	Hour                 = 60 * Minute
	Day                  = 24 * Hour
	Week                 = 7 * Day
)

var unitDurations = []Duration{
	Years:   0,
	Months:  0,
	Weeks:   Week,
	Days:    Day,
	Hours:   Hour,
	Minutes: Minute,
	Seconds: Second,
	Msecs:   Millisecond,
	Usecs:   Microsecond,
	Hnsecs:  Hnsec,
}

// Hnsecs returns the duration as a count of hnsecs.
func (d Duration) Hnsecs() int64 {
	return int64(d)
}

// Total returns the number of whole units in d, truncated towards zero.
// Years and months have no fixed length and return ErrInvalidUnit.
func (d Duration) Total(u Unit) (int64, error) {
	if u < Weeks || u > Hnsecs {
		return 0, invalidUnit("Duration.Total", u)
	}
	return int64(d / unitDurations[u]), nil
}

// Seconds returns the number of whole seconds in d, truncated towards zero.
func (d Duration) Seconds() int64 {
	return int64(d / Second)
}

// Days returns the number of whole days in d, truncated towards zero.
func (d Duration) Days() int64 {
	return int64(d / Day)
}

// Std returns the duration as a time.Duration, saturating at the
// limits of time.Duration.
func (d Duration) Std() time.Duration {
	if d > Duration(math.MaxInt64/100) {
		return time.Duration(math.MaxInt64)
	}
	if d < Duration(math.MinInt64/100) {
		return time.Duration(math.MinInt64)
	}
	return time.Duration(d) * 100
}

// DurationFromStd returns the Duration for the time.Duration truncated
// to hnsec resolution.
func DurationFromStd(d time.Duration) Duration {
	return Duration(d / 100)
}

// Abs returns the absolute value of d.
func (d Duration) Abs() Duration {
	if d < 0 {
		return -d
	}
	return d
}

// String returns the duration as an ISO 8601 period.
func (d Duration) String() string {
	return d.ISO8601()
}

// ISO8601 returns the duration as an ISO 8601 period using only the
// fixed length designators, ie. days, hours, minutes and seconds, eg.
// P1DT2H3M4.5S. Fractional seconds are written with up to 7 digits.
func (d Duration) ISO8601() string {
	var out strings.Builder
	if d < 0 {
		out.WriteByte('-')
		// math.MinInt64 has no positive counterpart, drop one hnsec.
		if d == Duration(math.MinInt64) {
			d++
		}
		d = -d
	}
	out.WriteByte('P')
	if d == 0 {
		out.WriteString("T0S")
		return out.String()
	}
	if days := d / Day; days > 0 {
		out.WriteString(strconv.FormatInt(int64(days), 10))
		out.WriteByte('D')
		d -= days * Day
	}
	if d == 0 {
		return out.String()
	}
	out.WriteByte('T')
	if h := d / Hour; h > 0 {
		out.WriteString(strconv.FormatInt(int64(h), 10))
		out.WriteByte('H')
		d -= h * Hour
	}
	if m := d / Minute; m > 0 {
		out.WriteString(strconv.FormatInt(int64(m), 10))
		out.WriteByte('M')
		d -= m * Minute
	}
	if d > 0 {
		s := d / Second
		out.WriteString(strconv.FormatInt(int64(s), 10))
		out.WriteString(fracSecsToISOString(d - s*Second))
		out.WriteByte('S')
	}
	return out.String()
}
