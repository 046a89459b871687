// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"cloudeng.io/logging/ctxlog"
)

// TimeZone converts between std time, hnsecs since 0001-01-01T00:00:00
// UTC, and the adjusted time for the zone, hnsecs since the same date
// and time in the zone. Implementations must be immutable and safe for
// concurrent use.
type TimeZone interface {
	// Name returns the name of the zone, eg. "America/Los_Angeles".
	Name() string
	// DisplayName returns the name to display for standard or daylight
	// saving time, eg. "PST" or "PDT".
	DisplayName(dst bool) string
	// UTCToTZ converts std time to adjusted time.
	UTCToTZ(stdTime int64) int64
	// TZToUTC converts adjusted time to std time.
	TZToUTC(adjTime int64) int64
	// DSTInEffect returns true if daylight saving time is in effect at
	// the specified std time.
	DSTInEffect(stdTime int64) bool
	// UTCOffsetAt returns the offset from UTC at the specified std time.
	UTCOffsetAt(stdTime int64) Duration
}

type utcTimeZone struct{}

func (utcTimeZone) Name() string                { return "UTC" }
func (utcTimeZone) DisplayName(bool) string     { return "UTC" }
func (utcTimeZone) UTCToTZ(stdTime int64) int64 { return stdTime }
func (utcTimeZone) TZToUTC(adjTime int64) int64 { return adjTime }
func (utcTimeZone) DSTInEffect(int64) bool      { return false }
func (utcTimeZone) UTCOffsetAt(int64) Duration  { return 0 }
func (utcTimeZone) location() *time.Location    { return time.UTC }

// UTC returns the UTC time zone.
func UTC() TimeZone {
	return utcTimeZone{}
}

func isUTC(tz TimeZone) bool {
	_, ok := tz.(utcTimeZone)
	return ok
}

var localTimeZone = sync.OnceValue(func() TimeZone {
	return NewLocationTimeZone(time.Local)
})

// LocalTime returns the time zone of the process as determined by
// time.Local, which in turn is determined by the TZ environment
// variable or the system configuration. It is created on first use and
// the same value is returned thereafter.
func LocalTime() TimeZone {
	return localTimeZone()
}

func isLocalTime(tz TimeZone) bool {
	return tz == LocalTime()
}

// SimpleTimeZone is a time zone with a fixed offset from UTC and no
// daylight saving time.
type SimpleTimeZone struct {
	offset Duration
	name   string
}

// NewSimpleTimeZone returns a SimpleTimeZone for the given offset which
// must be less than 24 hours in either direction. If name is empty the
// ISO 8601 extended form of the offset is used.
func NewSimpleTimeZone(offset Duration, name string) (*SimpleTimeZone, error) {
	if offset <= -Day || offset >= Day {
		return nil, fmt.Errorf("utc offset %v out of range: %w", offset, ErrInvalidTime)
	}
	if len(name) == 0 {
		name = offsetToISOString(offset, true)
	}
	return &SimpleTimeZone{offset: offset, name: name}, nil
}

func (z *SimpleTimeZone) Name() string                { return z.name }
func (z *SimpleTimeZone) DisplayName(bool) string     { return z.name }
func (z *SimpleTimeZone) UTCToTZ(stdTime int64) int64 { return addOffset(stdTime, int64(z.offset)) }
func (z *SimpleTimeZone) TZToUTC(adjTime int64) int64 { return addOffset(adjTime, -int64(z.offset)) }
func (z *SimpleTimeZone) DSTInEffect(int64) bool      { return false }
func (z *SimpleTimeZone) UTCOffsetAt(int64) Duration  { return z.offset }
func (z *SimpleTimeZone) UTCOffset() Duration         { return z.offset }
func (z *SimpleTimeZone) String() string              { return z.name }
func (z *SimpleTimeZone) location() *time.Location {
	return time.FixedZone(z.name, int(z.offset/Second))
}

// LocationTimeZone is a TimeZone backed by a time.Location and hence by
// the IANA time zone database as loaded by the time package.
type LocationTimeZone struct {
	loc              *time.Location
	stdName, dstName string
}

// NewLocationTimeZone returns a TimeZone for the specified location.
func NewLocationTimeZone(loc *time.Location) *LocationTimeZone {
	z := &LocationTimeZone{loc: loc}
	// Determine the standard and daylight saving names by sampling
	// both halves of the current year.
	year := time.Now().Year()
	for _, m := range []time.Month{time.January, time.July} {
		t := time.Date(year, m, 1, 12, 0, 0, 0, loc)
		name, _ := t.Zone()
		if t.IsDST() {
			z.dstName = name
		} else {
			z.stdName = name
		}
	}
	if len(z.stdName) == 0 {
		z.stdName = z.dstName
	}
	if len(z.dstName) == 0 {
		z.dstName = z.stdName
	}
	return z
}

func (z *LocationTimeZone) Name() string { return z.loc.String() }

func (z *LocationTimeZone) String() string { return z.loc.String() }

// Location returns the underlying time.Location.
func (z *LocationTimeZone) Location() *time.Location { return z.loc }

func (z *LocationTimeZone) location() *time.Location { return z.loc }

func (z *LocationTimeZone) DisplayName(dst bool) string {
	if dst {
		return z.dstName
	}
	return z.stdName
}

func (z *LocationTimeZone) offset(stdTime int64) int64 {
	_, offset := stdTimeToTime(stdTime).In(z.loc).Zone()
	return int64(offset) * int64(Second)
}

func (z *LocationTimeZone) UTCToTZ(stdTime int64) int64 {
	return addOffset(stdTime, z.offset(stdTime))
}

// TZToUTC uses time.Date to resolve the offset. Ambiguous local times,
// and those that fall in the gap created by a transition to daylight
// saving time, are resolved as time.Date resolves them: a time in the
// gap is interpreted using the offset in effect after the transition,
// eg. 02:30 on the day that clocks move from 02:00 to 03:00 becomes
// 01:30 standard time.
func (z *LocationTimeZone) TZToUTC(adjTime int64) int64 {
	dt, frac := dateTimeFromHnsecs(adjTime)
	t := time.Date(dt.Year(), time.Month(dt.Month()), dt.Day(),
		dt.Hour(), dt.Minute(), dt.Second(), int(frac)*100, z.loc)
	return timeToStdTime(t)
}

func (z *LocationTimeZone) DSTInEffect(stdTime int64) bool {
	return stdTimeToTime(stdTime).In(z.loc).IsDST()
}

func (z *LocationTimeZone) UTCOffsetAt(stdTime int64) Duration {
	return Duration(z.offset(stdTime))
}

// LoadTimeZone returns the TimeZone for name, which may be "UTC" or "Z"
// for UTC, "Local" or the empty string for LocalTime, a fixed offset in
// ISO 8601 form such as "+05:30", or an IANA time zone name as accepted
// by time.LoadLocation. The logger in ctx, if any, is used to record how
// the name was resolved.
func LoadTimeZone(ctx context.Context, name string) (TimeZone, error) {
	logger := ctxlog.Logger(ctx)
	switch name {
	case "UTC", "Z":
		return UTC(), nil
	case "", "Local":
		return LocalTime(), nil
	}
	if strings.HasPrefix(name, "+") || strings.HasPrefix(name, "-") {
		offset, err := parseZoneOffset(name)
		if err != nil {
			logger.Warn("invalid time zone offset", "name", name, "error", err)
			return nil, err
		}
		tz, err := NewSimpleTimeZone(offset, "")
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded fixed offset time zone", "name", name, "offset", offset.String())
		return tz, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("failed to load time zone", "name", name, "error", err)
		return nil, fmt.Errorf("time zone %q: %w", name, err)
	}
	logger.Debug("loaded time zone", "name", name)
	return NewLocationTimeZone(loc), nil
}

// addOffset returns t+offset, saturating at the int64 limits so that
// times within a day of MinSysTime or MaxSysTime do not wrap around.
func addOffset(t, offset int64) int64 {
	switch {
	case offset > 0 && t > math.MaxInt64-offset:
		return math.MaxInt64
	case offset < 0 && t < math.MinInt64-offset:
		return math.MinInt64
	}
	return t + offset
}

// locationFor returns a time.Location for tz, time zones other than
// those implemented by this package are represented by a fixed zone
// with the offset in effect at stdTime.
func locationFor(tz TimeZone, stdTime int64) *time.Location {
	if l, ok := tz.(interface{ location() *time.Location }); ok {
		return l.location()
	}
	return time.FixedZone(tz.DisplayName(tz.DSTInEffect(stdTime)), int(tz.UTCOffsetAt(stdTime)/Second))
}
