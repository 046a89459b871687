// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate is returned for a month or day that is out of range.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidTime is returned for an hour, minute, second or fractional
	// second that is out of range.
	ErrInvalidTime = errors.New("invalid time")
	// ErrInvalidFormat is returned when text does not match the expected
	// ISO 8601 or simple string grammar.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrInvalidYearBC is returned when YearBC is requested for an A.D.
	// value or a non-positive value is supplied to SetYearBC.
	ErrInvalidYearBC = errors.New("invalid year B.C.")
	// ErrInvalidUnit is returned when an operation is not supported
	// for the requested unit.
	ErrInvalidUnit = errors.New("invalid unit")
)

func invalidDate(year int, month Month, day int) error {
	return fmt.Errorf("%04d-%02d-%02d: %w", year, int(month), day, ErrInvalidDate)
}

func invalidTime(hour, minute, second int) error {
	return fmt.Errorf("%02d:%02d:%02d: %w", hour, minute, second, ErrInvalidTime)
}

func invalidFormat(val, msg string) error {
	return fmt.Errorf("%q: %s: %w", val, msg, ErrInvalidFormat)
}

func invalidUnit(op string, u Unit) error {
	return fmt.Errorf("%s: %v: %w", op, u, ErrInvalidUnit)
}

func invalidFracSecs(frac Duration) error {
	return fmt.Errorf("fractional seconds of %d hnsecs: %w", int64(frac), ErrInvalidTime)
}

func outOfRange(dt DateTime) error {
	return fmt.Errorf("%v: outside the range of SysTime: %w", dt, ErrInvalidDate)
}
