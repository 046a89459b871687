// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strings"
)

// ErrInvalidISO8601Duration is returned for malformed ISO 8601 periods.
var ErrInvalidISO8601Duration = errors.New("invalid ISO8601 duration")

// Years and months have no fixed length, periods use 365 days for a
// year and a twelfth of that for a month.
const (
	periodYear  = 365 * Day
	periodMonth = periodYear / 12
)

// periodNumber is a decimal number as it appears in a period, the
// fraction is frac/fracScale.
type periodNumber struct {
	whole     uint64
	frac      uint64
	fracScale uint64
}

// maxFracDigits keeps fracScale within a uint64, digits beyond it are
// below hnsec resolution for every designator.
const maxFracDigits = 18

func parsePeriodNumber(val, dur string) (periodNumber, error) {
	n := periodNumber{fracScale: 1}
	whole, frac, hasFrac := strings.Cut(val, ".")
	if len(whole) == 0 && len(frac) == 0 {
		return n, fmt.Errorf("invalid number: %q: %q: %w", val, dur, ErrInvalidISO8601Duration)
	}
	for i := range len(whole) {
		c := whole[i]
		if c < '0' || c > '9' {
			return n, fmt.Errorf("invalid number: %q: %q: %w", val, dur, ErrInvalidISO8601Duration)
		}
		hi, lo := bits.Mul64(n.whole, 10)
		lo, carry := bits.Add64(lo, uint64(c-'0'), 0)
		if hi != 0 || carry != 0 {
			return n, fmt.Errorf("number too large: %q: %q: %w", val, dur, ErrInvalidISO8601Duration)
		}
		n.whole = lo
	}
	if !hasFrac {
		return n, nil
	}
	for i := range len(frac) {
		c := frac[i]
		if c < '0' || c > '9' {
			return n, fmt.Errorf("invalid number: %q: %q: %w", val, dur, ErrInvalidISO8601Duration)
		}
		if i < maxFracDigits {
			n.frac = n.frac*10 + uint64(c-'0')
			n.fracScale *= 10
		}
	}
	return n, nil
}

func consumeN(dur string) (periodNumber, byte, int, error) {
	for i := range dur {
		c := dur[i]
		if (c >= '0' && c <= '9') || c == '.' {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D', 'H', 'S':
			n, err := parsePeriodNumber(dur[:i], dur)
			if err != nil {
				return n, 0, 0, err
			}
			return n, c, i + 1, nil
		}
		break
	}
	return periodNumber{}, 0, 0, fmt.Errorf("invalid number or duration designator: %s: %w", dur, ErrInvalidISO8601Duration)
}

// scale returns n units, truncating any part of the fraction below an
// hnsec. The fraction is scaled with 128 bit intermediates so that it
// is exact.
func scale(unit Duration, n periodNumber, dur string) (Duration, error) {
	u := uint64(unit)
	hi, whole := bits.Mul64(u, n.whole)
	// unit*frac < unit*fracScale, so the quotient fits and Div64 cannot
	// panic.
	fhi, flo := bits.Mul64(u, n.frac)
	frac, _ := bits.Div64(fhi, flo, n.fracScale)
	total, carry := bits.Add64(whole, frac, 0)
	if hi != 0 || carry != 0 || total > math.MaxInt64 {
		return 0, fmt.Errorf("duration out of range: %q: %w", dur, ErrInvalidISO8601Duration)
	}
	return Duration(total), nil
}

func addPeriod(result, d Duration, dur string) (Duration, error) {
	if result > Duration(math.MaxInt64)-d {
		return 0, fmt.Errorf("duration out of range: %q: %w", dur, ErrInvalidISO8601Duration)
	}
	return result + d, nil
}

// ParseISO8601Period parses a duration string in the ISO8601 format
// [-]PnYnMnWnDTnHnMnS.
func ParseISO8601Period(dur string) (Duration, error) {
	nl := len(dur)
	hasP, hasNP := (nl > 0 && dur[0] == 'P'), (nl > 1 && dur[0] == '-' && dur[1] == 'P')
	if !hasP && !hasNP {
		return 0, fmt.Errorf("duration must start with P or -P: %s: %w", dur, ErrInvalidISO8601Duration)
	}
	orig := dur
	dur = dur[1:]
	if hasNP {
		dur = dur[1:]
	}

	var result Duration
	inTime := false
	for len(dur) > 0 {
		if dur[0] == 'T' {
			if inTime {
				return 0, fmt.Errorf("repeated T designator: %w", ErrInvalidISO8601Duration)
			}
			inTime = true
			dur = dur[1:]
			continue
		}
		n, designator, idx, err := consumeN(dur)
		if err != nil {
			return 0, err
		}
		dur = dur[idx:]
		var unit Duration
		if !inTime {
			switch designator {
			case 'Y':
				unit = periodYear
			case 'M':
				unit = periodMonth
			case 'W':
				unit = Week
			case 'D':
				unit = Day
			default:
				return 0, fmt.Errorf("invalid duration designator: %c: %w", designator, ErrInvalidISO8601Duration)
			}
		} else {
			switch designator {
			case 'H':
				unit = Hour
			case 'M':
				unit = Minute
			case 'S':
				unit = Second
			default:
				return 0, fmt.Errorf("invalid duration designator: %c: %w", designator, ErrInvalidISO8601Duration)
			}
		}
		d, err := scale(unit, n, orig)
		if err != nil {
			return 0, err
		}
		if result, err = addPeriod(result, d, orig); err != nil {
			return 0, err
		}
	}
	if hasNP {
		result = -result
	}
	return result, nil
}
