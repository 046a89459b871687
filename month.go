// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month as an int, January is 1.
type Month time.Month

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var months = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}

func (m Month) String() string {
	return time.Month(m).String()
}

// Short returns the three letter name of the month, eg. "Jan".
func (m Month) Short() string {
	return m.String()[:3]
}

// Valid returns true if m is in the range January to December.
func (m Month) Valid() bool {
	return m >= January && m <= December
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other longer
// prefixes of "January" to "December" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	if len(lc) >= 3 {
		for i := range months {
			if strings.HasPrefix(months[i], lc) {
				return Month(i + 1), nil
			}
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

// parseShortMonth parses exactly the three letter month names used
// by the simple string format.
func parseShortMonth(val string) (Month, bool) {
	if len(val) != 3 {
		return 0, false
	}
	m, err := ParseMonth(val)
	return m, err == nil
}
