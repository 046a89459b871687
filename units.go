// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

// Unit identifies a calendar or clock field for the Add and Roll
// family of methods.
type Unit int

const (
	Years Unit = iota
	Months
	Weeks
	Days
	Hours
	Minutes
	Seconds
	Msecs
	Usecs
	Hnsecs
)

var unitNames = []string{"years", "months", "weeks", "days", "hours", "minutes", "seconds", "msecs", "usecs", "hnsecs"}

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return "unknown"
	}
	return unitNames[u]
}

// AllowDayOverflow determines what happens when adding or rolling
// years or months results in a day that is past the end of the
// resulting month.
type AllowDayOverflow int

const (
	// Overflow moves the excess days into the following month, eg.
	// 2000-01-31 plus one month is 2000-03-02.
	Overflow AllowDayOverflow = iota
	// Clamp sets the day to the last day of the resulting month, eg.
	// 2000-01-31 plus one month is 2000-02-29.
	Clamp
)

func (a AllowDayOverflow) String() string {
	switch a {
	case Overflow:
		return "overflow"
	case Clamp:
		return "clamp"
	}
	return "unknown"
}
