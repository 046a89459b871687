// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"strings"
	"time"
)

// Constraints represents constraints on date values such
// as weekends or custom dates to exclude. Custom dates take precedence
// over weekdays and weekends.
type Constraints struct {
	Weekdays bool     // If true, include weekdays
	Weekends bool     // If true, include weekends
	Custom   DateList // If non-empty, exclude these dates
}

func (dc Constraints) String() string {
	var out strings.Builder
	if len(dc.Custom) > 0 {
		out.WriteString("excluding custom dates: ")
		out.WriteString(dc.Custom.String())
		out.WriteString(": ")
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		out.WriteString("everyday")
	case dc.Weekdays:
		out.WriteString("weekdays only")
	case dc.Weekends:
		out.WriteString("weekends only")
	}
	return out.String()
}

// Include returns true if the given date satisfies the constraints.
// Custom dates are evaluated before weekdays and weekends.
// An empty set Constraints will return true, ie. include all dates.
func (dc Constraints) Include(d Date) bool {
	if len(dc.Custom) > 0 && dc.Custom.Contains(d) {
		return false
	}
	wd := d.DayOfWeek()
	switch {
	case dc.Weekdays && dc.Weekends:
		return true
	case dc.Weekdays:
		return wd >= time.Monday && wd <= time.Friday
	case dc.Weekends:
		return wd == time.Sunday || wd == time.Saturday
	}
	return true
}

// Empty returns true if no constraints are set.
func (dc Constraints) Empty() bool {
	return !dc.Weekdays && !dc.Weekends && len(dc.Custom) == 0
}
