// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"slices"
	"strings"

	"cloudeng.io/errors"
)

// DateList represents a list of Date values.
type DateList []Date

// Parse a comma separated list of dates in any of the formats accepted by
// ParseDate. The parsed list is sorted and without duplicates. All
// invalid entries are reported.
func (dl *DateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	d := make(DateList, 0, len(parts))
	errs := &errors.M{}
	for _, part := range parts {
		date, err := ParseDate(part)
		if err != nil {
			errs.Append(err)
			continue
		}
		d = append(d, date)
	}
	if err := errs.Err(); err != nil {
		return err
	}
	slices.SortFunc(d, Date.Compare)
	*dl = slices.Compact(d)
	return nil
}

func (dl DateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Contains returns true if d is in the list.
func (dl DateList) Contains(d Date) bool {
	return slices.Contains(dl, d)
}

// Merge returns the intervals formed by consecutive dates in the list,
// which is assumed to be sorted.
func (dl DateList) Merge() IntervalList {
	if len(dl) == 0 {
		return nil
	}
	merged := make(IntervalList, 0, len(dl))
	from, to := dl[0], dl[0]
	for _, cur := range dl[1:] {
		if cur == to {
			continue
		}
		if cur == to.Tomorrow() {
			to = cur
			continue
		}
		merged = append(merged, Interval{from, to})
		from, to = cur, cur
	}
	return slices.Clip(append(merged, Interval{from, to}))
}

// MonthList represents a list of months.
type MonthList []Month

// Parse val in formats 'Jan,12,Nov'. The parsed list is sorted
// and without duplicates.
func (ml *MonthList) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value: %w", ErrInvalidFormat)
	}
	parts := strings.Split(strings.ReplaceAll(val, " ", ""), ",")
	drs := make([]Month, 0, len(parts))
	errs := &errors.M{}
	for _, p := range parts {
		var m Month
		if err := m.Parse(p); err != nil {
			errs.Append(fmt.Errorf("invalid month: %q: %w", p, ErrInvalidFormat))
			continue
		}
		drs = append(drs, m)
	}
	if err := errs.Err(); err != nil {
		return err
	}
	slices.Sort(drs)
	*ml = slices.Compact(drs)
	return nil
}

// TimeOfDayList represents a list of TimeOfDay values.
type TimeOfDayList []TimeOfDay

// Parse val as a comma separated list of TimeOfDay values in any of
// the formats accepted by ParseTimeOfDay. The parsed list is sorted.
func (tl *TimeOfDayList) Parse(val string) error {
	parts := strings.Split(val, ",")
	tods := make(TimeOfDayList, 0, len(parts))
	errs := &errors.M{}
	for _, p := range parts {
		tod, err := ParseTimeOfDay(p)
		if err != nil {
			errs.Append(err)
			continue
		}
		tods = append(tods, tod)
	}
	if err := errs.Err(); err != nil {
		return err
	}
	slices.Sort(tods)
	*tl = tods
	return nil
}
