// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Interval represents a range of dates, inclusive of the From and To
// dates. The zero value is the single day 0001-01-01.
type Interval struct {
	From, To Date
}

// NewInterval returns the Interval for the from/to dates. If the from
// date is later than the to date then they are swapped.
func NewInterval(from, to Date) Interval {
	if from.After(to) {
		from, to = to, from
	}
	return Interval{From: from, To: to}
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s - %s", iv.From, iv.To)
}

// Parse parses an interval of the form '<from>:<to>' or '<from>/<to>'
// where the dates are in any format accepted by ParseDate.
func (iv *Interval) Parse(val string) error {
	sep := ":"
	if strings.Contains(val, "/") {
		sep = "/"
	}
	parts := strings.Split(val, sep)
	if len(parts) != 2 {
		return fmt.Errorf("%q: expected '<from>:<to>': %w", val, ErrInvalidFormat)
	}
	from, err := ParseDate(parts[0])
	if err != nil {
		return fmt.Errorf("invalid from: %w", err)
	}
	to, err := ParseDate(parts[1])
	if err != nil {
		return fmt.Errorf("invalid to: %w", err)
	}
	if to.Before(from) {
		return fmt.Errorf("from is later than to: %s %s: %w", from, to, ErrInvalidDate)
	}
	*iv = Interval{From: from, To: to}
	return nil
}

// Days returns the number of days in the interval.
func (iv Interval) Days() int {
	return iv.To.DayOfGregorianCal() - iv.From.DayOfGregorianCal() + 1
}

// Contains returns true if d is within the interval.
func (iv Interval) Contains(d Date) bool {
	return !d.Before(iv.From) && !d.After(iv.To)
}

// Intersect returns the intersection of iv and other and false if
// they do not overlap.
func (iv Interval) Intersect(other Interval) (Interval, bool) {
	from, to := iv.From, iv.To
	if other.From.After(from) {
		from = other.From
	}
	if other.To.Before(to) {
		to = other.To
	}
	if from.After(to) {
		return Interval{}, false
	}
	return Interval{From: from, To: to}, true
}

// Dates returns an iterator that yields each Date in the interval.
func (iv Interval) Dates() iter.Seq[Date] {
	return iv.DatesConstrained(Constraints{})
}

// DatesConstrained returns an iterator that yields each Date in the
// interval that satisfies the given Constraints.
func (iv Interval) DatesConstrained(dc Constraints) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		first, last := iv.From.DayOfGregorianCal(), iv.To.DayOfGregorianCal()
		for n := first; n <= last; n++ {
			d := DateFromDayOrdinal(n)
			if !dc.Include(d) {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}

// RangesConstrained returns an iterator that yields each maximal
// sub-interval of consecutive dates that satisfy the given Constraints.
func (iv Interval) RangesConstrained(dc Constraints) iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		var cur Interval
		inrange := false
		for d := range iv.Dates() {
			if !dc.Include(d) {
				if inrange && !yield(cur) {
					return
				}
				inrange = false
				continue
			}
			if !inrange {
				cur.From = d
				inrange = true
			}
			cur.To = d
		}
		if inrange {
			yield(cur)
		}
	}
}

// IntervalList represents a list of Interval values.
type IntervalList []Interval

// Parse parses a list of intervals in the format expected by
// Interval.Parse. The parsed list is sorted and without duplicates.
func (il *IntervalList) Parse(intervals []string) error {
	if len(intervals) == 0 {
		return nil
	}
	ivs := make(IntervalList, 0, len(intervals))
	for _, val := range intervals {
		var iv Interval
		if err := iv.Parse(val); err != nil {
			return err
		}
		ivs = append(ivs, iv)
	}
	slices.SortFunc(ivs, compareIntervals)
	*il = slices.Compact(ivs)
	return nil
}

func compareIntervals(a, b Interval) int {
	if c := a.From.Compare(b.From); c != 0 {
		return c
	}
	return a.To.Compare(b.To)
}

// Merge returns a new list of intervals in which overlapping or
// adjacent intervals are combined. The list is assumed to be sorted.
func (il IntervalList) Merge() IntervalList {
	if len(il) == 0 {
		return il
	}
	merged := make(IntervalList, 0, len(il))
	cur := il[0]
	for _, next := range il[1:] {
		if next.From.DayOfGregorianCal() <= cur.To.DayOfGregorianCal()+1 {
			if next.To.After(cur.To) {
				cur.To = next.To
			}
			continue
		}
		merged = append(merged, cur)
		cur = next
	}
	return slices.Clip(append(merged, cur))
}

// Bound returns a new list of intervals that are bounded by the
// specified interval, intervals that lie entirely outside of it are
// dropped.
func (il IntervalList) Bound(bound Interval) IntervalList {
	bounded := make(IntervalList, 0, len(il))
	for _, iv := range il {
		if b, ok := iv.Intersect(bound); ok {
			bounded = append(bounded, b)
		}
	}
	return slices.Clip(bounded)
}

// MonthIntervals returns the intervals covering the specified months of
// year, merged with any adjacent months. Invalid months are ignored.
func MonthIntervals(year int, months MonthList) IntervalList {
	il := make(IntervalList, 0, len(months))
	for _, m := range months {
		if !m.Valid() {
			continue
		}
		first := newDate(year, m, 1)
		il = append(il, Interval{From: first, To: first.EndOfMonth()})
	}
	slices.SortFunc(il, compareIntervals)
	return il.Merge()
}
