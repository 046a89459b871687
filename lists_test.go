// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"cloudeng.io/chrono"
	"github.com/google/go-cmp/cmp"
)

func TestMonthParse(t *testing.T) {
	for _, tc := range []struct {
		val   string
		month chrono.Month
	}{
		{"1", chrono.January},
		{"01", chrono.January},
		{"12", chrono.December},
		{"Jan", chrono.January},
		{"FEB", chrono.February},
		{"sept", chrono.September},
		{"december", chrono.December},
	} {
		var m chrono.Month
		if err := m.Parse(tc.val); err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got, want := m, tc.month; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
	for _, tc := range []string{"", "0", "13", "Ja", "Foo", "Janx"} {
		var m chrono.Month
		if err := m.Parse(tc); err == nil {
			t.Errorf("failed to return an error: %v", tc)
		}
	}
	if got, want := chrono.September.Short(), "Sep"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if chrono.Month(13).Valid() || chrono.Month(0).Valid() || !chrono.May.Valid() {
		t.Errorf("Valid is broken")
	}

	var ml chrono.MonthList
	if err := ml.Parse("Nov, 2,jan,11"); err != nil {
		t.Fatal(err)
	}
	if got, want := ml, (chrono.MonthList{chrono.January, chrono.February, chrono.November}); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	err := ml.Parse("Nov,13,Foo")
	if !errors.Is(err, chrono.ErrInvalidFormat) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if !strings.Contains(err.Error(), "13") || !strings.Contains(err.Error(), "Foo") {
		t.Errorf("not all errors reported: %v", err)
	}
	if err := ml.Parse(""); !errors.Is(err, chrono.ErrInvalidFormat) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestDateList(t *testing.T) {
	var dl chrono.DateList
	if err := dl.Parse("2024-01-03,2024-01-01, 20240102,2024-Jan-01,2023-12-31,2024-01-05"); err != nil {
		t.Fatal(err)
	}
	want := chrono.DateList(dates("2023-12-31", "2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05"))
	if diff := cmp.Diff(want, dl); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if got, want := dl.String(), "2023-12-31, 2024-01-01, 2024-01-02, 2024-01-03, 2024-01-05"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !dl.Contains(chrono.MustNewDate(2024, 1, 2)) || dl.Contains(chrono.MustNewDate(2024, 1, 4)) {
		t.Errorf("Contains is broken")
	}
	if diff := cmp.Diff(chrono.IntervalList{
		newInterval("2023-12-31", "2024-01-03"),
		newInterval("2024-01-05", "2024-01-05"),
	}, dl.Merge()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	err := dl.Parse("2024-01-01,2024-13-01,2024-02-30,foo")
	if !errors.Is(err, chrono.ErrInvalidDate) || !errors.Is(err, chrono.ErrInvalidFormat) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	for _, s := range []string{"2024-13-01", "2024-02-30", "foo"} {
		if !strings.Contains(err.Error(), s) {
			t.Errorf("%v: not reported: %v", s, err)
		}
	}

	var empty chrono.DateList
	if err := empty.Parse(""); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if got := empty.Merge(); got != nil {
		t.Errorf("unexpected result: %v", got)
	}
}
