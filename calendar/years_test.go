// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"math"
	"testing"

	"cloudeng.io/historical/calendar"
)

func TestCheckYear(t *testing.T) {
	for _, year := range []int{0, -44, 2024, int(calendar.MinYear), int(calendar.MaxYear)} {
		if err := calendar.CheckYear(year); err != nil {
			t.Errorf("%v: %v", year, err)
		}
	}
	for _, year := range []int{math.MinInt, math.MinInt + 5, math.MaxInt, int(calendar.MinYear) - 1, int(calendar.MaxYear) + 1} {
		if err := calendar.CheckYear(year); !errors.Is(err, calendar.ErrYearOutOfRange) {
			t.Errorf("%v: got %v, want %v", year, err, calendar.ErrYearOutOfRange)
		}
	}
}

func TestYearsContaining(t *testing.T) {
	nd := newCalendarDate
	for _, tc := range []struct {
		year, n  int
		from, to calendar.CalendarDate
	}{
		{-50, 1, nd(-50, 1, 1), nd(-50, 12, 31)},
		{1995, 10, nd(1990, 1, 1), nd(1999, 12, 31)},
		{-5, 10, nd(-10, 1, 1), nd(-1, 12, 31)},
		{-10, 10, nd(-10, 1, 1), nd(-1, 12, 31)},
		{-101, 100, nd(-200, 1, 1), nd(-101, 12, 31)},
		{int(calendar.MaxYear), 1000, nd(int(calendar.MaxYear)/1000*1000, 1, 1), nd(int(calendar.MaxYear)/1000*1000+999, 12, 31)},
		{int(calendar.MinYear), 1000, nd(int(calendar.MinYear)/1000*1000-1000, 1, 1), nd(int(calendar.MinYear)/1000*1000-1, 12, 31)},
	} {
		r := calendar.YearsContaining(tc.year, tc.n)
		if got, want := r.From, tc.from; got != want {
			t.Errorf("%v %v: got %v, want %v", tc.year, tc.n, got, want)
		}
		if got, want := r.To, tc.to; got != want {
			t.Errorf("%v %v: got %v, want %v", tc.year, tc.n, got, want)
		}
		if !r.Contains(nd(tc.year, 6, 1)) {
			t.Errorf("%v %v: %v does not contain the year", tc.year, tc.n, r)
		}
	}
}

func TestDayNumberLimits(t *testing.T) {
	nd := newCalendarDate
	for _, cd := range []calendar.CalendarDate{
		nd(int(calendar.MinYear), 1, 1),
		nd(int(calendar.MinYear), 12, 31),
		nd(int(calendar.MaxYear), 1, 1),
		nd(int(calendar.MaxYear), 12, 31),
	} {
		n := cd.DayNumber()
		if got, want := calendar.FromDayNumber(n), cd; got != want {
			t.Errorf("%v: got %v, want %v", n, got, want)
		}
		if got, want := cd.AddDays(1).AddDays(-1), cd; got != want {
			t.Errorf("%v: got %v, want %v", cd, got, want)
		}
	}
	first, last := nd(int(calendar.MinYear), 1, 1), nd(int(calendar.MaxYear), 12, 31)
	if first.DayNumber() >= 0 || last.DayNumber() <= 0 {
		t.Errorf("unexpected day numbers: %v %v", first.DayNumber(), last.DayNumber())
	}

	for _, year := range []int{math.MinInt, math.MaxInt} {
		_, err := calendar.NewRange(nd(year, 1, 1), nd(year, 12, 31))
		if !errors.Is(err, calendar.ErrInvalidRange) || !errors.Is(err, calendar.ErrYearOutOfRange) {
			t.Errorf("%v: got %v, want %v and %v", year, err, calendar.ErrInvalidRange, calendar.ErrYearOutOfRange)
		}
	}
	r, err := calendar.NewRange(first, nd(int(calendar.MinYear), 1, 7))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := r.Len(), 7; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
