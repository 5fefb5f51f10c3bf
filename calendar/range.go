// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidRange is returned when the start of a range is after its end.
var ErrInvalidRange = errors.New("invalid range")

// Range represents a range of CalendarDate values, inclusive of the
// From and To dates.
type Range struct {
	From, To CalendarDate
}

// NewRange returns a Range for the from/to dates. Both dates must be
// valid with years within MinYear to MaxYear and from must not be later
// than to.
func NewRange(from, to CalendarDate) (Range, error) {
	if !from.Valid() {
		return Range{}, fmt.Errorf("%w: from: %v: %w", ErrInvalidRange, from, ErrInvalidCalendarDate)
	}
	if !to.Valid() {
		return Range{}, fmt.Errorf("%w: to: %v: %w", ErrInvalidRange, to, ErrInvalidCalendarDate)
	}
	for _, cd := range []CalendarDate{from, to} {
		if err := CheckYear(cd.Year); err != nil {
			return Range{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
		}
	}
	if from.After(to) {
		return Range{}, fmt.Errorf("%w: from is later than to: %v %v", ErrInvalidRange, from, to)
	}
	return Range{From: from, To: to}, nil
}

// Contains returns true if cd is within the range.
func (r Range) Contains(cd CalendarDate) bool {
	return !cd.Before(r.From) && !cd.After(r.To)
}

// Overlaps returns true if r and o share at least one day.
func (r Range) Overlaps(o Range) bool {
	return !r.To.Before(o.From) && !o.To.Before(r.From)
}

// Len returns the number of days in the range.
func (r Range) Len() int {
	return int(r.To.DayNumber()-r.From.DayNumber()) + 1
}

// Days returns an iterator that yields each date in the range.
func (r Range) Days() iter.Seq[CalendarDate] {
	return func(yield func(CalendarDate) bool) {
		for td := r.From; !td.After(r.To); td = td.Tomorrow() {
			if !yield(td) {
				return
			}
		}
	}
}

func (r Range) String() string {
	return fmt.Sprintf("%s - %s", r.From, r.To)
}
