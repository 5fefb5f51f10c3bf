// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
)

// ErrYearOutOfRange is returned for a year outside of MinYear to MaxYear.
var ErrYearOutOfRange = errors.New("year out of range")

// MinYear and MaxYear bound the years for which day numbers, and hence
// weekdays, spans and range lengths, can be computed. Construct accepts
// any year, but DayNumber, AddDays, Weekday and Range.Len are only
// defined for dates within these bounds.
const (
	MinYear int64 = -(1 << 40)
	MaxYear int64 = 1 << 40
)

// CheckYear returns an error wrapping ErrYearOutOfRange if year is
// outside of MinYear to MaxYear.
func CheckYear(year int) error {
	if y := int64(year); y < MinYear || y > MaxYear {
		return fmt.Errorf("%w: %d", ErrYearOutOfRange, year)
	}
	return nil
}

// YearsContaining returns the range covering the n years that contain
// year and that start with a year that is a multiple of n. Years are
// grouped by floor division so that for n = 10 year -5 is in -10 to -1.
// n must be positive and year must be within MinYear to MaxYear.
func YearsContaining(year, n int) Range {
	first := floorDiv(year, n) * n
	return Range{
		From: CalendarDate{Year: first, Month: 1, Day: 1},
		To:   CalendarDate{Year: first + n - 1, Month: 12, Day: 31},
	}
}
