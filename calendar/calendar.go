// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides dates on the proleptic Gregorian calendar,
// including those with zero or negative years, and a validating
// constructor for dates that are known only to the year or month.
package calendar

import (
	"cmp"
	"fmt"
)

// CalendarDate represents a date with a year, month and day. Years use
// astronomical numbering, that is, year 0 is 1 BCE and year -1 is 2 BCE.
// Use Construct to create a validated CalendarDate.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// NewCalendarDate returns a CalendarDate for the year, month and day
// without validating them.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// Valid returns true if the date exists in the proleptic Gregorian calendar.
func (cd CalendarDate) Valid() bool {
	return cd.Month.Valid() && cd.Day >= 1 && cd.Day <= DaysInMonth(cd.Year, cd.Month)
}

// Compare returns -1, 0 or +1 depending on whether cd is before, the
// same as, or after o.
func (cd CalendarDate) Compare(o CalendarDate) int {
	if c := cmp.Compare(cd.Year, o.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(cd.Month, o.Month); c != 0 {
		return c
	}
	return cmp.Compare(cd.Day, o.Day)
}

// Before returns true if cd is strictly before o.
func (cd CalendarDate) Before(o CalendarDate) bool {
	return cd.Compare(o) < 0
}

// After returns true if cd is strictly after o.
func (cd CalendarDate) After(o CalendarDate) bool {
	return cd.Compare(o) > 0
}

// DayOfYear returns the day of the year as 1-365 for non-leap years
// and 1-366 for leap years, or 0 if cd is not valid.
func (cd CalendarDate) DayOfYear() int {
	if !cd.Valid() {
		return 0
	}
	if IsLeap(cd.Year) {
		return dayOfYearLeap[cd.Month-1] + cd.Day
	}
	return dayOfYear[cd.Month-1] + cd.Day
}

// Tomorrow returns the date of the next day, 12/31 wraps to 1/1 of
// the following year. An invalid cd is returned unchanged.
func (cd CalendarDate) Tomorrow() CalendarDate {
	if !cd.Valid() {
		return cd
	}
	if cd.Month == 12 && cd.Day == 31 {
		return CalendarDate{Year: cd.Year + 1, Month: 1, Day: 1}
	}
	dim := daysInMonthForYear(cd.Year)
	if cd.Day >= dim[cd.Month-1] {
		cd.Month++
		cd.Day = 1
		return cd
	}
	cd.Day++
	return cd
}

// Yesterday returns the date of the previous day, 1/1 wraps to 12/31
// of the preceding year. An invalid cd is returned unchanged.
func (cd CalendarDate) Yesterday() CalendarDate {
	if !cd.Valid() {
		return cd
	}
	if cd.Month == 1 && cd.Day == 1 {
		return CalendarDate{Year: cd.Year - 1, Month: 12, Day: 31}
	}
	if cd.Day <= 1 {
		cd.Month--
		cd.Day = daysInMonthForYear(cd.Year)[cd.Month-1]
		return cd
	}
	cd.Day--
	return cd
}

// String returns the date as YYYY-MM-DD with a leading - for negative years.
func (cd CalendarDate) String() string {
	if cd.Year < 0 {
		return fmt.Sprintf("%05d-%02d-%02d", cd.Year, cd.Month, cd.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}
