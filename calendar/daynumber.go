// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "time"

const (
	daysPer400Years = 146097
	// Days from 0000-03-01, the origin used for the calculations below,
	// to 0001-01-01, day number 0.
	marchOrigin = 306
)

// DayNumber returns the number of days from 0001-01-01 to cd, negative
// for earlier dates. The date must be valid and its year within MinYear
// to MaxYear, see CheckYear.
func (cd CalendarDate) DayNumber() int64 {
	y, m, d := cd.Year, int(cd.Month), cd.Day
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400 // [0, 399]
	mp := (m + 9) % 12 // March is 0
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return int64(era)*daysPer400Years + int64(doe) - marchOrigin
}

// FromDayNumber returns the CalendarDate for the day number returned
// by DayNumber, n must correspond to a year within MinYear to MaxYear.
func FromDayNumber(n int64) CalendarDate {
	z := n + marchOrigin
	era := z / daysPer400Years
	if z%daysPer400Years < 0 {
		era--
	}
	doe := int(z - era*daysPer400Years) // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	y := int(era)*400 + yoe
	if m <= 2 {
		y++
	}
	return CalendarDate{Year: y, Month: Month(m), Day: d}
}

// Weekday returns the day of the week for cd. 0001-01-01 is a Monday.
func (cd CalendarDate) Weekday() time.Weekday {
	wd := cd.DayNumber() % 7
	if wd < 0 {
		wd += 7
	}
	return time.Weekday((wd + 1) % 7)
}

// AddDays returns the date n days after cd, or before it for negative n.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	return FromDayNumber(cd.DayNumber() + int64(n))
}
