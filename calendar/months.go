// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "time"

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 60 etc]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// Month as an int, 1 for January through 12 for December.
type Month time.Month

// Valid returns true if the month is in the range 1-12.
func (m Month) Valid() bool {
	return m >= 1 && m <= 12
}

func (m Month) String() string {
	return time.Month(m).String()
}

// IsLeap returns true if the given year is a leap year in the proleptic
// Gregorian calendar. The rule is applied unchanged to zero and negative
// years so that year 0 (1 BCE), -4 and -400 are leap years whereas -100
// is not.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given
// year. It returns 0 for an invalid month.
func DaysInMonth(year int, month Month) int {
	if !month.Valid() {
		return 0
	}
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

func daysInMonthForYear(year int) []int {
	if IsLeap(year) {
		return daysInMonthLeap
	}
	return daysInMonth
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
