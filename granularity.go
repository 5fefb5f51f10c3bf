// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package historical

import (
	"errors"
	"fmt"
	"strings"

	"cloudeng.io/historical/calendar"
)

// ErrUnknownGranularity is returned for a value or name that is not one
// of the defined granularities.
var ErrUnknownGranularity = errors.New("unknown granularity")

// Granularity is the unit of time that a HistoricalDate is known to.
// For units coarser than a day the stored calendar date is a
// representative anchor, see Anchor.
type Granularity int

// The zero value is not a valid Granularity.
const (
	Time Granularity = iota + 1
	Day
	Week
	Month
	Year
	Decade
	Century
	Millennium
)

var granularityNames = []string{"", "time", "day", "week", "month", "year", "decade", "century", "millennium"}

// Granularities returns all of the defined granularities from finest
// to coarsest.
func Granularities() []Granularity {
	return []Granularity{Time, Day, Week, Month, Year, Decade, Century, Millennium}
}

// Valid returns true if g is one of the defined granularities.
func (g Granularity) Valid() bool {
	return g >= Time && g <= Millennium
}

func (g Granularity) String() string {
	if !g.Valid() {
		return fmt.Sprintf("granularity(%d)", int(g))
	}
	return granularityNames[g]
}

// ParseGranularity returns the Granularity with the given name, ignoring case.
func ParseGranularity(name string) (Granularity, error) {
	lc := strings.ToLower(strings.TrimSpace(name))
	for i, n := range granularityNames {
		if i > 0 && n == lc {
			return Granularity(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGranularity, name)
}

// Span returns the range of days covered by the unit of granularity g
// that contains cd:
//
//   - Time and Day: cd itself.
//   - Week: the ISO 8601 week, Monday to Sunday.
//   - Month: the first to the last day of the month.
//   - Year: January 1st to December 31st.
//   - Decade, Century, Millennium: the 10, 100 or 1000 years that start
//     with a year that is a multiple of 10, 100 or 1000. Years are grouped
//     by floor division so that year -5 is in the decade -10 to -1.
//
// cd must be a valid date with a year within calendar.MinYear to
// calendar.MaxYear.
func (g Granularity) Span(cd calendar.CalendarDate) (calendar.Range, error) {
	if !cd.Valid() {
		return calendar.Range{}, fmt.Errorf("%v: %w", cd, calendar.ErrInvalidCalendarDate)
	}
	if err := calendar.CheckYear(cd.Year); err != nil {
		return calendar.Range{}, fmt.Errorf("%v: %w", cd, err)
	}
	switch g {
	case Time, Day:
		return calendar.Range{From: cd, To: cd}, nil
	case Week:
		offset := (int(cd.Weekday()) + 6) % 7 // days since Monday
		from := cd.AddDays(-offset)
		return calendar.Range{From: from, To: from.AddDays(6)}, nil
	case Month:
		return calendar.Range{
			From: calendar.NewCalendarDate(cd.Year, cd.Month, 1),
			To:   calendar.NewCalendarDate(cd.Year, cd.Month, calendar.DaysInMonth(cd.Year, cd.Month)),
		}, nil
	case Year:
		return calendar.YearsContaining(cd.Year, 1), nil
	case Decade:
		return calendar.YearsContaining(cd.Year, 10), nil
	case Century:
		return calendar.YearsContaining(cd.Year, 100), nil
	case Millennium:
		return calendar.YearsContaining(cd.Year, 1000), nil
	}
	return calendar.Range{}, fmt.Errorf("%w: %v", ErrUnknownGranularity, g)
}

// Anchor returns the representative calendar date for the unit of
// granularity g that contains cd, that is, the first day of its Span.
func (g Granularity) Anchor(cd calendar.CalendarDate) (calendar.CalendarDate, error) {
	r, err := g.Span(cd)
	if err != nil {
		return calendar.CalendarDate{}, err
	}
	return r.From, nil
}
