// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrDayWithoutMonth is returned by Construct when a day is supplied
	// without a month. Its message is stable and may be shown to users.
	ErrDayWithoutMonth = errors.New("Cannot create a day-specific string without a month value.") //nolint:staticcheck

	// ErrInvalidCalendarDate is returned by Construct when the year, month
	// and day do not exist in the proleptic Gregorian calendar.
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
)

// ErrorKind identifies the reason that Construct failed.
type ErrorKind int

const (
	DayWithoutMonth ErrorKind = iota + 1
	InvalidCalendarDate
)

func (k ErrorKind) String() string {
	switch k {
	case DayWithoutMonth:
		return "day without month"
	case InvalidCalendarDate:
		return "invalid calendar date"
	}
	return "unknown error kind " + strconv.Itoa(int(k))
}

// ConstructionError is the error returned by Construct. It records
// the components that were supplied and supports errors.Is for
// ErrDayWithoutMonth and ErrInvalidCalendarDate.
type ConstructionError struct {
	Kind       ErrorKind
	Year       int
	Month, Day Option
}

// Error implements error. The message for DayWithoutMonth is always that
// of ErrDayWithoutMonth.
func (e *ConstructionError) Error() string {
	if e.Kind == DayWithoutMonth {
		return ErrDayWithoutMonth.Error()
	}
	return fmt.Sprintf("%v: year %d, month %v, day %v", ErrInvalidCalendarDate, e.Year, e.Month, e.Day)
}

// Is supports errors.Is.
func (e *ConstructionError) Is(target error) bool {
	switch e.Kind {
	case DayWithoutMonth:
		return target == ErrDayWithoutMonth
	case InvalidCalendarDate:
		return target == ErrInvalidCalendarDate
	}
	return false
}

// Option represents an optional month or day value. The zero value, None,
// is unset and is distinct from Some(0).
type Option struct {
	value int
	set   bool
}

// None represents an unset Option.
var None = Option{}

// Some returns an Option set to v.
func Some(v int) Option {
	return Option{value: v, set: true}
}

// Get returns the value and whether it is set.
func (o Option) Get() (int, bool) {
	return o.value, o.set
}

// IsSet returns true if the Option has a value.
func (o Option) IsSet() bool {
	return o.set
}

func (o Option) String() string {
	if !o.set {
		return "none"
	}
	return strconv.Itoa(o.value)
}

// Construct validates and assembles a CalendarDate from a year and an
// optional month and day:
//
//   - a day without a month is an error, ErrDayWithoutMonth.
//   - a month and day yield that date if it exists, otherwise
//     ErrInvalidCalendarDate; out of range days are never clamped or
//     carried into the following month.
//   - a month without a day yields the first day of that month.
//   - neither yields January 1st of the year.
//
// The year may be zero or negative to refer to dates before the
// common era and is never range checked.
func Construct(year int, month, day Option) (CalendarDate, error) {
	m, hasMonth := month.Get()
	d, hasDay := day.Get()
	switch {
	case hasDay && !hasMonth:
		return CalendarDate{}, &ConstructionError{Kind: DayWithoutMonth, Year: year, Month: month, Day: day}
	case hasDay:
	case hasMonth:
		d = 1
	default:
		m, d = 1, 1
	}
	cd := CalendarDate{Year: year, Month: Month(m), Day: d}
	if !cd.Valid() {
		return CalendarDate{}, &ConstructionError{Kind: InvalidCalendarDate, Year: year, Month: month, Day: day}
	}
	return cd, nil
}

// MustConstruct is like Construct but panics on error.
func MustConstruct(year int, month, day Option) CalendarDate {
	cd, err := Construct(year, month, day)
	if err != nil {
		panic(err)
	}
	return cd
}
