// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package historical

import (
	"errors"
	"fmt"

	"cloudeng.io/historical/calendar"
)

// ErrNoBounds is returned when an interval is specified with neither
// a start nor an end.
var ErrNoBounds = errors.New("interval has neither a start nor an end")

// Kind identifies which form of date a Value holds.
type Kind int

const (
	// Unset is the Kind of a newly created HistoricalDate.
	Unset Kind = iota
	// Point is a single date.
	Point
	// Bounds is an interval given as separate start and end dates, either
	// of which may be absent to denote an open-ended interval.
	Bounds
	// Paired is an interval given as a single from/to pair, both ends
	// are always present.
	Paired
)

func (k Kind) String() string {
	switch k {
	case Unset:
		return "unset"
	case Point:
		return "point"
	case Bounds:
		return "bounds"
	case Paired:
		return "paired"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Value holds exactly one of the forms that a historical date may take.
// Since only one form can be stored it is not possible to have both a
// point and an interval.
type Value struct {
	kind             Kind
	start, end       calendar.CalendarDate
	hasStart, hasEnd bool
}

// PointValue returns a Value for a single date.
func PointValue(cd calendar.CalendarDate) (Value, error) {
	if !cd.Valid() {
		return Value{}, fmt.Errorf("point: %v: %w", cd, calendar.ErrInvalidCalendarDate)
	}
	return Value{kind: Point, start: cd, end: cd, hasStart: true, hasEnd: true}, nil
}

// BoundsValue returns a Value for an interval with separate start and end
// dates. A nil start or end denotes an open-ended interval, but at least
// one must be supplied and start must not be later than end.
func BoundsValue(start, end *calendar.CalendarDate) (Value, error) {
	if start == nil && end == nil {
		return Value{}, ErrNoBounds
	}
	v := Value{kind: Bounds}
	if start != nil {
		if !start.Valid() {
			return Value{}, fmt.Errorf("start: %v: %w", *start, calendar.ErrInvalidCalendarDate)
		}
		v.start, v.hasStart = *start, true
	}
	if end != nil {
		if !end.Valid() {
			return Value{}, fmt.Errorf("end: %v: %w", *end, calendar.ErrInvalidCalendarDate)
		}
		v.end, v.hasEnd = *end, true
	}
	if v.hasStart && v.hasEnd && v.start.After(v.end) {
		return Value{}, fmt.Errorf("%w: start is later than end: %v %v", calendar.ErrInvalidRange, v.start, v.end)
	}
	return v, nil
}

// PairedValue returns a Value for an interval given as a single pair.
func PairedValue(from, to calendar.CalendarDate) (Value, error) {
	r, err := calendar.NewRange(from, to)
	if err != nil {
		return Value{}, err
	}
	return Value{kind: Paired, start: r.From, end: r.To, hasStart: true, hasEnd: true}, nil
}

// Kind returns the form of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsSet returns true unless the value is Unset.
func (v Value) IsSet() bool {
	return v.kind != Unset
}

func (v Value) String() string {
	switch v.kind {
	case Point:
		return v.start.String()
	case Bounds:
		return fmt.Sprintf("[%s, %s]", optionalDate(v.start, v.hasStart), optionalDate(v.end, v.hasEnd))
	case Paired:
		return fmt.Sprintf("(%s, %s)", v.start, v.end)
	}
	return v.kind.String()
}

func optionalDate(cd calendar.CalendarDate, ok bool) string {
	if !ok {
		return "open"
	}
	return cd.String()
}
