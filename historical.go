// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package historical

import (
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/historical/calendar"
)

// HistoricalDate is a date whose granularity and precision are fixed when
// it is created and whose value, a point or an interval, is supplied
// later. HistoricalDate is a value: the With methods return a modified
// copy and never change the receiver, so a HistoricalDate may be shared
// between goroutines without locking.
type HistoricalDate struct {
	granularity Granularity
	precision   Precision
	value       Value
}

// New returns a HistoricalDate with the specified granularity and
// precision and an Unset value.
func New(granularity Granularity, precision Precision) HistoricalDate {
	return HistoricalDate{
		granularity: granularity,
		precision:   precision,
	}
}

// Granularity returns the granularity the date was created with.
func (hd HistoricalDate) Granularity() Granularity {
	return hd.granularity
}

// Precision returns the precision the date was created with.
func (hd HistoricalDate) Precision() Precision {
	return hd.precision
}

// Value returns the date's value.
func (hd HistoricalDate) Value() Value {
	return hd.value
}

// Point returns the date if the value is a single point.
func (hd HistoricalDate) Point() (calendar.CalendarDate, bool) {
	if hd.value.kind != Point {
		return calendar.CalendarDate{}, false
	}
	return hd.value.start, true
}

// RangeStart returns the start of an interval expressed as separate
// bounds, if present.
func (hd HistoricalDate) RangeStart() (calendar.CalendarDate, bool) {
	if hd.value.kind != Bounds || !hd.value.hasStart {
		return calendar.CalendarDate{}, false
	}
	return hd.value.start, true
}

// RangeEnd returns the end of an interval expressed as separate
// bounds, if present.
func (hd HistoricalDate) RangeEnd() (calendar.CalendarDate, bool) {
	if hd.value.kind != Bounds || !hd.value.hasEnd {
		return calendar.CalendarDate{}, false
	}
	return hd.value.end, true
}

// Range returns the interval if the value is a paired interval.
func (hd HistoricalDate) Range() (calendar.Range, bool) {
	if hd.value.kind != Paired {
		return calendar.Range{}, false
	}
	return calendar.Range{From: hd.value.start, To: hd.value.end}, true
}

// WithValue returns a copy of hd with its value replaced by v.
func (hd HistoricalDate) WithValue(v Value) HistoricalDate {
	hd.value = v
	return hd
}

// WithPoint returns a copy of hd whose value is the single date cd.
func (hd HistoricalDate) WithPoint(cd calendar.CalendarDate) (HistoricalDate, error) {
	v, err := PointValue(cd)
	if err != nil {
		return hd, err
	}
	return hd.WithValue(v), nil
}

// WithBounds returns a copy of hd whose value is an interval with
// separate start and end dates, either of which may be nil.
func (hd HistoricalDate) WithBounds(start, end *calendar.CalendarDate) (HistoricalDate, error) {
	v, err := BoundsValue(start, end)
	if err != nil {
		return hd, err
	}
	return hd.WithValue(v), nil
}

// WithRange returns a copy of hd whose value is the paired interval from/to.
func (hd HistoricalDate) WithRange(from, to calendar.CalendarDate) (HistoricalDate, error) {
	v, err := PairedValue(from, to)
	if err != nil {
		return hd, err
	}
	return hd.WithValue(v), nil
}

// Cleared returns a copy of hd with an Unset value.
func (hd HistoricalDate) Cleared() HistoricalDate {
	hd.value = Value{}
	return hd
}

// Extent returns the earliest and latest days covered by hd taking its
// granularity into account, so that a point with Century granularity
// covers the entire century that contains it. A nil from or to denotes
// an open-ended interval; both are nil for an Unset value.
func (hd HistoricalDate) Extent() (from, to *calendar.CalendarDate, err error) {
	v := hd.value
	if v.hasStart {
		r, err := hd.granularity.Span(v.start)
		if err != nil {
			return nil, nil, err
		}
		from = &r.From
	}
	if v.hasEnd {
		r, err := hd.granularity.Span(v.end)
		if err != nil {
			return nil, nil, err
		}
		to = &r.To
	}
	return from, to, nil
}

// Validate returns an error listing every problem with hd, or nil.
// The zero HistoricalDate, for example, is invalid since it has neither
// a granularity nor a precision. The value need not be checked since
// PointValue, BoundsValue and PairedValue only create valid values.
func (hd HistoricalDate) Validate() error {
	errs := &errors.M{}
	if !hd.granularity.Valid() {
		errs.Append(fmt.Errorf("%w: %v", ErrUnknownGranularity, int(hd.granularity)))
	}
	if !hd.precision.Valid() {
		errs.Append(fmt.Errorf("%w: %v", ErrUnknownPrecision, int(hd.precision)))
	}
	return errs.Err()
}

func (hd HistoricalDate) String() string {
	return fmt.Sprintf("%v %v %v", hd.precision, hd.granularity, hd.value)
}
