// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package chronology provides support for placing historical dates
// of differing granularity in chronological order.
package chronology

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"slices"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/historical"
	"cloudeng.io/historical/calendar"
)

// Entry is a labelled HistoricalDate together with its extent as
// computed by HistoricalDate.Extent.
type Entry struct {
	Label    string
	Date     historical.HistoricalDate
	From, To *calendar.CalendarDate
}

// Timeline is a collection of labelled historical dates that can be
// iterated over in chronological order. Entries are ordered by the
// earliest day they cover, then by the latest day they cover, then
// by the order in which they were added. An open start sorts before
// every bounded start and an open end after every bounded end.
// Entries with an Unset value sort after all others.
// A Timeline is not safe for concurrent use.
type Timeline struct {
	entries []Entry
}

// Add adds hd to the timeline.
func (tl *Timeline) Add(label string, hd historical.HistoricalDate) error {
	from, to, err := hd.Extent()
	if err != nil {
		return fmt.Errorf("%v: %w", label, err)
	}
	tl.entries = append(tl.entries, Entry{Label: label, Date: hd, From: from, To: to})
	return nil
}

// Len returns the number of entries in the timeline.
func (tl *Timeline) Len() int {
	return len(tl.entries)
}

func (e Entry) keys() (from, to int64) {
	if !e.Date.Value().IsSet() {
		return math.MaxInt64, math.MaxInt64
	}
	from, to = math.MinInt64, math.MaxInt64
	if e.From != nil {
		from = e.From.DayNumber()
	}
	if e.To != nil {
		to = e.To.DayNumber()
	}
	return
}

// Sorted returns the entries in chronological order.
func (tl *Timeline) Sorted() []Entry {
	h := heap.NewMin(heap.WithSliceCap[int64, int](len(tl.entries)))
	for i, e := range tl.entries {
		from, _ := e.keys()
		h.Push(from, i)
	}
	sorted := make([]Entry, 0, len(tl.entries))
	run := make([]int, 0, 4)
	var runKey int64
	flush := func() {
		slices.SortFunc(run, func(a, b int) int {
			_, ta := tl.entries[a].keys()
			_, tb := tl.entries[b].keys()
			if c := cmp.Compare(ta, tb); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})
		for _, i := range run {
			sorted = append(sorted, tl.entries[i])
		}
		run = run[:0]
	}
	for h.Len() > 0 {
		key, idx := h.Pop()
		if len(run) > 0 && key != runKey {
			flush()
		}
		runKey = key
		run = append(run, idx)
	}
	flush()
	return sorted
}

// Entries returns an iterator over the labels and dates in the timeline
// in chronological order.
func (tl *Timeline) Entries() iter.Seq2[string, historical.HistoricalDate] {
	sorted := tl.Sorted()
	return func(yield func(string, historical.HistoricalDate) bool) {
		for _, e := range sorted {
			if !yield(e.Label, e.Date) {
				return
			}
		}
	}
}

// Overlapping returns an iterator, in chronological order, over the
// entries whose extent shares at least one day with r. Entries with an
// Unset value never overlap.
func (tl *Timeline) Overlapping(r calendar.Range) iter.Seq2[string, historical.HistoricalDate] {
	sorted := tl.Sorted()
	rf, rt := r.From.DayNumber(), r.To.DayNumber()
	return func(yield func(string, historical.HistoricalDate) bool) {
		for _, e := range sorted {
			if !e.Date.Value().IsSet() {
				continue
			}
			from, to := e.keys()
			if to < rf || from > rt {
				continue
			}
			if !yield(e.Label, e.Date) {
				return
			}
		}
	}
}
