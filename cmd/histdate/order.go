// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"iter"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/historical"
	"cloudeng.io/historical/calendar"
	"cloudeng.io/historical/chronology"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

// dateSpec is a calendar date given as numeric components, the month
// and day are optional. A bare scalar is treated as a year.
type dateSpec struct {
	Year  int  `yaml:"year"`
	Month *int `yaml:"month"`
	Day   *int `yaml:"day"`
}

func (d *dateSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*d = dateSpec{}
		return node.Decode(&d.Year)
	}
	type plain dateSpec
	return node.Decode((*plain)(d))
}

func optionFor(v *int) calendar.Option {
	if v == nil {
		return calendar.None
	}
	return calendar.Some(*v)
}

func (d *dateSpec) calendarDate() (calendar.CalendarDate, error) {
	return calendar.Construct(d.Year, optionFor(d.Month), optionFor(d.Day))
}

func (d *dateSpec) optionalDate() (*calendar.CalendarDate, error) {
	if d == nil {
		return nil, nil
	}
	cd, err := d.calendarDate()
	if err != nil {
		return nil, err
	}
	return &cd, nil
}

// entrySpec describes a single labelled historical date. At most one
// of point, start/end or from/to may be specified; if none are the
// entry's value is unset.
type entrySpec struct {
	Label       string    `yaml:"label"`
	Granularity string    `yaml:"granularity"`
	Precision   string    `yaml:"precision"`
	Point       *dateSpec `yaml:"point"`
	Start       *dateSpec `yaml:"start"`
	End         *dateSpec `yaml:"end"`
	From        *dateSpec `yaml:"from"`
	To          *dateSpec `yaml:"to"`
}

type timelineConfig struct {
	Entries []entrySpec `yaml:"entries"`
}

func (e entrySpec) historicalDate() (historical.HistoricalDate, error) {
	g, err := historical.ParseGranularity(e.Granularity)
	if err != nil {
		return historical.HistoricalDate{}, err
	}
	precision := e.Precision
	if len(precision) == 0 {
		precision = historical.Precise.String()
	}
	p, err := historical.ParsePrecision(precision)
	if err != nil {
		return historical.HistoricalDate{}, err
	}
	hd := historical.New(g, p)
	point := e.Point != nil
	bounds := e.Start != nil || e.End != nil
	paired := e.From != nil || e.To != nil
	switch {
	case (point && bounds) || (point && paired) || (bounds && paired):
		return hd, fmt.Errorf("only one of point, start/end or from/to may be specified")
	case point:
		cd, err := e.Point.calendarDate()
		if err != nil {
			return hd, err
		}
		return hd.WithPoint(cd)
	case bounds:
		start, err := e.Start.optionalDate()
		if err != nil {
			return hd, err
		}
		end, err := e.End.optionalDate()
		if err != nil {
			return hd, err
		}
		return hd.WithBounds(start, end)
	case paired:
		if e.From == nil || e.To == nil {
			return hd, fmt.Errorf("both from and to must be specified")
		}
		from, err := e.From.calendarDate()
		if err != nil {
			return hd, err
		}
		to, err := e.To.calendarDate()
		if err != nil {
			return hd, err
		}
		return hd.WithRange(from, to)
	}
	return hd, nil
}

// timeline builds a chronology.Timeline from cfg, all invalid entries
// are reported.
func (cfg timelineConfig) timeline() (*chronology.Timeline, error) {
	tl := &chronology.Timeline{}
	errs := &errors.M{}
	for i, e := range cfg.Entries {
		label := e.Label
		if len(label) == 0 {
			label = fmt.Sprintf("entry-%d", i)
		}
		hd, err := e.historicalDate()
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", label, err))
			continue
		}
		errs.Append(tl.Add(label, hd))
	}
	return tl, errs.Err()
}

// yearsRange returns the range from the first day of the from year to
// the last day of the to year. If only one is specified it is used for
// both.
func yearsRange(fromYear, toYear string) (calendar.Range, bool, error) {
	f, err := parseOption("from", fromYear)
	if err != nil {
		return calendar.Range{}, false, err
	}
	t, err := parseOption("to", toYear)
	if err != nil {
		return calendar.Range{}, false, err
	}
	if !f.IsSet() && !t.IsSet() {
		return calendar.Range{}, false, nil
	}
	if !f.IsSet() {
		f = t
	}
	if !t.IsSet() {
		t = f
	}
	fy, _ := f.Get()
	ty, _ := t.Get()
	r, err := calendar.NewRange(
		calendar.NewCalendarDate(fy, 1, 1),
		calendar.NewCalendarDate(ty, 12, 31))
	return r, true, err
}

func (h *histdate) order(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*orderFlags)
	ctx, closer, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	r, filter, err := yearsRange(fv.From, fv.To)
	if err != nil {
		return err
	}
	var cfg timelineConfig
	if err := cmdyaml.ParseConfigFileStrict(ctx, args[0], &cfg); err != nil {
		return err
	}
	tl, err := cfg.timeline()
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("order", "config", args[0], "entries", tl.Len())
	var entries iter.Seq2[string, historical.HistoricalDate]
	if filter {
		entries = tl.Overlapping(r)
	} else {
		entries = tl.Entries()
	}
	for label, hd := range entries {
		fmt.Fprintf(h.out, "%v: %v\n", label, hd)
	}
	return nil
}
