// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloudeng.io/historical"
	"cloudeng.io/historical/calendar"
)

func TestConstructCmd(t *testing.T) {
	ctx := context.Background()
	out := &strings.Builder{}
	h := &histdate{out: out}
	for _, tc := range []struct {
		year       int
		month, day string
		output     string
	}{
		{-44, "3", "15", "-0044-03-15 Thursday\n"},
		{2024, "2", "29", "2024-02-29 Thursday\n"},
		{-50, "", "", "-0050-01-01 Sunday\n"},
		{1970, " 1 ", "", "1970-01-01 Thursday\n"},
	} {
		out.Reset()
		fv := &dateFlags{Year: tc.year, Month: tc.month, Day: tc.day}
		if err := h.construct(ctx, fv, nil); err != nil {
			t.Errorf("%v-%v-%v: %v", tc.year, tc.month, tc.day, err)
			continue
		}
		if got, want := out.String(), tc.output; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}

	err := h.construct(ctx, &dateFlags{Year: 2024, Day: "10"}, nil)
	if !errors.Is(err, calendar.ErrDayWithoutMonth) {
		t.Errorf("got %v, want %v", err, calendar.ErrDayWithoutMonth)
	}
	err = h.construct(ctx, &dateFlags{Year: 2023, Month: "2", Day: "29"}, nil)
	if !errors.Is(err, calendar.ErrInvalidCalendarDate) {
		t.Errorf("got %v, want %v", err, calendar.ErrInvalidCalendarDate)
	}
	err = h.construct(ctx, &dateFlags{Year: 2023, Month: "feb"}, nil)
	if err == nil || !strings.Contains(err.Error(), "invalid --month") {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestSpanCmd(t *testing.T) {
	ctx := context.Background()
	out := &strings.Builder{}
	h := &histdate{out: out}
	for _, tc := range []struct {
		flags  spanFlags
		output string
	}{
		{spanFlags{Year: -50, Granularity: "century"},
			"century: -0100-01-01 - -0001-12-31 (36524 days)\n"},
		{spanFlags{Year: 2024, Month: "2", Day: "14", Granularity: "month"},
			"month: 2024-02-01 - 2024-02-29 (29 days)\n"},
		{spanFlags{Year: 2024, Month: "1", Day: "3", Granularity: "Week"},
			"week: 2024-01-01 - 2024-01-07 (7 days)\n"},
		{spanFlags{Year: -44, Month: "3", Day: "15", Granularity: "day"},
			"day: -0044-03-15 - -0044-03-15 (1 days)\n"},
	} {
		out.Reset()
		fv := tc.flags
		if err := h.span(ctx, &fv, nil); err != nil {
			t.Errorf("%v: %v", tc.flags, err)
			continue
		}
		if got, want := out.String(), tc.output; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
	err := h.span(ctx, &spanFlags{Year: 1, Granularity: "epoch"}, nil)
	if !errors.Is(err, historical.ErrUnknownGranularity) {
		t.Errorf("got %v, want %v", err, historical.ErrUnknownGranularity)
	}
}

const timelineYAML = `entries:
  - label: ides
    granularity: day
    point: {year: -44, month: 3, day: 15}
  - label: republic
    granularity: year
    precision: approximate
    start: -509
    end: -27
  - label: augustus
    granularity: year
    from: -27
    to: 14
  - label: unknown
    granularity: century
  - label: founding
    granularity: year
    precision: approximate
    end:
      year: -753
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "timeline.yaml")
	if err := os.WriteFile(filename, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestOrderCmd(t *testing.T) {
	ctx := context.Background()
	out := &strings.Builder{}
	h := &histdate{out: out}
	filename := writeConfig(t, timelineYAML)

	if err := h.order(ctx, &orderFlags{}, []string{filename}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), `founding: approximate year [open, -0753-01-01]
republic: approximate year [-0509-01-01, -0027-01-01]
ides: precise day -0044-03-15
augustus: precise year (-0027-01-01, 0014-01-01)
unknown: precise century unset
`; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	out.Reset()
	if err := h.order(ctx, &orderFlags{From: "-44"}, []string{filename}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), `republic: approximate year [-0509-01-01, -0027-01-01]
ides: precise day -0044-03-15
`; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	out.Reset()
	if err := h.order(ctx, &orderFlags{From: "-30", To: "-20"}, []string{filename}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), `republic: approximate year [-0509-01-01, -0027-01-01]
augustus: precise year (-0027-01-01, 0014-01-01)
`; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOrderCmdErrors(t *testing.T) {
	ctx := context.Background()
	h := &histdate{out: &strings.Builder{}}

	filename := writeConfig(t, `entries:
  - label: no-month
    granularity: day
    point: {year: 2024, day: 3}
  - label: not-a-date
    granularity: day
    point: {year: 2023, month: 2, day: 29}
  - label: both
    granularity: year
    point: 10
    start: 5
  - label: half-range
    granularity: year
    from: 10
  - label: epoch
    granularity: epoch
    point: 10
  - label: inverted
    granularity: year
    from: 10
    to: 5
  - label: fine
    granularity: year
    point: 10
`)
	err := h.order(ctx, &orderFlags{}, []string{filename})
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, target := range []error{
		calendar.ErrDayWithoutMonth,
		calendar.ErrInvalidCalendarDate,
		calendar.ErrInvalidRange,
		historical.ErrUnknownGranularity,
	} {
		if !errors.Is(err, target) {
			t.Errorf("%v: does not contain %v", err, target)
		}
	}
	for _, label := range []string{"no-month", "not-a-date", "both", "half-range", "epoch", "inverted"} {
		if !strings.Contains(err.Error(), label+":") {
			t.Errorf("%v: does not mention %v", err, label)
		}
	}
	if strings.Contains(err.Error(), "fine:") {
		t.Errorf("%v: unexpectedly mentions fine", err)
	}

	filename = writeConfig(t, `entries:
  - label: typo
    granularty: day
`)
	if err := h.order(ctx, &orderFlags{}, []string{filename}); err == nil {
		t.Errorf("expected an error for an unknown field")
	}

	if err := h.order(ctx, &orderFlags{From: "x"}, []string{filename}); err == nil || !strings.Contains(err.Error(), "invalid --from") {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestYearsRange(t *testing.T) {
	if _, ok, err := yearsRange("", ""); ok || err != nil {
		t.Errorf("got %v %v, want false nil", ok, err)
	}
	r, ok, err := yearsRange("", "-5")
	if !ok || err != nil {
		t.Fatalf("got %v %v, want true nil", ok, err)
	}
	if got, want := r.String(), "-0005-01-01 - -0005-12-31"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, _, err := yearsRange("9223372036854775807", ""); !errors.Is(err, calendar.ErrYearOutOfRange) {
		t.Errorf("got %v, want %v", err, calendar.ErrYearOutOfRange)
	}
	if _, _, err := yearsRange("10", "5"); !errors.Is(err, calendar.ErrInvalidRange) {
		t.Errorf("got %v, want %v", err, calendar.ErrInvalidRange)
	}
}

func TestCommandTree(t *testing.T) {
	ctx := context.Background()
	out := &strings.Builder{}
	cmdSet := cli(out)
	if got, want := cmdSet.Usage("histdate"), "construct"; !strings.Contains(got, want) {
		t.Errorf("got %v does not contain: %v", got, want)
	}
	if err := cmdSet.DispatchWithArgs(ctx, os.Args[0], "construct", "--year=-44", "--month=3", "--day=15"); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "-0044-03-15 Thursday\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	out.Reset()
	if err := cmdSet.DispatchWithArgs(ctx, os.Args[0], "span", "--granularity=decade", "--year=-5"); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "decade: -0010-01-01 - -0001-12-31 (3652 days)\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
