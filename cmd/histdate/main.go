// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command histdate constructs historical dates, reports the days covered
// by a granularity and places labelled historical dates in
// chronological order.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/historical/calendar"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: histdate
summary: construct, span and order historical dates
commands:
  - name: construct
    summary: construct a calendar date from a year and an optional month and day
  - name: span
    summary: print the days covered by the granularity unit containing a date
  - name: order
    summary: print the historical dates listed in a YAML file in chronological order
    arguments:
      - <config-file>
`

type dateFlags struct {
	cmdutil.LoggingFlags
	Year  int    `subcmd:"year,0,'year, zero or negative for years before 1 CE'"`
	Month string `subcmd:"month,,'month of the year, 1-12, optional'"`
	Day   string `subcmd:"day,,'day of the month, optional, requires --month'"`
}

type spanFlags struct {
	cmdutil.LoggingFlags
	Year        int    `subcmd:"year,0,'year, zero or negative for years before 1 CE'"`
	Month       string `subcmd:"month,,'month of the year, 1-12, optional'"`
	Day         string `subcmd:"day,,'day of the month, optional, requires --month'"`
	Granularity string `subcmd:"granularity,day,'one of time, day, week, month, year, decade, century or millennium'"`
}

type orderFlags struct {
	cmdutil.LoggingFlags
	From string `subcmd:"from,,'only print entries that overlap the range starting at this year'"`
	To   string `subcmd:"to,,'only print entries that overlap the range ending at this year'"`
}

type histdate struct {
	out io.Writer
}

func cli(out io.Writer) *subcmd.CommandSetYAML {
	cmd := &histdate{out: out}
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("construct").MustRunnerAndFlags(cmd.construct,
		subcmd.MustRegisteredFlagSet(&dateFlags{}))
	cmdSet.Set("span").MustRunnerAndFlags(cmd.span,
		subcmd.MustRegisteredFlagSet(&spanFlags{}))
	cmdSet.Set("order").MustRunnerAndFlags(cmd.order,
		subcmd.MustRegisteredFlagSet(&orderFlags{}))
	return cmdSet
}

func main() {
	ctx := context.Background()
	if err := cli(os.Stdout).Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

// withLogger returns a context carrying the logger configured by lf
// and a function that closes any log file it opened.
func withLogger(ctx context.Context, lf *cmdutil.LoggingFlags) (context.Context, func(), error) {
	logger, err := lf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { _ = logger.Close() }, nil
}

// parseOption parses an optional numeric flag value, the empty string
// is treated as unset.
func parseOption(name, value string) (calendar.Option, error) {
	value = strings.TrimSpace(value)
	if len(value) == 0 {
		return calendar.None, nil
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return calendar.None, fmt.Errorf("invalid --%v: %q: %w", name, value, err)
	}
	return calendar.Some(v), nil
}

func constructFromFlags(year int, month, day string) (calendar.CalendarDate, error) {
	m, err := parseOption("month", month)
	if err != nil {
		return calendar.CalendarDate{}, err
	}
	d, err := parseOption("day", day)
	if err != nil {
		return calendar.CalendarDate{}, err
	}
	return calendar.Construct(year, m, d)
}
