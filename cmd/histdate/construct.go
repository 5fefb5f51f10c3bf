// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/historical"
	"cloudeng.io/logging/ctxlog"
)

func (h *histdate) construct(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*dateFlags)
	ctx, closer, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	cd, err := constructFromFlags(fv.Year, fv.Month, fv.Day)
	if err != nil {
		ctxlog.Logger(ctx).Warn("construct", "year", fv.Year, "month", fv.Month, "day", fv.Day, "error", err)
		return err
	}
	ctxlog.Logger(ctx).Info("construct", "date", cd.String(), "weekday", cd.Weekday().String())
	fmt.Fprintf(h.out, "%v %v\n", cd, cd.Weekday())
	return nil
}

func (h *histdate) span(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*spanFlags)
	ctx, closer, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	g, err := historical.ParseGranularity(fv.Granularity)
	if err != nil {
		return err
	}
	cd, err := constructFromFlags(fv.Year, fv.Month, fv.Day)
	if err != nil {
		return err
	}
	r, err := g.Span(cd)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("span", "granularity", g.String(), "date", cd.String(), "days", r.Len())
	fmt.Fprintf(h.out, "%v: %v (%v days)\n", g, r, r.Len())
	return nil
}
