// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package historical provides support for historical dates whose
// granularity and precision vary: a date may be known to the exact day
// or only to the century, it may be exact or approximate, and it may be
// a single point, an open-ended interval or a bounded interval.
//
// A HistoricalDate is created with a fixed Granularity and Precision and
// an Unset value. Its value is then supplied using calendar dates created
// by calendar.Construct:
//
//	hd := historical.New(historical.Century, historical.Approximate)
//	cd, err := calendar.Construct(-50, calendar.None, calendar.None)
//	...
//	hd, err = hd.WithPoint(cd)
//
// The value holds exactly one of a point, a pair of separate bounds
// (either of which may be absent) or a paired range. For granularities
// coarser than a day the stored calendar date is an anchor within the
// unit and Granularity.Span and HistoricalDate.Extent report the days
// that are actually covered.
package historical
