// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package historical

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPrecision is returned for a value or name that is not one
// of the defined precisions.
var ErrUnknownPrecision = errors.New("unknown precision")

// Precision records whether a date is asserted exactly or only
// approximately. It is independent of Granularity, an approximate
// century is as meaningful as a precise day.
type Precision int

const (
	Precise Precision = iota + 1
	Approximate
)

// Valid returns true if p is one of the defined precisions.
func (p Precision) Valid() bool {
	return p == Precise || p == Approximate
}

func (p Precision) String() string {
	switch p {
	case Precise:
		return "precise"
	case Approximate:
		return "approximate"
	}
	return fmt.Sprintf("precision(%d)", int(p))
}

// ParsePrecision returns the Precision with the given name, ignoring case.
func ParsePrecision(name string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "precise":
		return Precise, nil
	case "approximate":
		return Approximate, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPrecision, name)
}
