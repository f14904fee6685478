// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orcid

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned for a date string that is not YYYY, YYYY-MM,
// or YYYY-MM-DD, or whose parts are out of range.
var ErrInvalidDate = errors.New("invalid fuzzy date")

// Precision is the finest date part a FuzzyDate carries.
type Precision int

const (
	PrecisionNone Precision = iota
	PrecisionYear
	PrecisionMonth
	PrecisionDay
)

func (p Precision) String() string {
	switch p {
	case PrecisionYear:
		return "year"
	case PrecisionMonth:
		return "month"
	case PrecisionDay:
		return "day"
	default:
		return "none"
	}
}

var fuzzyDateRegex = regexp.MustCompile(`^(\d{4})(?:-(\d{2})(?:-(\d{2}))?)?$`)

// FuzzyDate is a publication date that keeps the precision of its source
// string. Month and Day are zero when the source omitted them.
type FuzzyDate struct {
	Year  int
	Month int
	Day   int
}

// ParseFuzzyDate parses "2021", "2021-03", or "2021-03-04". Missing parts
// stay missing. An empty string yields the zero FuzzyDate.
func ParseFuzzyDate(s string) (FuzzyDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FuzzyDate{}, nil
	}
	m := fuzzyDateRegex.FindStringSubmatch(s)
	if m == nil {
		return FuzzyDate{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	var d FuzzyDate
	d.Year, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		d.Month, _ = strconv.Atoi(m[2])
		if d.Month < 1 || d.Month > 12 {
			return FuzzyDate{}, fmt.Errorf("%w: month out of range in %q", ErrInvalidDate, s)
		}
	}
	if m[3] != "" {
		d.Day, _ = strconv.Atoi(m[3])
		t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
		if d.Day < 1 || t.Day() != d.Day {
			return FuzzyDate{}, fmt.Errorf("%w: day out of range in %q", ErrInvalidDate, s)
		}
	}
	return d, nil
}

// IsZero reports whether the date carries no parts at all.
func (d FuzzyDate) IsZero() bool {
	return d.Year == 0
}

// Precision returns the finest part present.
func (d FuzzyDate) Precision() Precision {
	switch {
	case d.Year == 0:
		return PrecisionNone
	case d.Month == 0:
		return PrecisionYear
	case d.Day == 0:
		return PrecisionMonth
	default:
		return PrecisionDay
	}
}

// String formats the date at its own precision.
func (d FuzzyDate) String() string {
	switch d.Precision() {
	case PrecisionYear:
		return fmt.Sprintf("%04d", d.Year)
	case PrecisionMonth:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	case PrecisionDay:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d FuzzyDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *FuzzyDate) UnmarshalText(b []byte) error {
	parsed, err := ParseFuzzyDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
