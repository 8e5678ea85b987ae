package catalog

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format accepted for date bounds.
const DateLayout = "2006-01-02"

// FilterInput is the raw text a user typed into the filter controls.
type FilterInput struct {
	SearchText string
	Category   string
	MinSizeMB  string
	MaxSizeMB  string
	DateFrom   string
	DateTo     string
}

// ParseFilterInput converts raw input into a FilterSpec.
// Bounds that do not parse are left unset rather than reported,
// so a typo never hides the whole catalog.
// Date-only bounds resolve to the start of that day in loc (time.Local when nil).
func ParseFilterInput(in FilterInput, loc *time.Location) FilterSpec {
	if loc == nil {
		loc = time.Local
	}
	return FilterSpec{
		SearchText: in.SearchText,
		Category:   ParseCategory(in.Category),
		MinSizeMB:  ParseSizeMB(in.MinSizeMB),
		MaxSizeMB:  ParseSizeMB(in.MaxSizeMB),
		DateFrom:   ParseDate(in.DateFrom, loc),
		DateTo:     ParseDate(in.DateTo, loc),
	}
}

// ParseSizeMB parses a non-negative megabyte amount.
// It returns nil for empty, non-numeric, negative, NaN and infinite input.
func ParseSizeMB(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	return &v
}

// ParseDate parses a calendar date (YYYY-MM-DD) or an RFC 3339 instant.
// It returns nil when s is neither.
func ParseDate(s string, loc *time.Location) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	return nil
}

// Input renders spec back into raw text, the inverse of ParseFilterInput
// for values it produced.
func (s FilterSpec) Input(loc *time.Location) FilterInput {
	if loc == nil {
		loc = time.Local
	}
	in := FilterInput{
		SearchText: s.SearchText,
		Category:   string(s.Category),
	}
	if s.MinSizeMB != nil {
		in.MinSizeMB = strconv.FormatFloat(*s.MinSizeMB, 'f', -1, 64)
	}
	if s.MaxSizeMB != nil {
		in.MaxSizeMB = strconv.FormatFloat(*s.MaxSizeMB, 'f', -1, 64)
	}
	in.DateFrom = formatDate(s.DateFrom, loc)
	in.DateTo = formatDate(s.DateTo, loc)
	return in
}

func formatDate(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	local := t.In(loc)
	y, m, d := local.Date()
	if local.Equal(time.Date(y, m, d, 0, 0, 0, 0, loc)) {
		return local.Format(DateLayout)
	}
	return t.Format(time.RFC3339)
}
