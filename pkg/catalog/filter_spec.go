package catalog

import "time"

// FilterSpec is the set of constraints narrowing the displayed catalog.
// Nil bounds are not applied.
type FilterSpec struct {
	SearchText string
	Category   Category
	MinSizeMB  *float64
	MaxSizeMB  *float64
	DateFrom   *time.Time
	DateTo     *time.Time
}

// IsEmpty reports whether the spec constrains nothing.
func (s FilterSpec) IsEmpty() bool {
	return s.SearchText == "" &&
		s.Category == CategoryNone &&
		s.MinSizeMB == nil && s.MaxSizeMB == nil &&
		s.DateFrom == nil && s.DateTo == nil
}
