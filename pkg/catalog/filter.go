package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/filetug/filehub/pkg/fsutils"
)

type predicate func(r *FileRecord) bool

// Filter returns the records matching every constraint of spec, in input order.
// The input slice is never modified. An empty spec returns a copy of records.
func Filter(records []FileRecord, spec FilterSpec) []FileRecord {
	predicates := compile(spec)
	result := make([]FileRecord, 0, len(records))
	for i := range records {
		if matchAll(&records[i], predicates) {
			result = append(result, records[i])
		}
	}
	return result
}

func matchAll(r *FileRecord, predicates []predicate) bool {
	for _, p := range predicates {
		if !p(r) {
			return false
		}
	}
	return true
}

// compile turns the set fields of spec into predicates,
// ordered text, category, min size, max size, date from, date to.
func compile(spec FilterSpec) (predicates []predicate) {
	if spec.SearchText != "" {
		// A Caser keeps state and is not safe for concurrent use, so one per compile.
		lower := cases.Lower(language.Und)
		needle := lower.String(spec.SearchText)
		predicates = append(predicates, func(r *FileRecord) bool {
			return strings.Contains(lower.String(r.OriginalFilename), needle)
		})
	}
	if _, ok := categoryMIMETypes[spec.Category]; ok {
		category := spec.Category
		predicates = append(predicates, func(r *FileRecord) bool {
			return category.Matches(r.FileType)
		})
	}
	if spec.MinSizeMB != nil {
		minBytes := fsutils.MiBToBytes(*spec.MinSizeMB)
		predicates = append(predicates, func(r *FileRecord) bool {
			return float64(r.Size) >= minBytes
		})
	}
	if spec.MaxSizeMB != nil {
		maxBytes := fsutils.MiBToBytes(*spec.MaxSizeMB)
		predicates = append(predicates, func(r *FileRecord) bool {
			return float64(r.Size) <= maxBytes
		})
	}
	if spec.DateFrom != nil {
		from := *spec.DateFrom
		predicates = append(predicates, func(r *FileRecord) bool {
			return !r.UploadedAt.Before(from)
		})
	}
	if spec.DateTo != nil {
		to := *spec.DateTo
		predicates = append(predicates, func(r *FileRecord) bool {
			return !r.UploadedAt.After(to)
		})
	}
	return predicates
}
