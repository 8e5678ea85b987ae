package catalog

import (
	"slices"
	"strings"
)

// Category is a user-facing file type group backed by a fixed MIME set.
type Category string

const (
	CategoryNone  Category = ""
	CategoryPDF   Category = "PDF"
	CategoryImage Category = "Image"
	CategoryText  Category = "Text"
	CategoryVideo Category = "Video"
)

// categoryMIMETypes must not be modified at runtime.
// New categories are added here and in categoryOrder.
var categoryMIMETypes = map[Category][]string{
	CategoryPDF:   {"application/pdf"},
	CategoryImage: {"image/jpeg", "image/png", "image/gif"},
	CategoryText:  {"text/plain", "text/csv"},
	CategoryVideo: {"video/mp4", "video/webm", "video/ogg"},
}

var categoryOrder = []Category{CategoryPDF, CategoryImage, CategoryText, CategoryVideo}

// Categories returns the selectable categories in display order, without None.
func Categories() []Category {
	return slices.Clone(categoryOrder)
}

// MIMETypes returns a copy of the MIME set for c, or nil for None and unknown categories.
func MIMETypes(c Category) []string {
	return slices.Clone(categoryMIMETypes[c])
}

// ParseCategory matches s case-insensitively against the known categories.
// Anything unknown, including the empty string, is CategoryNone.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	for _, c := range categoryOrder {
		if strings.EqualFold(string(c), s) {
			return c
		}
	}
	return CategoryNone
}

// Matches reports whether mimeType belongs to c.
// CategoryNone, and any category without a MIME set, matches everything.
func (c Category) Matches(mimeType string) bool {
	types, ok := categoryMIMETypes[c]
	if !ok {
		return true
	}
	return slices.Contains(types, strings.ToLower(mimeType))
}

func (c Category) String() string {
	if c == CategoryNone {
		return "All Types"
	}
	return string(c)
}
