// Package catalog holds the file records served by the catalog API
// and the filter engine that narrows them for display.
package catalog

import "time"

// FileRecord is one deduplicated file known to the catalog.
type FileRecord struct {
	ID               string    `json:"id"`
	OriginalFilename string    `json:"original_filename"`
	FileType         string    `json:"file_type"`
	Size             int64     `json:"size"`
	UploadedAt       time.Time `json:"uploaded_at"`
	FileHash         string    `json:"file_hash"`
	ReferenceCount   int       `json:"reference_count"`
	// File is the server URL of the stored content, when the server exposes it.
	File string `json:"file,omitempty"`
}

// IsValid reports whether the record satisfies the catalog invariants.
// A record with no references should have been removed by the server.
func (r FileRecord) IsValid() bool {
	return r.ReferenceCount >= 1 && r.Size >= 0
}
