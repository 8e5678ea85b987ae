// Package storagestats turns the deduplication counters reported by the
// catalog server into display values.
package storagestats

import (
	"math"
	"strconv"

	"github.com/filetug/filehub/pkg/catalog"
	"github.com/filetug/filehub/pkg/fsutils"
)

// Stats are the aggregate counters of the storage-savings endpoint, in MB.
// A nil counter was not reported.
type Stats struct {
	TotalRequestedUploadSizeMB *float64 `json:"total_requested_upload_size_mb,omitempty"`
	UniqueStorageUsedMB        *float64 `json:"unique_storage_used_mb,omitempty"`
	StorageSavedMB             *float64 `json:"storage_saved_mb,omitempty"`
}

// DisplayStats holds the counters rounded to two decimals and their text form.
type DisplayStats struct {
	TotalRequestedMB float64
	UniqueUsedMB     float64
	SavedMB          float64

	TotalRequested string
	UniqueUsed     string
	Saved          string
}

// Format converts stats for display. Missing, NaN and infinite counters become 0.
// Savings are taken as reported and are never recomputed from the other two
// counters, since the server may normalise them differently.
func Format(stats Stats) DisplayStats {
	d := DisplayStats{
		TotalRequestedMB: counter(stats.TotalRequestedUploadSizeMB),
		UniqueUsedMB:     counter(stats.UniqueStorageUsedMB),
		SavedMB:          counter(stats.StorageSavedMB),
	}
	d.TotalRequested = formatMB(d.TotalRequestedMB)
	d.UniqueUsed = formatMB(d.UniqueUsedMB)
	d.Saved = formatMB(d.SavedMB)
	return d
}

// SavedPercent is the share of requested bytes that deduplication avoided storing.
// It is 0 when nothing was requested.
func (d DisplayStats) SavedPercent() float64 {
	if d.TotalRequestedMB <= 0 {
		return 0
	}
	return fsutils.Round2(d.SavedMB / d.TotalRequestedMB * 100)
}

func counter(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return fsutils.Round2(*v)
}

// formatMB uses the shortest decimal form, so 0 renders as "0" and 12.5 as "12.5".
func formatMB(v float64) string {
	if v == 0 {
		// normalise -0
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BytesToMB renders a byte count in binary megabytes with two decimals,
// rounding halves away from zero: 2097152 -> "2.00".
func BytesToMB(size int64) string {
	return fsutils.MiBText(size)
}

// RecordSavedBytes is how many bytes deduplication saved for one record:
// every reference beyond the first would otherwise be stored again.
func RecordSavedBytes(r catalog.FileRecord) int64 {
	if r.ReferenceCount <= 1 {
		return 0
	}
	return int64(r.ReferenceCount-1) * r.Size
}
