package fsutils

import (
	"math"
	"strconv"
)

// MiB is the binary megabyte used for every size bound and size display.
const MiB = 1024 * 1024

var shortSizeUnits = []string{"KB", "MB", "GB", "TB"}

// GetSizeShortText renders size as a whole number of the largest binary unit
// that fits, rounded to nearest: 1536 -> "2KB", 2097152 -> "2MB".
// TB is the largest unit.
func GetSizeShortText(size int64) string {
	if size < 1024 {
		return strconv.FormatInt(size, 10) + "B"
	}
	last := len(shortSizeUnits) - 1
	div, exp := int64(1024), 0
	for exp < last && size/div >= 1024 {
		div *= 1024
		exp++
	}
	val := (size + div/2) / div
	if val >= 1024 && exp < last {
		val /= 1024
		exp++
	}
	return strconv.FormatInt(val, 10) + shortSizeUnits[exp]
}

// BytesToMiB converts a byte count to binary megabytes.
func BytesToMiB(size int64) float64 {
	return float64(size) / MiB
}

// MiBToBytes converts binary megabytes to a byte count as a float,
// so that fractional bounds like 0.5 keep their precision.
func MiBToBytes(mb float64) float64 {
	return mb * MiB
}

// Round2 rounds to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MiBText renders a byte count in MiB with exactly two decimals.
// 2097152 -> "2.00", 1572864 -> "1.50".
func MiBText(size int64) string {
	return strconv.FormatFloat(Round2(BytesToMiB(size)), 'f', 2, 64)
}
