package fsutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSizeShortText(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0B"},
		{500, "500B"},
		{1023, "1023B"},
		{1024, "1KB"},
		{1536, "2KB"},
		{1024 * 1024, "1MB"},
		{2 * 1024 * 1024, "2MB"},
		{1024*1024 + 512*1024 - 1, "1MB"},
		{1024 * 1024 * 1024, "1GB"},
		{1024 * 1024 * 1024 * 1024, "1TB"},
		{1024 * 1024 * 1024 * 1024 * 1024, "1024TB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			actual := GetSizeShortText(tt.size)
			if actual != tt.expected {
				t.Errorf("GetSizeShortText(%d) = %s; want %s", tt.size, actual, tt.expected)
			}
		})
	}
}

func TestMiBText(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{"zero", 0, "0.00"},
		{"two_mib", 2 * MiB, "2.00"},
		{"one_and_half", MiB + MiB/2, "1.50"},
		{"one_byte", 1, "0.00"},
		{"half_rounds_away_from_zero", 131072, "0.13"}, // exactly 0.125 MiB
		{"just_below_half", 131071, "0.12"},
		{"ten_mib", 10 * MiB, "10.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MiBText(tt.size))
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.235001))
	assert.Equal(t, -1.24, Round2(-1.235001))
	assert.Equal(t, 0.0, Round2(0))
}

func TestMiBToBytes(t *testing.T) {
	assert.Equal(t, float64(MiB), MiBToBytes(1))
	assert.Equal(t, float64(MiB/2), MiBToBytes(0.5))
	assert.Equal(t, 1.0, BytesToMiB(MiB))
}
