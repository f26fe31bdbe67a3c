package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		ChecksumBytes(nil),
	)
	assert.Len(t, ChecksumBytes([]byte("page")), 64)
}

func TestRandomHex(t *testing.T) {
	t.Parallel()

	a, err := RandomHex(16)
	require.NoError(t, err)
	b, err := RandomHex(16)
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5KB"},
		{name: "upload limit", bytes: 10 << 20, expected: "10MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "rate limit window", duration: 15 * time.Minute, expected: "15m0s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}
