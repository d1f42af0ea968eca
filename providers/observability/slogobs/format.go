package slogobs

import (
	"os"
	"strings"
)

// Format represents the output format for logs.
type Format string

const (
	// FormatCompact is a single-line format with JSON attributes.
	// Example: 2026-03-02 10:40:35 DEBUG serp parsed → {"serp.ads":2}
	FormatCompact Format = "compact"

	// FormatJSON writes one JSON object per record.
	FormatJSON Format = "json"
)

// ParseFormat parses a format name. Unknown names yield FormatCompact.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(FormatJSON)) {
		return FormatJSON
	}
	return FormatCompact
}

// FormatFromEnv reads SERPSIM_LOG_FORMAT, falling back to LOG_FORMAT.
func FormatFromEnv() Format {
	for _, key := range []string{"SERPSIM_LOG_FORMAT", "LOG_FORMAT"} {
		if v := os.Getenv(key); v != "" {
			return ParseFormat(v)
		}
	}
	return FormatCompact
}
