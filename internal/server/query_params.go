package server

import (
	"strconv"
	"strings"
	"time"
)

// parseOptionalTime accepts RFC3339 or bare dates. A bare date parses to
// midnight UTC, or end of day when endOfDay is set.
func parseOptionalTime(value string, endOfDay bool) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		utc := t.UTC()
		return &utc, nil
	}

	t, err := time.Parse("2006-01-02", trimmed)
	if err != nil {
		return nil, err
	}
	utc := t.UTC()
	if endOfDay {
		utc = utc.Add(24*time.Hour - time.Nanosecond)
	}
	return &utc, nil
}

func parseID(value string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(value), 10, 64)
}

func parseOptionalInt(value string, fallback int) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}
