// Package dates canonicalizes the date form arriving over the request
// channel. The UI layer historically sent dates as YYYY-MM-DD strings,
// full ISO timestamps, or empty strings; everything persisted here is the
// canonical YYYY-MM-DD form, and a missing date stays an empty string.
package dates

import (
	"strings"
	"time"
)

const Canonical = "2006-01-02"

var layouts = []string{
	Canonical,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// Parse attempts the known layouts in order.
func Parse(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Normalize returns the canonical YYYY-MM-DD form of value, or "" when the
// value is empty or unparseable.
func Normalize(value string) string {
	t, ok := Parse(value)
	if !ok {
		return ""
	}
	return t.Format(Canonical)
}

// NormalizeOrDefault falls back to asOf's date when value is missing or
// unparseable.
func NormalizeOrDefault(value string, asOf time.Time) string {
	if normalized := Normalize(value); normalized != "" {
		return normalized
	}
	return asOf.Format(Canonical)
}
