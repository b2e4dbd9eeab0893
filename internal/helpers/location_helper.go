package helpers

import (
	"strings"
)

// LocationSeparator joins location segments for display,
// e.g. ["Garage", "Shelf 2"] -> "Garage > Shelf 2".
const LocationSeparator = " > "

func FormatLocation(path []string) string {
	parts := make([]string, 0, len(path))
	for _, part := range path {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, LocationSeparator)
}

// ParseLocation splits a display or slash separated location back into
// segments.
func ParseLocation(location string) []string {
	normalized := strings.ReplaceAll(location, LocationSeparator, "/")
	parts := strings.Split(normalized, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

func SameLocation(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
