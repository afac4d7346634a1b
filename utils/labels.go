package utils

import (
	"strings"
)

// NormalizeLabel converts a raw classifier label into the canonical lookup
// key: the text before the first comma, trimmed and lowercased. Classifier
// labels often carry comma-separated synonyms ("french_fries, chips").
func NormalizeLabel(raw string) string {
	key, _, _ := strings.Cut(raw, ",")
	return strings.ToLower(strings.TrimSpace(key))
}
