package domain

import (
	"strings"
)

// NormalizeText prepares free text for case-insensitive comparison:
// surrounding whitespace is trimmed, letters are lowercased and runs of
// spaces collapse to one. Used for recipient addresses and status aliases.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
