package ai

import (
	"strings"
	"unicode"
)

// SplitChunks splits text into pieces of at most maxRunes code points so
// each fits one translation call. Split points are chosen backwards from
// the limit, preferring paragraph breaks, then sentence-ending
// punctuation followed by whitespace, then any whitespace, then a hard
// cut. Text within the limit comes back as a single chunk; maxRunes <= 0
// means unlimited.
func SplitChunks(text string, maxRunes int) []string {
	runes := []rune(text)
	if maxRunes <= 0 || len(runes) <= maxRunes {
		return []string{text}
	}

	var chunks []string
	for len(runes) > maxRunes {
		cut := splitPoint(runes, maxRunes)
		if piece := strings.TrimSpace(string(runes[:cut])); piece != "" {
			chunks = append(chunks, piece)
		}
		runes = []rune(strings.TrimSpace(string(runes[cut:])))
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}

// splitPoint returns the rune index to cut at, at most maxRunes.
func splitPoint(runes []rune, maxRunes int) int {
	window := runes[:maxRunes]

	// Paragraph break: cut after the newline pair.
	for i := len(window) - 1; i > 0; i-- {
		if window[i] != '\n' {
			continue
		}
		if window[i-1] == '\n' {
			return i + 1
		}
		if i >= 3 && window[i-1] == '\r' && window[i-2] == '\n' && window[i-3] == '\r' {
			return i + 1
		}
	}

	// Sentence end: cut at the whitespace after the punctuation.
	for i := len(window) - 1; i > 0; i-- {
		p := window[i-1]
		if (p == '.' || p == '!' || p == '?') && unicode.IsSpace(window[i]) {
			return i
		}
	}

	// Word boundary.
	for i := len(window) - 1; i > 0; i-- {
		if unicode.IsSpace(window[i]) {
			return i
		}
	}

	return maxRunes
}
