package ai

import "strings"

// The upstream APIs return message content either as one text payload or
// as a list of typed fragments. Providers normalize to the single-string
// form at this boundary so nothing downstream ever sees fragments.

// JoinFragments collapses a fragment list into one string, joining the
// text parts with single spaces. Empty fragments are dropped.
func JoinFragments(fragments []string) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f == "" {
			continue
		}
		parts = append(parts, f)
	}
	return strings.Join(parts, " ")
}
