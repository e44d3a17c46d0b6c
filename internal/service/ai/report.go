package ai

import (
	"sort"
	"strings"
)

// ReportSection is one labeled block of an analysis response.
type ReportSection struct {
	Label string
	Body  string
}

// ParseReportSections splits sanitized analysis text on the section
// labels the prompt asked for. Labels may appear in any order; matching
// is case-insensitive and requires the trailing colon. When no label is
// found the whole text becomes a single unlabeled section. Never fails:
// a model that ignored the requested structure still produces a usable
// report.
func ParseReportSections(text string) []ReportSection {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	type mark struct {
		label string
		start int // label start
		body  int // first byte after the colon
	}

	lower := strings.ToLower(text)
	var marks []mark
	for _, label := range []string{SectionKeyTerms, SectionChallenges, SectionSuggestions} {
		idx := strings.Index(lower, strings.ToLower(label)+":")
		if idx < 0 {
			continue
		}
		marks = append(marks, mark{label: label, start: idx, body: idx + len(label) + 1})
	}
	if len(marks) == 0 {
		return []ReportSection{{Body: text}}
	}
	sort.Slice(marks, func(i, j int) bool { return marks[i].start < marks[j].start })

	var sections []ReportSection
	if preface := strings.TrimSpace(text[:marks[0].start]); preface != "" {
		sections = append(sections, ReportSection{Body: preface})
	}
	for i, m := range marks {
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1].start
		}
		body := strings.TrimSpace(text[m.body:end])
		sections = append(sections, ReportSection{Label: m.label, Body: body})
	}
	return sections
}
