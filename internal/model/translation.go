package model

import "time"

// TranslationRequest carries one user-initiated translation action.
// SourceURL and SourceTitle are set when the text came from a fetched
// article rather than the text area.
type TranslationRequest struct {
	Text           string
	From           Language
	To             Language
	PreserveMarkup bool
	KeepNumerals   bool
	Analyze        bool
	SourceURL      string
	SourceTitle    string
}

// TranslationResult is the immutable record produced by one completed
// pipeline run. Re-running the same action produces a new record with a
// new ID; existing records are never mutated.
type TranslationResult struct {
	ID             string
	From           Language
	To             Language
	SourceText     string
	TranslatedText string
	RawOutput      string
	Report         *AnalysisReport
	PreserveMarkup bool
	Chunks         int
	SourceURL      string
	SourceTitle    string
	CreatedAt      time.Time
}

// AnalysisReport is the sanitized output of the follow-up analysis call,
// split into labeled sections when the model honored the requested
// structure. When no labels were found Sections holds a single entry with
// an empty Label carrying the whole text.
type AnalysisReport struct {
	Text     string
	Sections []ReportSection
}

type ReportSection struct {
	Label string
	Body  string
}

// ReferencePair is one bilingual example sentence, oriented so Source is
// in the language being translated from.
type ReferencePair struct {
	Source string
	Target string
}
