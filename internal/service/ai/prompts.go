package ai

import (
	"fmt"
	"strings"
)

// Example is one bilingual reference pair injected into the translation
// prompt, oriented so Source matches the language being translated from.
type Example struct {
	Source string
	Target string
}

// PromptOptions adjust the instruction clauses of a translation prompt.
type PromptOptions struct {
	// PreserveMarkup keeps inline markup tags intact and translates only
	// the text content between them.
	PreserveMarkup bool
	// KeepNumerals forbids rewriting numbers, units and ranges.
	KeepNumerals bool
	// References are example pairs injected before the instructions.
	References []Example
}

// SystemPrompt returns the translator persona sent as the optional
// system message. Requests are never conversations; this is the only
// context the model gets besides the user prompt itself.
func SystemPrompt() string {
	return "You are an expert climate science translator working between Norwegian and English. " +
		"You keep the scientific register, established terminology and tone of the source text."
}

// BuildTranslationPrompt assembles the user message for one translation
// call. The input text always comes last, after every instruction.
func BuildTranslationPrompt(text, from, to string, opts PromptOptions) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Translate this climate science text from %s to %s.\n\n", from, to)
	fmt.Fprintf(&b, "<context>\n<source_language>%s</source_language>\n<target_language>%s</target_language>\n</context>\n\n", from, to)

	if len(opts.References) > 0 {
		b.WriteString("<reference_examples>\n")
		for _, ex := range opts.References {
			fmt.Fprintf(&b, "<example>\n<source>%s</source>\n<target>%s</target>\n</example>\n", ex.Source, ex.Target)
		}
		b.WriteString("</reference_examples>\n\n")
	}

	clauses := []string{
		"You MUST translate into the language specified in <target_language>. Responses in other languages are invalid",
		"Output ONLY the translated text, nothing else",
		"Preserve the original meaning, terminology and tone",
	}
	if len(opts.References) > 0 {
		clauses = append(clauses, "Follow the terminology choices shown in <reference_examples>")
	}
	if opts.PreserveMarkup {
		clauses = append(clauses, "Preserve ALL inline markup tags and attributes exactly as-is, translate only the text content")
	}
	if opts.KeepNumerals {
		clauses = append(clauses, "Keep ALL numbers, units and numeric ranges unchanged")
	}
	clauses = append(clauses,
		"NO explanations, NO notes, NO markdown formatting",
		"NO leading or trailing newlines",
	)

	b.WriteString("<instructions>\n")
	for i, clause := range clauses {
		fmt.Fprintf(&b, "%d. %s\n", i+1, clause)
	}
	b.WriteString("</instructions>\n\n")

	fmt.Fprintf(&b, "<text>\n%s\n</text>", text)
	return b.String()
}

// Analysis section labels the review prompt asks for and the report
// parser looks for.
const (
	SectionKeyTerms    = "Key Terms"
	SectionChallenges  = "Challenges"
	SectionSuggestions = "Suggestions"
)

// BuildAnalysisPrompt assembles the user message for the follow-up
// quality review of a finished translation.
func BuildAnalysisPrompt(source, translation, from, to string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Review this %s to %s climate science translation.\n\n", from, to)
	fmt.Fprintf(&b, "<original>\n%s\n</original>\n\n", source)
	fmt.Fprintf(&b, "<translation>\n%s\n</translation>\n\n", translation)

	b.WriteString(`<instructions>
1. Write a brief review with exactly three labeled sections: "` + SectionKeyTerms + `:", "` + SectionChallenges + `:" and "` + SectionSuggestions + `:"
2. Under ` + SectionKeyTerms + ` describe how the central climate terminology was carried over
3. Under ` + SectionChallenges + ` describe passages that were difficult to translate faithfully
4. Under ` + SectionSuggestions + ` give concrete improvements
5. Output plain text ONLY, NEVER use Markdown formatting
6. NO leading or trailing newlines
</instructions>`)

	return b.String()
}
