package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CICEROsandbox/oversetter/internal/service/ai"
)

func TestParseReportSections_AllThreeLabels(t *testing.T) {
	text := "Key Terms: drivhusgasser ble greenhouse gases. " +
		"Challenges: sammensatte ord. " +
		"Suggestions: vurder konsekvent terminologi."
	sections := ai.ParseReportSections(text)
	require.Len(t, sections, 3)
	require.Equal(t, ai.SectionKeyTerms, sections[0].Label)
	require.Equal(t, "drivhusgasser ble greenhouse gases.", sections[0].Body)
	require.Equal(t, ai.SectionChallenges, sections[1].Label)
	require.Equal(t, "sammensatte ord.", sections[1].Body)
	require.Equal(t, ai.SectionSuggestions, sections[2].Label)
	require.Equal(t, "vurder konsekvent terminologi.", sections[2].Body)
}

func TestParseReportSections_OutOfOrder(t *testing.T) {
	text := "Suggestions: bytt term. Key Terms: CO2-avgift."
	sections := ai.ParseReportSections(text)
	require.Len(t, sections, 2)
	require.Equal(t, ai.SectionSuggestions, sections[0].Label)
	require.Equal(t, ai.SectionKeyTerms, sections[1].Label)
	require.Equal(t, "CO2-avgift.", sections[1].Body)
}

func TestParseReportSections_CaseInsensitiveLabels(t *testing.T) {
	sections := ai.ParseReportSections("KEY TERMS: alpha. CHALLENGES: beta.")
	require.Len(t, sections, 2)
	require.Equal(t, ai.SectionKeyTerms, sections[0].Label)
	require.Equal(t, "alpha.", sections[0].Body)
}

func TestParseReportSections_PrefaceKeptUnlabeled(t *testing.T) {
	sections := ai.ParseReportSections("Overall a solid translation. Key Terms: fine.")
	require.Len(t, sections, 2)
	require.Empty(t, sections[0].Label)
	require.Equal(t, "Overall a solid translation.", sections[0].Body)
	require.Equal(t, ai.SectionKeyTerms, sections[1].Label)
}

func TestParseReportSections_NoLabelsSingleSection(t *testing.T) {
	sections := ai.ParseReportSections("The translation reads naturally throughout.")
	require.Len(t, sections, 1)
	require.Empty(t, sections[0].Label)
	require.Equal(t, "The translation reads naturally throughout.", sections[0].Body)
}

func TestParseReportSections_LabelWithoutColonIgnored(t *testing.T) {
	sections := ai.ParseReportSections("Key Terms were handled well overall.")
	require.Len(t, sections, 1)
	require.Empty(t, sections[0].Label)
}

func TestParseReportSections_Empty(t *testing.T) {
	require.Nil(t, ai.ParseReportSections(""))
	require.Nil(t, ai.ParseReportSections("   \n  "))
}
