package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CICEROsandbox/oversetter/internal/model"
)

func TestParseLanguage(t *testing.T) {
	for _, s := range []string{"norwegian", "Norwegian", " Norsk ", "no", "nb", "nn"} {
		lang, ok := model.ParseLanguage(s)
		require.True(t, ok, "input %q", s)
		require.Equal(t, model.LanguageNorwegian, lang)
	}
	for _, s := range []string{"english", "ENGELSK", "en"} {
		lang, ok := model.ParseLanguage(s)
		require.True(t, ok, "input %q", s)
		require.Equal(t, model.LanguageEnglish, lang)
	}
	for _, s := range []string{"", "german", "se"} {
		_, ok := model.ParseLanguage(s)
		require.False(t, ok, "input %q", s)
	}
}

func TestLanguage_Other(t *testing.T) {
	require.Equal(t, model.LanguageEnglish, model.LanguageNorwegian.Other())
	require.Equal(t, model.LanguageNorwegian, model.LanguageEnglish.Other())
}

func TestLanguage_Valid(t *testing.T) {
	require.True(t, model.LanguageNorwegian.Valid())
	require.True(t, model.LanguageEnglish.Valid())
	require.False(t, model.Language("Swedish").Valid())
}
