package model

import "strings"

// Language is one end of the supported translation pair.
type Language string

const (
	LanguageNorwegian Language = "Norwegian"
	LanguageEnglish   Language = "English"
)

// ParseLanguage accepts display names and ISO-ish codes used by the UI.
func ParseLanguage(s string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "norwegian", "norsk", "no", "nb", "nn":
		return LanguageNorwegian, true
	case "english", "engelsk", "en":
		return LanguageEnglish, true
	default:
		return "", false
	}
}

func (l Language) Valid() bool {
	return l == LanguageNorwegian || l == LanguageEnglish
}

// Other returns the opposite end of the pair.
func (l Language) Other() Language {
	if l == LanguageNorwegian {
		return LanguageEnglish
	}
	return LanguageNorwegian
}
