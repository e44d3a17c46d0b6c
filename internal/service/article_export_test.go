package service

import "net/url"

// Wrappers exposing extraction helpers to the external test package.

func ExtractReadableForTest(sanitized string, pageURL *url.URL) string {
	return extractReadable(sanitized, pageURL)
}

func ExtractFallbackForTest(sanitized string) string {
	return extractFallback(sanitized)
}

func PageMetaForTest(rawHTML string, u *url.URL) (title, site string) {
	return pageMeta(rawHTML, u)
}

func ExcerptForTest(text string) string {
	return excerpt(text)
}
