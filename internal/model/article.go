package model

import "time"

// Article is the readable content extracted from a fetched page.
type Article struct {
	URL      string
	Title    string
	SiteName string
	Excerpt  string
	Text     string
	HTML     string
}

// ArticleSummary is one item from the configured site feed.
type ArticleSummary struct {
	Title     string
	URL       string
	Published *time.Time
}
