package service

import "errors"

var (
	// ErrEmptyInput means the action was started with nothing to
	// translate. Checked before anything else; no API call is made.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalid covers malformed requests: unknown language pair,
	// bad URL scheme, unconfigured collaborator.
	ErrInvalid = errors.New("invalid")
	// ErrFetch means the article request itself failed: transport
	// error or non-success status.
	ErrFetch = errors.New("fetch failed")
	// ErrNoContent means the fetch succeeded but no recognizable
	// article content was found in the page.
	ErrNoContent = errors.New("no content found")
)
