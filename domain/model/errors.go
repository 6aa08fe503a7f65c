package model

import "errors"

// Sentinel errors shared across usecases and handlers. Wrap with
// fmt.Errorf("...: %w", err) and test with errors.Is.
var (
	// ErrInvalidRequest means the caller supplied contradictory or missing
	// parameters (e.g. neither or both of query/cursor).
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidCursor means the cursor token failed to parse.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrExpiredCursor means the cursor parsed but its cache key is no
	// longer present; the client must start a new search.
	ErrExpiredCursor = errors.New("cursor expired")

	// ErrUpstreamFailure means the search provider returned an error or
	// timed out. Not retried here; the caller may retry the whole request.
	ErrUpstreamFailure = errors.New("upstream search failure")

	// ErrInvalidVideoURL means no 11-character video ID could be extracted.
	ErrInvalidVideoURL = errors.New("invalid video URL")

	// ErrTranscriptUnavailable means no transcript could be fetched for the
	// video in any language.
	ErrTranscriptUnavailable = errors.New("transcript unavailable")

	// ErrConversionFailed means the download or audio conversion step failed.
	ErrConversionFailed = errors.New("conversion failed")
)
