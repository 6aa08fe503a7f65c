package dto

import "yt-service/domain/model"

// SearchRequest represents a /search request after query-string parsing.
// Exactly one of Query/Cursor must be non-empty.
type SearchRequest struct {
	Query  string `json:"query,omitempty"`
	Cursor string `json:"cursor,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// SearchPageResponse represents one page of cached search results
type SearchPageResponse struct {
	Query       string        `json:"query,omitempty"`
	Count       int           `json:"count"`
	TotalCached int           `json:"total_cached"`
	Cached      bool          `json:"cached"`
	NextCursor  string        `json:"next_cursor,omitempty"`
	PrevCursor  string        `json:"prev_cursor,omitempty"`
	Videos      []model.Video `json:"videos"`
}
