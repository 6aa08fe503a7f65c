package model

import "time"

// CacheEntry holds the full ordered result set of one upstream search.
// Entries are immutable once written; a repeated search for the same
// normalized query replaces the entry instead of mutating it.
type CacheEntry struct {
	Key       string
	Results   []Video
	Total     int
	CreatedAt time.Time
}

// Slice returns the page [offset, offset+limit) of the entry's results.
// offset is clamped to [0, Total] so an out-of-range cursor yields an
// empty page rather than a panic.
func (e *CacheEntry) Slice(offset, limit int) []Video {
	if offset < 0 {
		offset = 0
	}
	if offset > e.Total {
		offset = e.Total
	}
	end := offset + limit
	if end > e.Total {
		end = e.Total
	}
	return e.Results[offset:end]
}
