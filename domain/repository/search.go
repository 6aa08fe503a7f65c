package repository

import (
	"context"

	"yt-service/domain/model"
)

// IVideoSearch is the upstream search provider. One call returns the full
// ordered result set for a query; the provider has no pagination of its own.
type IVideoSearch interface {
	Search(ctx context.Context, query string) ([]model.Video, error)
}

// ISearchCache stores the full result set of each distinct query, keyed by a
// stable hash of the normalized query string. Implementations must be safe
// for concurrent use and must never expose a torn entry.
type ISearchCache interface {
	// Get returns the live entry for key, or false when the key is absent,
	// evicted or past its TTL.
	Get(key string) (*model.CacheEntry, bool)
	// Put inserts or replaces the entry for key and may evict another entry
	// to respect the capacity bound.
	Put(key string, results []model.Video) *model.CacheEntry
	// Close releases any backend resources.
	Close() error
}
