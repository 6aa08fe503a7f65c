package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"yt-service/domain/cursor"
	"yt-service/domain/dto"
	"yt-service/domain/model"
	"yt-service/domain/repository"
	"yt-service/infrastructure/logger"

	"golang.org/x/sync/singleflight"
)

// ISearchUsecase is the paginator over the search-result cache.
type ISearchUsecase interface {
	Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchPageResponse, error)
}

// SearchUsecase executes an upstream search once per distinct query, stores
// the full result set and serves it back in bounded pages addressed by
// cursor tokens. Concurrent first searches for the same normalized query are
// collapsed into one upstream call.
type SearchUsecase struct {
	provider     repository.IVideoSearch
	cache        repository.ISearchCache
	group        singleflight.Group
	defaultLimit int
	maxLimit     int
}

// NewSearchUsecase creates the paginator. defaultLimit applies when the
// caller passes no limit, maxLimit bounds it from above.
func NewSearchUsecase(provider repository.IVideoSearch, cache repository.ISearchCache, defaultLimit, maxLimit int) ISearchUsecase {
	return &SearchUsecase{
		provider:     provider,
		cache:        cache,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// CacheKey returns the stable cache key for a normalized query: a one-way
// hash, so a cursor never leaks the original query text.
func CacheKey(normalizedQuery string) string {
	sum := sha256.Sum256([]byte(normalizedQuery))
	return hex.EncodeToString(sum[:])[:16]
}

// Search answers one page request. Exactly one of req.Query/req.Cursor must
// be set; anything else fails with model.ErrInvalidRequest.
func (u *SearchUsecase) Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchPageResponse, error) {
	limit := u.clampLimit(req.Limit)

	query := strings.TrimSpace(req.Query)
	hasQuery := query != ""
	hasCursor := req.Cursor != ""

	switch {
	case hasQuery && hasCursor:
		return nil, fmt.Errorf("%w: query and cursor are mutually exclusive", model.ErrInvalidRequest)
	case hasCursor:
		return u.cursorPage(req.Cursor, limit)
	case hasQuery:
		return u.queryPage(ctx, query, limit)
	default:
		return nil, fmt.Errorf("%w: either query or cursor is required", model.ErrInvalidRequest)
	}
}

// queryPage handles a new search: cache hit reuses the stored entry, a miss
// triggers the single upstream fetch for this key.
func (u *SearchUsecase) queryPage(ctx context.Context, query string, limit int) (*dto.SearchPageResponse, error) {
	key := CacheKey(query)

	if entry, ok := u.cache.Get(key); ok {
		page := u.buildPage(entry, 0, limit)
		page.Query = query
		page.Cached = true
		return page, nil
	}

	result, err, _ := u.group.Do(key, func() (interface{}, error) {
		results, err := u.provider.Search(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrUpstreamFailure, err)
		}
		return u.cache.Put(key, results), nil
	})
	if err != nil {
		return nil, err
	}
	entry := result.(*model.CacheEntry)

	logger.GetLogger().WithFields(map[string]interface{}{
		"query": query,
		"key":   key,
		"total": entry.Total,
	}).Info("New search cached")

	page := u.buildPage(entry, 0, limit)
	page.Query = query
	return page, nil
}

// cursorPage resumes pagination from a token. A cache miss is unrecoverable
// because the key cannot be reversed to the query text, so it surfaces as
// model.ErrExpiredCursor instead of a silent re-search.
func (u *SearchUsecase) cursorPage(token string, limit int) (*dto.SearchPageResponse, error) {
	key, offset, err := cursor.Decode(token)
	if err != nil {
		return nil, err
	}

	entry, ok := u.cache.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: start a new search", model.ErrExpiredCursor)
	}

	page := u.buildPage(entry, offset, limit)
	page.Cached = true
	return page, nil
}

// buildPage slices entry at [offset, offset+limit) and derives both cursors.
// offset is clamped to [0, total]; offset >= total yields an empty page with
// no next cursor.
func (u *SearchUsecase) buildPage(entry *model.CacheEntry, offset, limit int) *dto.SearchPageResponse {
	if offset > entry.Total {
		offset = entry.Total
	}
	videos := entry.Slice(offset, limit)

	page := &dto.SearchPageResponse{
		Count:       len(videos),
		TotalCached: entry.Total,
		Videos:      videos,
	}
	if offset+limit < entry.Total {
		page.NextCursor = cursor.Encode(entry.Key, offset+limit)
	}
	if offset > 0 {
		prev := offset - limit
		if prev < 0 {
			prev = 0
		}
		page.PrevCursor = cursor.Encode(entry.Key, prev)
	}
	return page
}

func (u *SearchUsecase) clampLimit(limit int) int {
	if limit <= 0 {
		return u.defaultLimit
	}
	if limit > u.maxLimit {
		return u.maxLimit
	}
	return limit
}
