package cache

import (
	"container/list"
	"sync"
	"time"

	"yt-service/domain/model"
	"yt-service/domain/repository"
)

// lruItem links a cache key and its entry to the recency list element.
type lruItem struct {
	key   string
	entry *model.CacheEntry
}

// MemoryStore implements repository.ISearchCache with a bounded-capacity LRU
// plus lazy TTL expiry. Entries are immutable; Put replaces, never mutates,
// so an in-flight page computed from an old entry is unaffected by eviction.
type MemoryStore struct {
	mu       sync.Mutex
	lru      *list.List
	items    map[string]*list.Element
	capacity int
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates an in-process store holding at most capacity
// entries, each live for ttl after creation.
func NewMemoryStore(capacity int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		lru:      list.New(),
		items:    make(map[string]*list.Element),
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the entry for key and marks it most recently used. An entry
// past its TTL is removed and reported as absent.
func (s *MemoryStore) Get(key string) (*model.CacheEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	element, ok := s.items[key]
	if !ok {
		return nil, false
	}
	item := element.Value.(*lruItem)
	if s.now().Sub(item.entry.CreatedAt) > s.ttl {
		s.lru.Remove(element)
		delete(s.items, key)
		return nil, false
	}
	s.lru.MoveToFront(element)
	return item.entry, true
}

// Put inserts or replaces the entry for key, evicting the least recently
// used entry when the capacity bound is exceeded.
func (s *MemoryStore) Put(key string, results []model.Video) *model.CacheEntry {
	entry := &model.CacheEntry{
		Key:       key,
		Results:   results,
		Total:     len(results),
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if element, ok := s.items[key]; ok {
		element.Value.(*lruItem).entry = entry
		s.lru.MoveToFront(element)
		return entry
	}

	element := s.lru.PushFront(&lruItem{key: key, entry: entry})
	s.items[key] = element

	for s.lru.Len() > s.capacity {
		oldest := s.lru.Back()
		if oldest == nil {
			break
		}
		evicted := s.lru.Remove(oldest).(*lruItem)
		delete(s.items, evicted.key)
	}
	return entry
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

var _ repository.ISearchCache = (*MemoryStore)(nil)
