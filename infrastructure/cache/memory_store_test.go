package cache_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yt-service/domain/model"
	"yt-service/infrastructure/cache"
)

func makeVideos(n int) []model.Video {
	videos := make([]model.Video, n)
	for i := range videos {
		videos[i] = model.Video{VideoID: fmt.Sprintf("video-%02d", i), Title: fmt.Sprintf("Video %d", i)}
	}
	return videos
}

func TestMemoryStorePutGet(t *testing.T) {
	store := cache.NewMemoryStore(10, time.Minute)

	entry := store.Put("key1", makeVideos(3))
	require.NotNil(t, entry)
	assert.Equal(t, "key1", entry.Key)
	assert.Equal(t, 3, entry.Total)

	got, ok := store.Get("key1")
	require.True(t, ok)
	assert.Equal(t, entry, got)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestMemoryStoreReplaceNotMutate(t *testing.T) {
	store := cache.NewMemoryStore(10, time.Minute)

	first := store.Put("key1", makeVideos(3))
	second := store.Put("key1", makeVideos(5))

	// The first entry is untouched; an in-flight page computed from it
	// stays consistent.
	assert.Equal(t, 3, first.Total)
	assert.Equal(t, 5, second.Total)

	got, ok := store.Get("key1")
	require.True(t, ok)
	assert.Equal(t, 5, got.Total)
}

func TestMemoryStoreLRUEviction(t *testing.T) {
	store := cache.NewMemoryStore(2, time.Minute)

	store.Put("a", makeVideos(1))
	store.Put("b", makeVideos(1))

	// Touch "a" so "b" becomes least recently used.
	_, ok := store.Get("a")
	require.True(t, ok)

	store.Put("c", makeVideos(1))

	_, ok = store.Get("b")
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = store.Get("a")
	assert.True(t, ok)
	_, ok = store.Get("c")
	assert.True(t, ok)
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	store := cache.NewMemoryStore(10, 10*time.Millisecond)

	store.Put("key1", makeVideos(2))
	_, ok := store.Get("key1")
	require.True(t, ok)

	time.Sleep(25 * time.Millisecond)

	_, ok = store.Get("key1")
	assert.False(t, ok, "expired entry should be treated as absent")
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := cache.NewMemoryStore(50, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i%5)
			store.Put(key, makeVideos(3))
			if entry, ok := store.Get(key); ok {
				assert.Equal(t, 3, entry.Total)
			}
		}(i)
	}
	wg.Wait()
}
