package cache

import (
	"context"
	"encoding/json"
	"time"

	"yt-service/domain/model"
	"yt-service/domain/repository"
	"yt-service/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "search:"

// RedisStore implements repository.ISearchCache on a redis backend. TTL is
// enforced natively per key; the capacity bound is delegated to the server's
// maxmemory allkeys-lru policy. Selected by configuration when a redis host
// is set, e.g. to share the search cache between replicas.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to redis at addr and verifies the connection.
func NewRedisStore(ctx context.Context, addr, username, password string, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Get(key string) (*model.CacheEntry, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.GetLogger().WithField("error", err).Warn("Redis get failed, treating as cache miss")
		}
		return nil, false
	}
	var entry model.CacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Corrupt cache entry, treating as cache miss")
		return nil, false
	}
	return &entry, true
}

func (s *RedisStore) Put(key string, results []model.Video) *model.CacheEntry {
	entry := &model.CacheEntry{
		Key:       key,
		Results:   results,
		Total:     len(results),
		CreatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := json.Marshal(entry)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to marshal cache entry")
		return entry
	}
	if err := s.client.Set(ctx, redisKeyPrefix+key, raw, s.ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis set failed")
	}
	return entry
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ repository.ISearchCache = (*RedisStore)(nil)
