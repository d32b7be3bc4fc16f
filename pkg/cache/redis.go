package cache

import (
	"context"
	"time"

	"band-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to Redis for catalog response caching.
// Returns nil when the server is unreachable; callers must treat a nil
// client as "caching disabled" and fall through to the database.
func NewRedisClient(config utils.RedisConfig, log *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, catalog caching disabled",
			zap.String("addr", config.Addr),
			zap.Error(err),
		)
		return nil
	}

	return client
}

// Store is a small typed wrapper around the Redis client. A Store with a
// nil client is valid and behaves as a permanent cache miss.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewStore(client *redis.Client, ttl time.Duration, log *zap.Logger) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("component", "cache")),
	}
}

// Get returns the cached payload for key, or ("", false) on miss or error.
func (s *Store) Get(ctx context.Context, key string) (string, bool) {
	if s == nil || s.client == nil {
		return "", false
	}

	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		s.log.Warn("Cache get failed", zap.String("key", key), zap.Error(err))
		return "", false
	}

	return val, true
}

// Set stores the payload under key with the configured TTL. Errors are
// logged and swallowed; a failed write only costs a future cache miss.
func (s *Store) Set(ctx context.Context, key, value string) {
	if s == nil || s.client == nil {
		return
	}

	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		s.log.Warn("Cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate removes keys after catalog mutations.
func (s *Store) Invalidate(ctx context.Context, keys ...string) {
	if s == nil || s.client == nil || len(keys) == 0 {
		return
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn("Cache invalidate failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
