package kv

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store using Redis as the backend. It is intended for
// headless deployments (screening bots, shared worker pools) where several
// processes need to see the same recruiter session.
type RedisStore struct {
	client *redis.Client
}

// RedisConfig holds configuration for connecting to Redis.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`     // host:port
	Password string `mapstructure:"password"` // optional
	DB       int    `mapstructure:"db"`       // database number
}

// NewRedisStore creates a new RedisStore with the given configuration.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

// Set stores a value under the given key. Session keys never expire on their
// own; the refresh protocol overwrites or deletes them explicitly.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// Get retrieves a value by key.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrNotFound
		}
		return "", err
	}
	return val, nil
}

// Delete removes a key.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// Close closes the connection to Redis.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
