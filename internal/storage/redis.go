package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const recordPrefix = "record:"

// RedisStore implements Store on Redis. Records live forever (no TTL); the
// durable-store contract has no expiry.
type RedisStore struct {
	Rdb *redis.Client
}

// NewRedisStore connects from a Redis URL (redis://...).
func NewRedisStore(url string) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisStore{Rdb: redis.NewClient(opt)}, nil
}

func (s *RedisStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.Rdb.Get(ctx, recordPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *RedisStore) Write(ctx context.Context, key string, value []byte) error {
	return s.Rdb.Set(ctx, recordPrefix+key, value, 0).Err()
}

func (s *RedisStore) Clear(ctx context.Context, key string) error {
	return s.Rdb.Del(ctx, recordPrefix+key).Err()
}
