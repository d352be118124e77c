package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores each table under one key, e.g. "esyleave:users".
// Whole-table GET/SET matches the read-then-replace store contract exactly.
type RedisBackend struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisBackend(rdb *redis.Client, prefix string) *RedisBackend {
	if prefix == "" {
		prefix = "esyleave"
	}
	return &RedisBackend{rdb: rdb, prefix: prefix}
}

func (r *RedisBackend) key(name string) string {
	return r.prefix + ":" + name
}

func (r *RedisBackend) ReadTable(ctx context.Context, name string) ([]byte, error) {
	data, err := r.rdb.Get(ctx, r.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrTableMissing
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *RedisBackend) WriteTable(ctx context.Context, name string, data []byte) error {
	return r.rdb.Set(ctx, r.key(name), data, 0).Err()
}

func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		lastErr = rdb.Ping(ctx).Err()
		cancel()
		if lastErr == nil {
			return rdb, nil
		}
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("redis connection failed after %d retries: %w", maxRetries, lastErr)
}
