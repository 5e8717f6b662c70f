package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"macro-stress/internal/simulate"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "macro-stress:run:"

// RedisStore keeps tables as JSON under a TTL so several API replicas can
// serve the same run IDs.
type RedisStore struct {
	c   *redis.Client
	ttl time.Duration
}

func NewRedisStore(c *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{c: c, ttl: ttl}
}

// DialRedis connects to addr and checks it answers.
func DialRedis(ctx context.Context, addr string, db int, ttl time.Duration) (*RedisStore, error) {
	c := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis %s: %w", addr, err)
	}
	return NewRedisStore(c, ttl), nil
}

func (r *RedisStore) Save(ctx context.Context, id string, t *simulate.Table) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode run %s: %w", id, err)
	}
	return r.c.Set(ctx, keyPrefix+id, raw, r.ttl).Err()
}

func (r *RedisStore) Load(ctx context.Context, id string) (*simulate.Table, error) {
	raw, err := r.c.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var t simulate.Table
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("decode run %s: %w", id, err)
	}
	return &t, nil
}

func (r *RedisStore) Close() error { return r.c.Close() }
