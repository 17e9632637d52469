package mirror

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

type RedisKV struct {
	rdb *redis.Client
}

func NewRedisKV(rdb *redis.Client) *RedisKV {
	return &RedisKV{rdb: rdb}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value string) error {
	// Sem TTL: o espelho vale até a próxima escrita.
	return r.rdb.Set(ctx, key, value, 0).Err()
}

var _ KV = (*RedisKV)(nil)
