package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/barbertime/barbertime-api/internal/config"
)

func NewRedis(cfg *config.Config) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		// Espelho local é melhor-esforço: sem Redis a API sobe mesmo assim.
		log.Printf("redis unavailable, mirror degraded: %v", err)
	}

	return rdb
}
