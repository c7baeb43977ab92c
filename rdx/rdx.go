// Package rdx caches list responses in redis. The cache is optional: when
// REDIS_URL is unset or redis misbehaves, callers fall through to the store.
package rdx

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"oyow/logger"
)

var Conn *redis.Client

const cacheTTL = 60 * time.Second

// Init connects to redis if REDIS_URL is set. Caching stays disabled otherwise.
func Init() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		logger.Log.Info().Msg("REDIS_URL not set, list caching disabled")
		return
	}
	Conn = redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}

func Get(ctx context.Context, key string) string {
	if Conn == nil {
		return ""
	}
	val, err := Conn.Get(ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

func Set(ctx context.Context, key, value string) {
	if Conn == nil {
		return
	}
	if err := Conn.Set(ctx, key, value, cacheTTL).Err(); err != nil {
		logger.Log.Debug().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func Del(ctx context.Context, keys ...string) {
	if Conn == nil {
		return
	}
	if err := Conn.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Debug().Err(err).Msg("cache invalidation failed")
	}
}
