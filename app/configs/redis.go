package configs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// OpenRedis connects to the Redis instance named by REDIS_ADDR. The
// cache layer is optional; callers should treat a nil client as
// "caching disabled".
func OpenRedis(env ENV) (*redis.Client, error) {
	if env.RedisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR environment variable not set")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     env.RedisAddr,
		Password: env.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Println("✅ Redis connection successful!")

	return client, nil
}
