package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"photo_studio/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the Redis client used for notification dispatch and
// checks the connection once.
func ConnectRedis(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
	}
	log.Printf("[database][redis] connected addr=%s db=%d", cfg.RedisAddr, cfg.RedisDB)
	return client, nil
}
