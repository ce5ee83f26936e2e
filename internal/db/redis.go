package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"viralizza/internal/config/configs"
)

// NewRedisClient parses cfg.URL and pings the server with a 5 second
// timeout. The client is closed when the ping fails.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rc := redis.NewClient(opt)

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = rc.Ping(ctxPing).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rc, nil
}
