package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"loandraft/internal/platform/config"
)

// New connects the cache client, verifying the connection up front.
// The address cache is optional: an empty URL returns a nil client and
// lookups go straight to the provider.
func New(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}
