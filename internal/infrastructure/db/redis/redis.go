// Package redis holds the registry's Redis plumbing: the connection helper
// and the RoleCache that backs the admin authorization gate.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultAddr    = "localhost:6379"
	defaultTimeout = 5 * time.Second
)

// Config captures the settings for establishing a Redis connection. Zero
// values fall back to defaults, mirroring the mongo package.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping
// before anything caches through it.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	addr := cfg.Addr
	if addr == "" {
		addr = defaultAddr
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
