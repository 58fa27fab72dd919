// Package redis provides the shared client behind the bank, company, offer,
// settings and PIN-directory Redis stores.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ficlear/internal/platform/config"
)

const defaultPingTimeout = 5 * time.Second

// Client wraps the go-redis client with bounded health checking. Every ping
// carries its own deadline so a wedged Redis cannot stall startup or the
// health endpoint.
type Client struct {
	*redis.Client

	pingTimeout time.Duration
}

// New creates a Redis client from the provided configuration and verifies
// connectivity before returning. Returns nil if the URL is empty (Redis not
// configured; stores fall back to memory).
func New(cfg config.RedisConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	pingTimeout := cfg.DialTimeout
	if pingTimeout <= 0 {
		pingTimeout = defaultPingTimeout
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{Client: client, pingTimeout: pingTimeout}, nil
}

// Health checks connectivity, bounded by the configured dial timeout.
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.pingTimeout)
	defer cancel()
	return c.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.Client.Close()
}
