package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client wraps the shared session store the platform identity layer writes to
type Client struct {
	rdb *redis.Client
}

// NewClient creates a new Redis client
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	return c.rdb
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// GetSession retrieves a session hash by token. Returns nil without error
// when the session does not exist (not yet materialized or expired).
func (c *Client) GetSession(ctx context.Context, token string) (map[string]string, error) {
	key := fmt.Sprintf("session:%s", token)

	fields, err := c.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("session lookup failed: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return fields, nil
}

// SessionTTL reports the remaining lifetime of a session
func (c *Client) SessionTTL(ctx context.Context, token string) (time.Duration, error) {
	return c.rdb.TTL(ctx, fmt.Sprintf("session:%s", token)).Result()
}
