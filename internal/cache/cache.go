package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client for the user read-through cache and the geocode
// coordinate store. A redis outage must never fail a request, so every
// operation degrades to a cache miss. A nil Client is valid and always
// misses, which keeps the services testable without a redis fixture.
type Client struct {
	client *redis.Client
}

// New connects a redis client. Connectivity is not checked here; the first
// operation simply misses if the server is unreachable.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Get returns the cached value, or nil on a miss or when redis is
// unreachable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		// unreachable redis reads as a miss
		return nil, nil
	}
	return res, nil
}

// Set stores a value with a TTL. Cached entries are invalidated on user
// mutation, so the TTL is a backstop, not the consistency mechanism.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		// a failed write just means the next read goes to the database
		return nil
	}
	return nil
}

// Delete invalidates a key, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return nil
	}
	return nil
}
