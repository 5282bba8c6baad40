package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const roleTTL = time.Minute

// RoleCache memoises email→role lookups for the admin gate so that every
// authorised request does not cost a user-collection round trip. Entries
// expire after roleTTL; role changes never happen in this system, so a short
// TTL is purely a bound on staleness if that ever changes.
type RoleCache struct {
	client *redis.Client
}

// NewRoleCache creates a RoleCache wrapping the given Redis client.
func NewRoleCache(client *redis.Client) *RoleCache {
	return &RoleCache{client: client}
}

// Get returns the cached role for email. The second return is false on a miss.
func (c *RoleCache) Get(ctx context.Context, email string) (string, bool, error) {
	role, err := c.client.Get(ctx, c.key(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("role cache get: %w", err)
	}
	return role, true, nil
}

// Set records the role for email, expiring after roleTTL.
func (c *RoleCache) Set(ctx context.Context, email, role string) error {
	return c.client.Set(ctx, c.key(email), role, roleTTL).Err()
}

func (c *RoleCache) key(email string) string {
	return "role:" + email
}
