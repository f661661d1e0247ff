package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle counts login attempts per client IP in Redis.
// Key format: throttle:login:<client_ip>, expiring after the window.
type LoginThrottle struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewLoginThrottle creates a LoginThrottle allowing limit attempts per window.
func NewLoginThrottle(client *redis.Client, limit int, window time.Duration) *LoginThrottle {
	return &LoginThrottle{client: client, limit: limit, window: window}
}

// Allow records one attempt for key and reports whether it is within the
// limit. On a Redis error the caller decides; the gateway fails open so an
// unavailable cache cannot lock everyone out of authentication.
func (t *LoginThrottle) Allow(ctx context.Context, key string) (bool, error) {
	k := fmt.Sprintf("throttle:login:%s", key)

	n, err := t.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, k, t.window).Err(); err != nil {
			return false, fmt.Errorf("throttle expire: %w", err)
		}
	}
	return n <= int64(t.limit), nil
}
