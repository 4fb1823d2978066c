package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/rafaelleal24/sales/internal/adapters/http/middleware"
)

// Fixed window counter. Returns the count and the window's remaining time in ms.
var rateLimitScript = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return {count, redis.call('PTTL', KEYS[1])}
`)

type RateLimiter struct {
	client *Client
}

func NewRateLimiter(client *Client) middleware.RateLimiter {
	return &RateLimiter{client: client}
}

func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (middleware.RateLimitResult, error) {
	redisKey := r.client.key("ratelimit:" + key)
	values, err := rateLimitScript.Run(ctx, r.client.rdb, []string{redisKey}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return middleware.RateLimitResult{}, err
	}
	if len(values) != 2 {
		return middleware.RateLimitResult{}, fmt.Errorf("unexpected rate limit reply: %v", values)
	}

	count, ttl := int(values[0]), time.Duration(values[1])*time.Millisecond
	if ttl < 0 {
		ttl = window
	}
	return middleware.RateLimitResult{
		Allowed:    count <= limit,
		Remaining:  limit - count,
		RetryAfter: ttl,
	}, nil
}
