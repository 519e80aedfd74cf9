package ratelimit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cloux/internal/domain"
)

const keyPrefix = "ratelimit:signup:"

// tokenBucketScript refills and consumes one token atomically.
// Returns {allowed, retry_after_seconds, remaining_tokens}.
var tokenBucketScript = redis.NewScript(`
	local key = KEYS[1]
	local rate = tonumber(ARGV[1])
	local burst = tonumber(ARGV[2])
	local now = tonumber(ARGV[3])
	local ttl = tonumber(ARGV[4])

	local data = redis.call('HMGET', key, 'tokens', 'last_update')
	local tokens = tonumber(data[1]) or burst
	local last_update = tonumber(data[2]) or now

	tokens = math.min(burst, tokens + ((now - last_update) * rate))

	local allowed = 0
	local retry_after = 0
	if tokens >= 1 then
		tokens = tokens - 1
		allowed = 1
	else
		retry_after = math.ceil((1 - tokens) / rate)
	end

	redis.call('HSET', key, 'tokens', tokens, 'last_update', now)
	redis.call('EXPIRE', key, ttl)

	return {allowed, retry_after, math.floor(tokens)}
`)

// RedisLimiter is a per-key token bucket stored in Redis.
type RedisLimiter struct {
	client *redis.Client
	rate   int
	burst  int
	ttl    time.Duration
	now    func() time.Time
}

// NewClient parses redisURL and verifies the connection.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.PoolTimeout = 4 * time.Second

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	return client, nil
}

// NewRedisLimiter allows rate requests per second per key with the given burst.
func NewRedisLimiter(client *redis.Client, rate, burst int) *RedisLimiter {
	ttl := time.Duration(burst/rate+1) * time.Second
	if ttl < 10*time.Second {
		ttl = 10 * time.Second
	}
	return &RedisLimiter{client: client, rate: rate, burst: burst, ttl: ttl, now: time.Now}
}

var _ domain.RateLimiter = (*RedisLimiter)(nil)

// Allow consumes one token for key. The key is hashed so raw client addresses are not stored.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (*domain.RateLimitResult, error) {
	res, err := tokenBucketScript.Run(ctx, l.client,
		[]string{keyPrefix + hashKey(key)},
		l.rate, l.burst, l.now().Unix(), int(l.ttl.Seconds()),
	).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("rate limit script: %w", err)
	}
	if len(res) != 3 {
		return nil, fmt.Errorf("rate limit script: unexpected reply length %d", len(res))
	}
	return &domain.RateLimitResult{
		Allowed:    res[0] == 1,
		RetryAfter: time.Duration(res[1]) * time.Second,
		Remaining:  res[2],
	}, nil
}

func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:8])
}
