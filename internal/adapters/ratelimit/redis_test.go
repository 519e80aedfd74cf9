package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashKey(t *testing.T) {
	a := hashKey("203.0.113.7")
	assert.Len(t, a, 16)
	assert.Equal(t, a, hashKey("203.0.113.7"))
	assert.NotEqual(t, a, hashKey("203.0.113.8"))
	assert.NotContains(t, a, "203")
}

func TestNewRedisLimiter_TTL(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	assert.Equal(t, 10*time.Second, NewRedisLimiter(client, 1, 5).ttl)
	assert.Equal(t, 61*time.Second, NewRedisLimiter(client, 1, 60).ttl)
}

func TestRedisLimiter_AllowUnreachable(t *testing.T) {
	// Nothing listens on port 1; the script call fails and the error surfaces.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond, MaxRetries: -1})
	defer client.Close()

	_, err := NewRedisLimiter(client, 1, 5).Allow(context.Background(), "203.0.113.7")
	require.Error(t, err)
}

func TestNewClient_BadURL(t *testing.T) {
	_, err := NewClient(context.Background(), "not a url")
	require.Error(t, err)
}
