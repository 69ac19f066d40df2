package auth

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRevoker(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	r := NewMemoryRevoker()
	r.now = func() time.Time { return now }

	revoked, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, r.Revoke(ctx, "jti-1", now.Add(time.Hour)))
	revoked, err = r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	now = now.Add(2 * time.Hour)
	revoked, err = r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked, "entry is dropped once the token has expired")
}

func TestRedisRevoker(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for testing: %v", err)
	}
	client.FlushDB(ctx)

	r := NewRedisRevoker(client)
	require.NoError(t, r.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))

	revoked, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl, err := client.TTL(ctx, "revoked_token:jti-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	revoked, err = r.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}
