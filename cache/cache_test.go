package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requires Redis on localhost:6379, skipped otherwise
const testRedisAddr = "localhost:6379"

func setupTestCache(t *testing.T, prefix string) *Cache {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}

	c := New(client, prefix, time.Minute)
	require.NoError(t, c.DeletePattern(ctx, "*"))
	t.Cleanup(func() {
		_ = c.DeletePattern(context.Background(), "*")
		client.Close()
	})
	return c
}

type item struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestCache_SetThenGet(t *testing.T) {
	c := setupTestCache(t, "test:setget:")
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "rose", item{Name: "Rose", Price: 249}))

	var got item
	hit, err := c.Get(ctx, "rose", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, item{Name: "Rose", Price: 249}, got)
}

func TestCache_Miss(t *testing.T) {
	c := setupTestCache(t, "test:miss:")

	var got item
	hit, err := c.Get(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, uint64(0), stats.Hits)
}

func TestCache_DeletePattern(t *testing.T) {
	c := setupTestCache(t, "test:pattern:")
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "products:list:", []item{{Name: "Rose"}}))
	require.NoError(t, c.Set(ctx, "products:item:1", item{Name: "Rose"}))
	require.NoError(t, c.DeletePattern(ctx, "products:*"))

	var got item
	hit, err := c.Get(ctx, "products:item:1", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_StatsHitRate(t *testing.T) {
	c := setupTestCache(t, "test:stats:")
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", item{Name: "Tulip"}))
	var got item
	_, _ = c.Get(ctx, "k", &got)
	_, _ = c.Get(ctx, "missing", &got)

	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, uint64(1), stats.Sets)
	assert.InDelta(t, 50.0, stats.HitRate, 0.001)
}

func TestCache_Ping(t *testing.T) {
	c := setupTestCache(t, "woven-magic-test-ping:")
	assert.NoError(t, c.Ping(context.Background()))
}
