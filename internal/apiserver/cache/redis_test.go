package cache

import (
	"context"
	"testing"
	"time"

	"github.com/farmchainx/farmchainx/internal/common/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := NewRedisCache(context.Background(), &config.CacheRedisConfig{Addr: mr.Addr(), Prefix: "test:"}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	c, mr := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", &sample{Name: "corn", Count: 7}, time.Minute))
	assert.True(t, mr.Exists("test:k"))

	var got sample
	found, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sample{Name: "corn", Count: 7}, got)

	require.NoError(t, c.Delete(ctx, "k"))
	assert.False(t, mr.Exists("test:k"))
	require.NoError(t, c.Delete(ctx))

	found, err = c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.EqualValues(t, 1, c.Stats().Hits)
	assert.EqualValues(t, 1, c.Stats().Misses)
}

func TestRedisCache_TTL(t *testing.T) {
	c, mr := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", 1, time.Second))
	mr.FastForward(2 * time.Second)

	var v int
	found, err := c.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisCache(context.Background(), &config.CacheRedisConfig{Addr: addr}, zap.NewNop())
	assert.ErrorContains(t, err, "failed to connect to redis")
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	c, err := New(ctx, &config.CacheConfig{Type: "memory", TTL: time.Second}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &MemoryCache{}, c)
	require.NoError(t, c.Close())

	mr := miniredis.RunT(t)
	c, err = New(ctx, &config.CacheConfig{Type: "redis", Redis: config.CacheRedisConfig{Addr: mr.Addr()}}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &RedisCache{}, c)
	require.NoError(t, c.Close())

	_, err = New(ctx, &config.CacheConfig{Type: "memcached"}, zap.NewNop())
	assert.ErrorContains(t, err, "unsupported cache type")
}
