package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sample struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

func TestMemoryCache_SetGetDelete(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Close()
	ctx := context.Background()

	var got sample
	found, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "k", &sample{Name: "rice", Count: 3}, time.Minute))
	found, err = c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sample{Name: "rice", Count: 3}, got)

	require.NoError(t, c.Delete(ctx, "k", "missing"))
	found, err = c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)

	stats := c.Stats()
	assert.EqualValues(t, 1, stats.Hits)
	assert.EqualValues(t, 2, stats.Misses)
	assert.InDelta(t, 1.0/3.0, stats.HitRate, 1e-9)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Close()
	ctx := context.Background()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "a", 1, time.Second))
	require.NoError(t, c.Set(ctx, "b", 2, time.Hour))
	require.NoError(t, c.Set(ctx, "zero", 3, 0))
	assert.Equal(t, 2, c.Len())

	now = now.Add(2 * time.Second)
	var v int
	found, err := c.Get(ctx, "a", &v)
	require.NoError(t, err)
	assert.False(t, found)

	c.cleanupExpiredEntries()
	assert.Equal(t, 1, c.Len())

	found, err = c.Get(ctx, "b", &v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, v)
}

func TestMemoryCache_DecodeError(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "text", time.Minute))
	var n int
	_, err := c.Get(ctx, "k", &n)
	assert.Error(t, err)
}
