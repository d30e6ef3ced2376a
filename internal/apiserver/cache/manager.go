package cache

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const userStatsKey = "stats:users"

// UserStatsKey is the key of the admin user statistics
func UserStatsKey() string {
	return userStatsKey
}

// CropStatsKey is the key of a farmer's crop dashboard
func CropStatsKey(userID uint) string {
	return fmt.Sprintf("stats:crops:%d", userID)
}

// Manager reads aggregates through a Cache and tolerates cache failures.
// A nil Manager always loads from the source.
type Manager struct {
	logger *zap.Logger
	cache  Cache
	ttl    time.Duration
}

// NewManager creates a manager caching entries for ttl
func NewManager(c Cache, ttl time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		logger: logger.Named("cache.manager"),
		cache:  c,
		ttl:    ttl,
	}
}

// Load returns the cached value under key, calling load and caching its
// result on a miss.
func Load[T any](ctx context.Context, m *Manager, key string, load func(ctx context.Context) (*T, error)) (*T, error) {
	if m == nil || m.cache == nil {
		return load(ctx)
	}

	var cached T
	found, err := m.cache.Get(ctx, key, &cached)
	if err != nil {
		m.logger.Warn("failed to read cache", zap.String("key", key), zap.Error(err))
	}
	if found {
		return &cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if err := m.cache.Set(ctx, key, value, m.ttl); err != nil {
		m.logger.Warn("failed to write cache", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}

// Invalidate drops keys, logging instead of failing the caller
func (m *Manager) Invalidate(ctx context.Context, keys ...string) {
	if m == nil || m.cache == nil {
		return
	}
	if err := m.cache.Delete(ctx, keys...); err != nil {
		m.logger.Warn("failed to invalidate cache", zap.Strings("keys", keys), zap.Error(err))
	}
}
