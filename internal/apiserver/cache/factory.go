package cache

import (
	"context"
	"fmt"

	"github.com/farmchainx/farmchainx/internal/common/config"

	"go.uber.org/zap"
)

// New creates a cache based on configuration
func New(ctx context.Context, cfg *config.CacheConfig, logger *zap.Logger) (Cache, error) {
	switch cfg.Type {
	case "", "memory":
		return NewMemoryCache(logger, cfg.TTL), nil
	case "redis":
		return NewRedisCache(ctx, &cfg.Redis, logger)
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Type)
	}
}
