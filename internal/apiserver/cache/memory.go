package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryCache is a process-local cache with periodic cleanup of expired entries
type MemoryCache struct {
	logger *zap.Logger
	now    func() time.Time

	mu    sync.RWMutex
	items map[string]memoryEntry

	hits   atomic.Int64
	misses atomic.Int64

	cancel context.CancelFunc
	done   chan struct{}
}

// NewMemoryCache creates a memory cache that sweeps expired entries every interval
func NewMemoryCache(logger *zap.Logger, interval time.Duration) *MemoryCache {
	if interval <= 0 {
		interval = time.Minute
	}
	ctx, cancel := context.WithCancel(context.Background())
	c := &MemoryCache{
		logger: logger.Named("cache.memory"),
		now:    time.Now,
		items:  make(map[string]memoryEntry),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go c.startCleanupRoutine(ctx, interval)
	return c
}

func (c *MemoryCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || !entry.expiresAt.After(c.now()) {
		c.misses.Add(1)
		return false, nil
	}
	if err := json.Unmarshal(entry.data, dst); err != nil {
		return false, fmt.Errorf("failed to decode cache entry %s: %w", key, err)
	}
	c.hits.Add(1)
	return true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	c.mu.Lock()
	c.items[key] = memoryEntry{data: data, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	for _, k := range keys {
		delete(c.items, k)
	}
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired or not
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats returns the hit and miss counters
func (c *MemoryCache) Stats() Stats {
	return newStats(c.hits.Load(), c.misses.Load())
}

// Close stops the cleanup routine
func (c *MemoryCache) Close() error {
	c.cancel()
	<-c.done
	return nil
}

func (c *MemoryCache) startCleanupRoutine(ctx context.Context, interval time.Duration) {
	defer close(c.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.cleanupExpiredEntries()
		}
	}
}

func (c *MemoryCache) cleanupExpiredEntries() {
	now := c.now()
	removed := 0

	c.mu.Lock()
	for key, entry := range c.items {
		if !entry.expiresAt.After(now) {
			delete(c.items, key)
			removed++
		}
	}
	c.mu.Unlock()

	if removed > 0 {
		c.logger.Debug("cleaned up expired cache entries", zap.Int("count", removed))
	}
}
