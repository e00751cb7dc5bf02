package repo

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// PlanCache caches serialized plan results keyed by a hash of the input.
// The calculator is deterministic, so cached entries never go stale.
type PlanCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
}

const planCacheTTL = 24 * time.Hour

type RedisPlanCache struct {
	client *redis.Client
}

func NewRedisPlanCache(addr string) *RedisPlanCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisPlanCache{client: rdb}
}

func (c *RedisPlanCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *RedisPlanCache) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, key, value, planCacheTTL).Err()
}

// MemoryPlanCache is the fallback when no Redis address is configured,
// and doubles as the cache used in handler tests.
type MemoryPlanCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryPlanCache() *MemoryPlanCache {
	return &MemoryPlanCache{entries: make(map[string][]byte)}
}

func (c *MemoryPlanCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, ok := c.entries[key]
	return val, ok
}

func (c *MemoryPlanCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}
