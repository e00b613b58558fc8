package data

import (
	"context"
	"log"
	"sync"

	"github.com/ducminhle1904/crypto-analyzer/pkg/types"
)

// MemoryCache implements Cache using in-memory storage.
type MemoryCache struct {
	cache map[string][]types.OHLCV
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		cache: make(map[string][]types.OHLCV),
	}
}

// Get retrieves data from cache if available. A copy is returned so callers
// cannot mutate the cached series.
func (c *MemoryCache) Get(key string) ([]types.OHLCV, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	data, exists := c.cache[key]
	if !exists {
		return nil, false
	}
	result := make([]types.OHLCV, len(data))
	copy(result, data)
	return result, true
}

// Set stores a copy of the data in cache.
func (c *MemoryCache) Set(key string, data []types.OHLCV) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	cached := make([]types.OHLCV, len(data))
	copy(cached, data)
	c.cache[key] = cached
}

// Clear removes all cached data.
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.cache = make(map[string][]types.OHLCV)
}

// Size returns the number of cached entries.
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.cache)
}

// CachedProvider wraps another Provider with request-keyed caching, so
// repeated analyses of the same (symbol, interval, range) hit the source
// once per process.
type CachedProvider struct {
	provider Provider
	cache    Cache
}

// NewCachedProvider creates a new cached data provider.
func NewCachedProvider(provider Provider) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		cache:    NewMemoryCache(),
	}
}

// NewCachedProviderWithCache creates a cached data provider with a custom
// cache implementation.
func NewCachedProviderWithCache(provider Provider, cache Cache) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		cache:    cache,
	}
}

// GetName returns the name of the underlying provider with cache indication.
func (p *CachedProvider) GetName() string {
	return "Cached " + p.provider.GetName()
}

// GetHistoricalData loads data, serving repeated requests from cache.
func (p *CachedProvider) GetHistoricalData(ctx context.Context, req Request) ([]types.OHLCV, error) {
	key := req.CacheKey()
	if cached, exists := p.cache.Get(key); exists {
		return cached, nil
	}

	data, err := p.provider.GetHistoricalData(ctx, req)
	if err != nil {
		return nil, err
	}

	p.cache.Set(key, data)
	log.Printf("✅ Loaded and cached %d candles for %s %s", len(data), req.Symbol, req.Interval)
	return data, nil
}

// ClearCache clears all cached data.
func (p *CachedProvider) ClearCache() {
	p.cache.Clear()
}

// GetCacheSize returns the number of cached entries.
func (p *CachedProvider) GetCacheSize() int {
	return p.cache.Size()
}
