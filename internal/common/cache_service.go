package common

import (
	"encoding/json"
	"time"

	"github.com/patrickmn/go-cache"

	"wayfarer/tracker/internal/logging"
)

// CacheService is the in-memory cache implementation
type CacheService struct {
	cache *cache.Cache
}

// Ensure CacheService implements CacheInterface
var _ CacheInterface = (*CacheService)(nil)

func NewCacheService(defaultExpiration, cleanUpInterval time.Duration) *CacheService {
	c := cache.New(defaultExpiration, cleanUpInterval)
	return &CacheService{cache: c}
}

func (cs *CacheService) Set(key string, value interface{}, duration time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Warn("Cache: failed to marshal value", "key", key, "error", err.Error())
		return
	}
	cs.cache.Set(key, data, duration)
}

func (cs *CacheService) Get(key string, dst interface{}) bool {
	val, found := cs.cache.Get(key)
	if !found {
		return false
	}

	data, ok := val.([]byte)
	if !ok {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

func (cs *CacheService) Delete(key string) {
	cs.cache.Delete(key)
}

// Flush drops every entry
func (cs *CacheService) Flush() {
	cs.cache.Flush()
}

// Close closes the cache (no-op for in-memory cache)
func (cs *CacheService) Close() error {
	return nil
}
