package common

import "time"

// CacheInterface defines the contract for cache implementations.
// Values are stored JSON-encoded so every backend returns the same typed
// result through Get.
type CacheInterface interface {
	// Set stores a value in cache with the given key and duration
	Set(key string, value interface{}, duration time.Duration)

	// Get decodes the cached value for key into dst.
	// Returns false when the key is absent or cannot be decoded.
	Get(key string, dst interface{}) bool

	// Delete removes a value from cache by key
	Delete(key string)

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}
