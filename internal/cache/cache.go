// Package cache provides memory and disk caching for direct-mode page
// fetches. Rendered browser sessions never cache: alignment checks against
// a live browser must see the page as it is now.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching fetched pages
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from a URL
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "claimlens:v1:" + hex.EncodeToString(hash[:])
}
