package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// FetchKey generates a cache key for a fetched URL
func FetchKey(url string) string {
	return "trustlens:fetch:" + digest(url)
}

// FactCheckKey generates a cache key for an external fact-check lookup
func FactCheckKey(claim string) string {
	return "trustlens:factcheck:" + digest(claim)
}

func digest(s string) string {
	hash := sha256.Sum256([]byte(s))
	return hex.EncodeToString(hash[:])
}
