package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache is the storage interface for fetched boundary data. The fetcher
// receives one by injection, so tests can substitute a fake and the
// lifetime/invalidation policy stays with the caller.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// YearKey generates the cache key for a requested boundary year. The
// value stored under a given year is referentially identical across
// callers, so concurrent writes are harmless (last write wins).
func YearKey(year int) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("boundaries:%d", year)))
	return "chronomap:v1:" + hex.EncodeToString(hash[:])
}
