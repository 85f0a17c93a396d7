// Package interfaces defines the contracts between the article store, the
// backend services it calls, and the infrastructure underneath them.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by every Cache implementation when a key is absent
// or has expired.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache defines the interface for response cache backends.
// Implementations can be go-cache, Redis, SQLite, or anything else that
// stores opaque bytes with a TTL.
//
// Example usage:
//
//	// Store a response body
//	err := cache.Set(ctx, "article:how-to-train-your-dragon", body, time.Minute)
//
//	// Retrieve it
//	data, err := cache.Get(ctx, "article:how-to-train-your-dragon")
//	if errors.Is(err, interfaces.ErrCacheMiss) {
//		// fetch from the backend
//	}
//
//	// Invalidate after a write
//	err = cache.Delete(ctx, "article:how-to-train-your-dragon")
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns ErrCacheMiss if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the backend's default expiration applies.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
