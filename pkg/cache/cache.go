// Package cache provides an artifact cache for rendered figure scaffolds.
//
// Vector output is cheap to recompute, but rasterizing at print resolution
// (600 DPI) is not. The pipeline caches rendered artifacts keyed by a hash
// of the full render options, so repeated renders of the same figure reuse
// the stored bytes.
//
// Two implementations exist: [FileCache] for CLI usage and [NullCache] to
// disable caching.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts by key.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
