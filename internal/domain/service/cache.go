package service

import (
	"context"
	"time"
)

// Cache is the explicit result-cache component. Values are opaque bytes;
// callers serialize what they store. Implementations never fail a request:
// a backend error degrades to a miss on Get and a no-op on Set.
type Cache interface {
	// Get returns the cached value for key and whether it was present and
	// unexpired.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key for ttl. An existing entry is silently
	// replaced (last writer wins).
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)

	// Delete removes a single entry.
	Delete(ctx context.Context, key string)

	// Reset drops every entry owned by this cache. Exposed for tests and for
	// out-of-band invalidation of the category taxonomy.
	Reset(ctx context.Context)
}
