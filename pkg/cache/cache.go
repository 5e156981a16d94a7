// Package cache stores rendered artifacts so repeated renders of the same
// graph or grid can skip the renderer.
//
// Entries are opaque byte slices addressed by string keys. Keys are derived
// from a content hash of the render input (the DOT source of a link graph,
// or the JSON of a packed grid) plus the render options, so a changed input
// simply misses:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.ArtifactKey(cache.Hash([]byte(dot)), cache.ArtifactKeyOpts{Kind: "network", Format: "svg"})
//	svg, hit, err := cache.Memo(ctx, c, key, cache.DefaultTTL, func() ([]byte, error) {
//		return nodelink.RenderSVG(ctx, dot)
//	})
//
// [FileCache] serves the CLI and [MemoryCache] the preview server.
// [RedisCache] lets several preview servers share renders, and [NullCache]
// is used when caching is disabled.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long rendered artifacts stay valid.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte-oriented key-value store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Memo returns the cached value for key, or calls compute and stores its
// result. hit reports whether the value came from the cache. Read and write
// failures of the cache are not fatal: the value is computed regardless.
func Memo(ctx context.Context, c Cache, key string, ttl time.Duration, compute func() ([]byte, error)) (data []byte, hit bool, err error) {
	if data, hit, err := c.Get(ctx, key); err == nil && hit {
		return data, true, nil
	}

	data, err = compute()
	if err != nil {
		return nil, false, err
	}
	_ = c.Set(ctx, key, data, ttl)
	return data, false, nil
}
