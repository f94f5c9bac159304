// Package cache stores rendered slide artifacts keyed by a hash of the
// inputs that produced them.
//
// Three backends implement [Cache]:
//
//   - [FileCache] keeps entries as JSON files under a directory (CLI default)
//   - [RedisCache] keeps entries in Redis (shared by serve instances)
//   - [NullCache] stores nothing (caching disabled)
//
// Keys come from [RenderKey], which hashes the document bytes together with
// every option that changes the output.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
//
// Get reports a miss with ok == false and a nil error. Expired entries are
// misses. A ttl of zero or less means the entry does not expire.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by backends that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}
