package cache

import (
	"context"
	"time"
)

// NullCache satisfies [Cache] without storing anything, so every render
// runs the full pipeline. The CLI selects it for --no-cache and when the
// cache directory cannot be located.
type NullCache struct{}

func NewNullCache() *NullCache { return &NullCache{} }

// Get reports a miss for every key.
func (*NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (*NullCache) Delete(context.Context, string) error { return nil }

func (*NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)
