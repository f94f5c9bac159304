package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/slidegrid/pkg/cache"
	"github.com/matzehuels/slidegrid/pkg/observability"
)

const cacheKeyType = "render"

// Runner encapsulates pipeline execution with caching.
//
// The Runner holds no per-run state. Every run builds its own tree and
// surface, so multiple goroutines can share one Runner.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. If c is nil, caching is disabled.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// cachedResult is the cache representation of a run.
type cachedResult struct {
	Title       string            `json:"title,omitempty"`
	NodeCount   int               `json:"node_count"`
	Annotations int               `json:"annotations"`
	Artifacts   map[string][]byte `json:"artifacts"`
}

// Execute runs the complete decode → resolve → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{RunID: uuid.NewString()}
	logger := opts.Logger.With("run", result.RunID[:8])
	key := cache.RenderKey(opts.Document, opts.KeyOpts())

	if !opts.Refresh {
		if cached, ok := r.lookup(ctx, key); ok {
			result.Title = cached.Title
			result.Artifacts = cached.Artifacts
			result.Stats.NodeCount = cached.NodeCount
			result.Stats.Annotations = cached.Annotations
			result.CacheHit = true
			logger.Debug("cache hit", "key", key)
			return result, nil
		}
	}

	// Stage 1: Decode
	start := time.Now()
	doc, err := Decode(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	result.Title = doc.Title
	result.Stats.DecodeTime = time.Since(start)
	result.Stats.NodeCount = doc.Count()
	logger.Debug("decoded document", "syntax", opts.Syntax, "nodes", result.Stats.NodeCount)

	// Stage 2: Resolve
	start = time.Now()
	slide, err := Resolve(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	result.Stats.ResolveTime = time.Since(start)
	result.Stats.Annotations = slide.Surface.Len()
	logger.Info("resolved layout",
		"nodes", result.Stats.NodeCount,
		"annotations", result.Stats.Annotations,
		"duration", result.Stats.ResolveTime)

	// Stage 3: Render
	start = time.Now()
	artifacts, err := Render(ctx, slide, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(start)
	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	r.store(ctx, key, result, opts.TTL, logger)
	return result, nil
}

func (r *Runner) lookup(ctx context.Context, key string) (*cachedResult, bool) {
	hooks := observability.Cache()
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
	}
	if err != nil || !hit {
		hooks.OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}
	var cached cachedResult
	if err := json.Unmarshal(data, &cached); err != nil {
		hooks.OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}
	hooks.OnCacheHit(ctx, cacheKeyType)
	return &cached, true
}

func (r *Runner) store(ctx context.Context, key string, result *Result, ttl time.Duration, logger *log.Logger) {
	data, err := json.Marshal(cachedResult{
		Title:       result.Title,
		NodeCount:   result.Stats.NodeCount,
		Annotations: result.Stats.Annotations,
		Artifacts:   result.Artifacts,
	})
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
