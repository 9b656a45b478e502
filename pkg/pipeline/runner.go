package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/cache"
	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/observability"
	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/warehouse"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// cachedLayout is the cache envelope for a computed layout. Warnings travel
// with the tree so cache hits reproduce the full Compute output.
type cachedLayout struct {
	Tree     *warehouse.Tree     `json:"tree"`
	Warnings []warehouse.Warning `json:"warnings"`
}

// Execute runs the complete validate → compute pipeline with caching.
//
// A config that fails validation returns a *warehouse.ValidationError
// listing every violation.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	opts.setDefaults()
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Validate
	sectionCount := len(opts.Config.Sections)
	validateStart := time.Now()
	observability.Engine().OnValidateStart(ctx, sectionCount)
	errs := warehouse.Validate(opts.Config)
	result.Stats.ValidateTime = time.Since(validateStart)
	observability.Engine().OnValidateComplete(ctx, sectionCount, len(errs), result.Stats.ValidateTime)
	if len(errs) > 0 {
		return nil, &warehouse.ValidationError{Errors: errs}
	}

	result.ConfigHash = ConfigHash(opts.Config)

	// Stage 2: Compute
	computeStart := time.Now()
	observability.Engine().OnComputeStart(ctx, sectionCount)
	tree, warnings, layoutHit, err := r.ComputeWithCacheInfo(ctx, opts)
	result.Stats.ComputeTime = time.Since(computeStart)
	if err != nil {
		observability.Engine().OnComputeComplete(ctx, 0, 0, result.Stats.ComputeTime, err)
		return nil, fmt.Errorf("compute: %w", err)
	}
	observability.Engine().OnComputeComplete(ctx, tree.RackCount(), tree.PalletCount(), result.Stats.ComputeTime, nil)

	result.Tree = tree
	result.Warnings = warnings
	result.CacheInfo.LayoutHit = layoutHit
	result.Stats.SectionCount = len(tree.Sections)
	result.Stats.RackCount = tree.RackCount()
	result.Stats.PalletCount = tree.PalletCount()
	result.Stats.WarningCount = len(warnings)

	r.Logger.Info("computed layout",
		"sections", result.Stats.SectionCount,
		"racks", result.Stats.RackCount,
		"pallets", result.Stats.PalletCount,
		"warnings", result.Stats.WarningCount,
		"cached", layoutHit,
		"duration", result.Stats.ComputeTime)

	return result, nil
}

// ComputeWithCacheInfo computes the layout with caching and returns cache
// hit info.
func (r *Runner) ComputeWithCacheInfo(ctx context.Context, opts Options) (*warehouse.Tree, []warehouse.Warning, bool, error) {
	opts.setDefaults()
	r.applyLogger(&opts)

	cacheKey := r.Keyer.LayoutKey(ConfigHash(opts.Config), opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached cachedLayout
			if err := json.Unmarshal(data, &cached); err == nil && cached.Tree != nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached.Tree, cached.Warnings, true, nil
			}
			// Corrupt entry falls through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	tree, warnings, err := warehouse.Compute(opts.Config)
	if err != nil {
		return nil, nil, false, err
	}

	// Cache the result
	if !opts.Refresh {
		if data, err := json.Marshal(cachedLayout{Tree: tree, Warnings: warnings}); err == nil {
			if err := r.Cache.Set(ctx, cacheKey, data, cache.LayoutTTL); err == nil {
				observability.Cache().OnCacheSet(ctx, "layout", len(data))
			}
		}
	}

	return tree, warnings, false, nil
}

// Compute is a convenience wrapper that calls ComputeWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Compute(ctx context.Context, opts Options) (*warehouse.Tree, []warehouse.Warning, error) {
	tree, warnings, _, err := r.ComputeWithCacheInfo(ctx, opts)
	return tree, warnings, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// ConfigHash computes the content hash of the normalized configuration.
// Two configs that normalize to the same canonical form share a hash, no
// matter which units they were written in.
func ConfigHash(cfg warehouse.Config) string {
	data, _ := json.Marshal(cfg.Normalized())
	return cache.Hash(data)
}
