// Package pipeline provides the core layout pipeline for the warehouse
// visualizer.
//
// This package wraps the layout engine with caching, logging, and
// instrumentation so that CLI and API components share one code path. By
// centralizing this logic, we ensure consistent behavior across all entry
// points and avoid code duplication.
//
// # Architecture
//
// A pipeline run consists of two stages:
//
//  1. Validate: Check the warehouse configuration and aggregate violations
//  2. Compute: Place sections, racks and pallets into an absolute
//     coordinate tree
//
// Computed trees are cached by the content hash of the normalized
// configuration, so repeated runs of an unchanged config are served from
// cache.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Config: cfg})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tree := result.Tree
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/buildinfo"
	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/cache"
	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/warehouse"
)

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Config is the warehouse configuration to lay out.
	Config warehouse.Config `json:"config"`

	// Refresh bypasses the cache and recomputes the layout.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// setDefaults fills in runtime defaults.
func (o *Options) setDefaults() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Tree is the computed layout tree.
	Tree *warehouse.Tree

	// Warnings lists pallets that could not be placed.
	Warnings []warehouse.Warning

	// ConfigHash is the content hash of the normalized configuration.
	ConfigHash string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the layout came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SectionCount int
	RackCount    int
	PalletCount  int
	WarningCount int
	ValidateTime time.Duration
	ComputeTime  time.Duration
}

// CacheInfo tracks cache hits for the pipeline.
type CacheInfo struct {
	LayoutHit bool // Whether the layout tree came from cache
}

// LayoutKeyOpts returns cache key options for layout computation.
// The engine version is part of the key so upgrades never serve stale
// geometry.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		EngineVersion: buildinfo.Version,
	}
}
