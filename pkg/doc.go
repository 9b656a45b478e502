// Package pkg provides the core libraries for warehouse layout computation.
//
// # Overview
//
// The engine turns a hierarchical warehouse configuration into a deterministic
// 3D layout tree: sections placed along the warehouse width, racks subdivided
// from section volumes, and pallets assigned to rack cells with absolute
// coordinates. The pkg directory is organized into the following areas:
//
//  1. [warehouse] - Domain logic (validation, placement, the layout tree)
//  2. [pipeline] - Orchestration (validate → compute, caching, stats)
//  3. [cache] - Layout cache backends (file, redis, null) and key derivation
//  4. [io] - Configuration import (JSON/TOML) and tree export
//  5. [units] - Length unit conversion to canonical centimeters
//  6. [errors] - Coded errors shared across the module
//  7. [observability] - Hook interfaces for metrics and tracing
//  8. [buildinfo] - Build metadata injected at link time
//
// # Architecture
//
// The typical data flow:
//
//	config.json / config.toml
//	         ↓
//	    [io] package (decode, strict field checking)
//	         ↓
//	    [warehouse] package (normalize units → validate → place → assemble)
//	         ↓
//	    [pipeline] package (cache lookup, stats, hooks)
//	         ↓
//	    layout.json tree
//
// # Quick Start
//
// Compute a layout from a configuration file:
//
//	import (
//	    "context"
//	    "github.com/divyakjce123/3d-warehouse-visualizer/pkg/cache"
//	    "github.com/divyakjce123/3d-warehouse-visualizer/pkg/io"
//	    "github.com/divyakjce123/3d-warehouse-visualizer/pkg/pipeline"
//	)
//
//	cfg, _ := io.ImportConfig("config.json")
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	res, _ := runner.Execute(context.Background(), pipeline.Options{Config: cfg})
//	_ = io.ExportTree(res.Tree, "layout.json")
//
// Or call the engine directly when caching is not needed:
//
//	tree, warnings, err := warehouse.Compute(cfg)
//
// # Determinism
//
// Identical configurations always produce byte-identical serialized trees:
// normalization is order-preserving, placement iterates indices in a fixed
// order, and no step reads the clock, random state, or map iteration order.
// The [pipeline] cache relies on this to key layouts by config content hash.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/warehouse/... # Engine only
//	go test -run Example        # Examples only
//
// [warehouse]: https://pkg.go.dev/github.com/divyakjce123/3d-warehouse-visualizer/pkg/warehouse
// [pipeline]: https://pkg.go.dev/github.com/divyakjce123/3d-warehouse-visualizer/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/divyakjce123/3d-warehouse-visualizer/pkg/cache
// [io]: https://pkg.go.dev/github.com/divyakjce123/3d-warehouse-visualizer/pkg/io
// [units]: https://pkg.go.dev/github.com/divyakjce123/3d-warehouse-visualizer/pkg/units
// [errors]: https://pkg.go.dev/github.com/divyakjce123/3d-warehouse-visualizer/pkg/errors
// [observability]: https://pkg.go.dev/github.com/divyakjce123/3d-warehouse-visualizer/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/divyakjce123/3d-warehouse-visualizer/pkg/buildinfo
package pkg
