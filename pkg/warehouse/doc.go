// Package warehouse implements the warehouse layout engine.
//
// The engine is a deterministic transform from a hierarchical configuration
// (warehouse dimensions, repeated storage sections, per-section rack grids,
// pallets) into an absolute 3D coordinate tree describing every section,
// rack cell, and pallet.
//
// # Pipeline
//
// A single Compute invocation runs the stages in strict sequence:
//
//	Normalize → Validate → Place sections → Place grids → Assign pallets → Assemble
//
// Normalization converts every quantity to canonical centimeters. Validation
// checks all structural and numeric constraints and aggregates every
// violation; a non-empty violation set halts the pipeline before any
// placement and no tree is produced. Pallet assignment never aborts: pallets
// that cannot be matched to a rack cell are skipped with a Warning.
//
// # Coordinate system
//
// The warehouse origin is its front-left-bottom corner. Sections repeat
// along the X axis (width), rows advance along Y (length), floors stack
// along Z (height). Every node's position is the absolute corner of its
// bounding box; dimensions extend in the positive direction on all axes.
//
// # Determinism
//
// The engine has no hidden state, randomness, or clock dependence. The same
// Config always yields a byte-identical serialized Tree, and output ordering
// is a pure function of input indices (section, then side, floor, row,
// column, depth, all ascending).
//
// # Concurrency
//
// Compute is a pure synchronous computation with no I/O or shared mutable
// state. It is safe to call concurrently for independent configurations.
package warehouse
