// Package cache provides byte-oriented caching for computed layout trees,
// with file-based and Redis-backed implementations sharing one interface.
//
// Keys are derived from content hashes of the normalized configuration, so
// identical warehouse configs hit the same entry regardless of where the
// config file lives or how its JSON is formatted.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry kind. Layout trees are pure functions of their
// config hash and engine version, so they could live forever; the TTLs
// just bound disk and Redis growth.
const (
	LayoutTTL = 7 * 24 * time.Hour
	ResultTTL = 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry TTL.
// A zero TTL means the entry never expires.
type Cache interface {
	// Get retrieves the value for key. The second return value reports
	// whether the key was present; an expired or corrupt entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key with the given TTL.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer generates cache keys for the layout domain.
type Keyer interface {
	// ConfigKey generates a key for a raw normalized config snapshot.
	ConfigKey(configHash string) string

	// LayoutKey generates a key for a computed layout tree.
	LayoutKey(configHash string, opts LayoutKeyOpts) string

	// ResultKey generates a key for a stored layout result addressed by
	// its server-issued layout ID.
	ResultKey(layoutID string) string
}

// LayoutKeyOpts captures everything beyond the config that influences the
// computed tree. Bumping EngineVersion invalidates all cached layouts.
type LayoutKeyOpts struct {
	EngineVersion string `json:"engine_version"`
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ConfigKey generates a key for a raw normalized config snapshot.
func (k *DefaultKeyer) ConfigKey(configHash string) string {
	return "config:" + configHash
}

// LayoutKey generates a key for a computed layout tree.
func (k *DefaultKeyer) LayoutKey(configHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", configHash, opts)
}

// ResultKey generates a key for a stored layout result.
func (k *DefaultKeyer) ResultKey(layoutID string) string {
	return "result:" + layoutID
}
