// Package cache provides the key/value caches used by the render pipeline
// and the extraction server.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the extraction server
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// # Keys
//
// A [Keyer] derives keys from content hashes, so equal inputs share an
// entry no matter where they came from:
//
//	k := cache.NewDefaultKeyer()
//	key := k.ExtractionKey("gpt-4o", cache.Hash(upload))
//	key = k.ArtifactKey(layoutHash, cache.ArtifactKeyOpts{Format: "png", Theme: "flat", Ratio: 2})
//
// Wrap a keyer with [NewScopedKeyer] to give a deployment its own namespace.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default lifetimes per entry kind.
const (
	// TTLExtraction bounds how long an AI extraction result is reused.
	TTLExtraction = 7 * 24 * time.Hour
	// TTLLayout bounds cached layouts.
	TTLLayout = 24 * time.Hour
	// TTLArtifact bounds cached rendered files.
	TTLArtifact = 24 * time.Hour
)
