// Package cache provides the byte-level caches behind name resolution.
//
// # Backends
//
//   - [FileCache] stores entries as JSON files under a directory, for a
//     single host (the CLI default, ~/.cache/pcietopo).
//   - [RedisCache] shares entries between hosts through Redis, for fleets
//     that render many machines with the same hardware.
//   - [NullCache] stores nothing (--no-cache).
//
// Only resolved vendor and device names are cached. Topology is rebuilt
// from sysfs on every run and never stored.
//
// # Keys
//
// A [Keyer] derives cache keys, so the same names can be shared across
// backends. [ScopedKeyer] prefixes keys to keep unrelated data apart in a
// shared Redis instance.
package cache

import (
	"context"
	"time"
)

// TTLNames is the default lifetime of a cached vendor or device name.
// Names in pci.ids change rarely.
const TTLNames = 30 * 24 * time.Hour

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get returns the value for key. A miss is reported with found=false
	// and a nil error.
	Get(ctx context.Context, key string) (data []byte, found bool, err error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}
