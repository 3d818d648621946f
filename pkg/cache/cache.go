// Package cache stores downloaded dictionaries so repeated runs do not refetch
// them.
//
// # Backends
//
//   - [FileCache]: JSON entries under a local directory, for CLI usage
//   - [RedisCache]: a shared Redis instance, for servers and CI fleets
//   - [NullCache]: stores nothing, for tests or when caching is disabled
//
// All backends implement [Cache]. Keys are built with a [Keyer] so that
// different deployments can share one backend without colliding.
//
// # Retry
//
// [Retry] and [RetryWithBackoff] re-run an operation whose error was wrapped
// with [Retryable]. Any other error is returned immediately.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value for key. A missing or expired entry is
	// reported as (nil, false, nil); the error is reserved for backend
	// failures.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
