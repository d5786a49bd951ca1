// Package cache provides pluggable backends for caching HTTP responses.
//
// Caching is strictly a transport-collaborator concern: the mapping core
// never caches or persists results. The CLI wires one of these backends
// into the client's transport when the user opts in; library consumers
// get no caching unless they pass a backend themselves.
//
// Three backends are provided:
//   - [FileCache]: entries stored as files under a directory, for CLI use
//   - [RedisCache]: entries stored in Redis, for shared environments
//   - [NullCache]: a no-op backend that never stores anything (default)
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented cache backend keyed by string.
//
// Get returns (data, true, nil) on a hit, (nil, false, nil) on a miss,
// and a non-nil error only for backend failures. Expired entries are
// treated as misses.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// NullCache is a no-op cache that never stores anything.
// Useful for testing or when caching should be disabled.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always returns a cache miss.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close does nothing.
func (c *NullCache) Close() error {
	return nil
}

// Ensure NullCache implements Cache.
var _ Cache = (*NullCache)(nil)
