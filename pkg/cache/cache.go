// Package cache stores build artifacts between runs.
//
// # Overview
//
// Parsing and converting a large GEDCOM file is the expensive part of a
// build. The [Cache] interface lets the pipeline skip that work when the
// same source is built again with the same options:
//
//   - [FileCache]: entries on local disk (the CLI default)
//   - [RedisCache]: entries in Redis, shared between machines
//   - [NewNullCache]: caching disabled
//
// Keys come from a [Keyer], which hashes the source content together with
// every option that changes the output, so a changed option never returns a
// stale artifact.
//
// # Usage
//
//	c, err := cache.NewFileCache(dir)
//	key := cache.NewDefaultKeyer().ArtifactKey(cache.Hash(src), cache.ArtifactKeyOpts{Lookahead: 9})
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with per-entry expiry.
//
// Get reports a miss with hit == false and a nil error; errors are reserved
// for backend failures. A ttl of zero means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

type nullCache struct{}

// NewNullCache returns a cache that stores nothing: every Get misses.
func NewNullCache() Cache { return nullCache{} }

func (nullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (nullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (nullCache) Delete(context.Context, string) error                     { return nil }
func (nullCache) Close() error                                             { return nil }
