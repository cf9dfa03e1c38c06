// Package pipeline runs the gedgraph build: GEDCOM source in, artifact out.
//
// This package implements the parse → convert → validate sequence shared by
// the CLI commands and the HTTP server, plus rendering of a built artifact.
// Centralizing it keeps cache keys, defaults and hooks identical for every
// entry point.
//
// # Architecture
//
// A build has three stages:
//
//  1. Parse: tokenize the source and assemble raw records ([gedcom.Parser])
//  2. Convert: derive the canonical person list ([genealogy.Convert])
//  3. Validate: check referential integrity ([genealogy.Validate])
//
// The result is an [io.Artifact] identified by a fresh build ID. Rendering
// ([Runner.Render]) is a separate step over an artifact.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Build(ctx, src, pipeline.Options{Source: "family.ged"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(res.Artifact.People), res.CacheHit)
//
// Use [Build] directly when no caching is needed.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gedgraph/pkg/cache"
	"github.com/matzehuels/gedgraph/pkg/gedcom"
	"github.com/matzehuels/gedgraph/pkg/genealogy"
	gio "github.com/matzehuels/gedgraph/pkg/io"
	"github.com/matzehuels/gedgraph/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultLookahead is the event lookahead window in lines.
	DefaultLookahead = gedcom.DefaultLookahead

	// DefaultMaxDepth bounds generation-distance searches.
	DefaultMaxDepth = genealogy.DefaultMaxDepth

	// DefaultTTL is how long built artifacts and renders stay cached.
	DefaultTTL = 7 * 24 * time.Hour

	// MaxLookahead caps the lookahead window; larger values would let an
	// event steal DATE lines from unrelated records.
	MaxLookahead = 100
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a build.
type Options struct {
	// Source names the input in logs and in the artifact, usually the
	// file path. It does not affect the cache key.
	Source string `json:"source,omitempty"`

	Lookahead int           `json:"lookahead,omitempty"`
	MaxDepth  int           `json:"max_depth,omitempty"`
	TTL       time.Duration `json:"ttl,omitempty"`

	// Refresh skips the cache lookup and overwrites the cached artifact.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// ValidateAndSetDefaults checks the options and fills zero values with
// defaults. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Lookahead < 0 || o.Lookahead > MaxLookahead {
		return fmt.Errorf("lookahead must be between 0 and %d, got %d", MaxLookahead, o.Lookahead)
	}
	if o.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", o.MaxDepth)
	}
	if o.TTL < 0 {
		return fmt.Errorf("ttl must not be negative, got %s", o.TTL)
	}

	if o.Lookahead == 0 {
		o.Lookahead = DefaultLookahead
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.TTL == 0 {
		o.TTL = DefaultTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ArtifactKeyOpts returns cache key options for the built artifact.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Lookahead: o.Lookahead}
}

// RenderOptions configures [Runner.Render].
type RenderOptions struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed,omitempty"`
}

// ValidateAndSetDefaults defaults the format to SVG and rejects unknown
// formats.
func (o *RenderOptions) ValidateAndSetDefaults() error {
	if o.Format == "" {
		o.Format = render.FormatSVG
	}
	return render.ValidateFormat(o.Format)
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a build.
type Result struct {
	// Artifact is the built (or cached) artifact.
	Artifact *gio.Artifact

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether the artifact came from the cache.
	CacheHit bool
}

// Stats contains build statistics.
type Stats struct {
	Lines      int
	People     int
	Families   int
	LineErrors int
	BuildTime  time.Duration
}
