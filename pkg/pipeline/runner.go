package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gedgraph/pkg/cache"
	gio "github.com/matzehuels/gedgraph/pkg/io"
	"github.com/matzehuels/gedgraph/pkg/observability"
	"github.com/matzehuels/gedgraph/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// The CLI and the server both use it so cache keys stay identical.
//
// The Runner holds no build results. Multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Build returns the artifact for src, from the cache when the same content
// was built before with the same options. Cache failures are logged and
// never fail the build.
func (r *Runner) Build(ctx context.Context, src []byte, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	key := r.Keyer.ArtifactKey(cache.Hash(src), opts.ArtifactKeyOpts())
	hooks := observability.Cache()

	if !opts.Refresh {
		start := time.Now()
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			r.Logger.Warn("cache lookup failed", "error", err)
		case hit:
			a, err := gio.ReadJSON(bytes.NewReader(data))
			if err == nil {
				hooks.OnCacheHit(ctx, cache.PrefixArtifact)
				r.Logger.Debug("artifact cache hit", "source", opts.Source, "build", a.BuildID)
				if a.Source == "" {
					a.Source = opts.Source
				}
				return &Result{
					Artifact: a,
					CacheHit: true,
					Stats: Stats{
						People:    len(a.People),
						Families:  a.Statistics.TotalFamilies,
						BuildTime: time.Since(start),
					},
				}, nil
			}
			// Undecodable entries are rebuilt and overwritten.
			r.Logger.Debug("discarding cached artifact", "error", err)
		}
		hooks.OnCacheMiss(ctx, cache.PrefixArtifact)
	}

	a, stats, err := Build(ctx, src, opts)
	if err != nil {
		return nil, err
	}
	r.Logger.Info("built artifact",
		"source", opts.Source,
		"people", stats.People,
		"families", stats.Families,
		"line_errors", stats.LineErrors,
		"duration", stats.BuildTime)

	var buf bytes.Buffer
	if err := gio.WriteJSON(a, &buf); err != nil {
		return nil, fmt.Errorf("encode artifact: %w", err)
	}
	if err := r.Cache.Set(ctx, key, buf.Bytes(), opts.TTL); err != nil {
		r.Logger.Warn("cache store failed", "error", err)
	} else {
		hooks.OnCacheSet(ctx, cache.PrefixArtifact, buf.Len())
	}

	return &Result{Artifact: a, Stats: stats}, nil
}

// Render draws the people of a as a diagram, from the cache when the same
// people were rendered before with the same options. The boolean reports a
// cache hit.
func (r *Runner) Render(ctx context.Context, a *gio.Artifact, opts RenderOptions) ([]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	people, err := json.Marshal(a.People)
	if err != nil {
		return nil, false, fmt.Errorf("hash people: %w", err)
	}
	key := r.Keyer.RenderKey(cache.Hash(people), cache.RenderKeyOpts{
		Format:   opts.Format,
		Detailed: opts.Detailed,
	})

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, cache.PrefixRender)
		return data, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, cache.PrefixRender)

	data, err := Render(ctx, a, opts)
	if err != nil {
		return nil, false, err
	}
	if err := r.Cache.Set(ctx, key, data, DefaultTTL); err == nil {
		observability.Cache().OnCacheSet(ctx, cache.PrefixRender, len(data))
	}
	return data, false, nil
}

// Render draws the people of a without consulting a cache.
func Render(ctx context.Context, a *gio.Artifact, opts RenderOptions) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Format, len(a.People))

	dot := render.ToDOT(a.People, render.Options{Detailed: opts.Detailed})
	var (
		data []byte
		err  error
	)
	switch opts.Format {
	case render.FormatDOT:
		data = []byte(dot)
	case render.FormatSVG:
		data, err = render.RenderSVG(ctx, dot)
	}

	hooks.OnRenderComplete(ctx, opts.Format, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", opts.Format, err)
	}
	return data, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
