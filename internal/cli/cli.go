package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gedgraph/internal/config"
	"github.com/matzehuels/gedgraph/pkg/buildinfo"
	"github.com/matzehuels/gedgraph/pkg/cache"
	gio "github.com/matzehuels/gedgraph/pkg/io"
	"github.com/matzehuels/gedgraph/pkg/observability"
	"github.com/matzehuels/gedgraph/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gedgraph",
		Short: "gedgraph turns GEDCOM files into a queryable family graph",
		Long: `gedgraph parses GEDCOM genealogy files into a normalized graph of people and
their parents, spouses, children and siblings. The graph can be exported as
JSON, queried for ancestors, descendants and generation distances, rendered
with Graphviz, or served over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/gedgraph/config.toml)")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.queryCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and registers the logging hooks.
func (c *CLI) loadConfig() error {
	hooks := &logHooks{logger: c.Logger}
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)

	path := c.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			c.Logger.Debug("no config path", "error", err)
			c.cfg = config.Default()
			return nil
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.Logger.Debug("loaded config", "path", path, "cache", cfg.Cache.Backend)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if prefix := c.cfg.Cache.KeyPrefix; prefix != "" {
		keyer = cache.NewScopedKeyer(nil, prefix)
	}
	return pipeline.NewRunner(cc, keyer, c.Logger), nil
}

// newCache opens the configured cache backend. An unusable file cache
// directory disables caching instead of failing the command.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.cfg.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		return cache.NewRedisCache(ctx, c.cfg.Cache.RedisURL, c.cfg.Cache.KeyPrefix)
	}
	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Warn("caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// cacheDir returns the configured cache directory or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.cfg.Cache.Dir != "" {
		return c.cfg.Cache.Dir, nil
	}
	return config.DefaultCacheDir()
}

// =============================================================================
// Options Helpers
// =============================================================================

// buildFlags are the flags shared by every command that builds a source.
type buildFlags struct {
	noCache   bool
	refresh   bool
	lookahead int
	maxDepth  int
}

func (f *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "rebuild even if a cached artifact exists")
	cmd.Flags().IntVar(&f.lookahead, "lookahead", 0, "lines scanned for an event's DATE and PLAC (default from config)")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", 0, "generation distance search depth (default from config)")
}

// options merges the flags over the config file values.
func (c *CLI) options(f buildFlags, source string) pipeline.Options {
	opts := pipeline.Options{
		Source:    source,
		Lookahead: c.cfg.Parser.Lookahead,
		MaxDepth:  c.cfg.Relations.MaxDepth,
		TTL:       c.cfg.Cache.TTL.Duration,
		Refresh:   f.refresh,
		Logger:    c.Logger,
	}
	if f.lookahead != 0 {
		opts.Lookahead = f.lookahead
	}
	if f.maxDepth != 0 {
		opts.MaxDepth = f.maxDepth
	}
	return opts
}

// loadArtifact returns the artifact for input: a built JSON artifact is
// read as is, anything else is built as GEDCOM through the cache.
func (c *CLI) loadArtifact(ctx context.Context, input string, f buildFlags) (*pipeline.Result, error) {
	if strings.EqualFold(filepath.Ext(input), ".json") {
		a, err := gio.ImportJSON(input)
		if err != nil {
			return nil, err
		}
		return &pipeline.Result{
			Artifact: a,
			Stats:    pipeline.Stats{People: len(a.People), Families: a.Statistics.TotalFamilies},
		}, nil
	}

	src, err := pipeline.LoadSource(input)
	if err != nil {
		return nil, err
	}
	runner, err := c.newRunner(ctx, f.noCache)
	if err != nil {
		return nil, err
	}
	defer runner.Close()

	res, err := runner.Build(ctx, src, c.options(f, input))
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", input, err)
	}
	return res, nil
}
