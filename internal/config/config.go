// Package config loads gedgraph settings from a TOML file.
//
// A missing file is not an error: every setting has a default, and command
// line flags override whatever the file sets.
//
//	[parser]
//	lookahead = 9
//
//	[relations]
//	max_depth = 10
//
//	[server]
//	addr = ":8080"
//	read_timeout = "10s"
//	write_timeout = "30s"
//
//	[cache]
//	backend = "file"          # file, redis or none
//	redis_url = "redis://localhost:6379/0"
//	ttl = "168h"
//	key_prefix = "family:"    # shares one redis between datasets
//
//	[store]
//	mongo_uri = "mongodb://localhost:27017"
//	database = "gedgraph"
//	collection = "people"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gedgraph/pkg/pipeline"
	"github.com/matzehuels/gedgraph/pkg/store/mongo"
)

const appName = "gedgraph"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the complete configuration.
type Config struct {
	Parser    Parser    `toml:"parser"`
	Relations Relations `toml:"relations"`
	Server    Server    `toml:"server"`
	Cache     Cache     `toml:"cache"`
	Store     Store     `toml:"store"`
}

type Parser struct {
	Lookahead int `toml:"lookahead"`
}

type Relations struct {
	MaxDepth int `toml:"max_depth"`
}

type Server struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

type Cache struct {
	Backend  string   `toml:"backend"`
	Dir      string   `toml:"dir"`
	RedisURL string   `toml:"redis_url"`
	TTL      Duration `toml:"ttl"`

	// KeyPrefix scopes every cache key.
	KeyPrefix string `toml:"key_prefix"`
}

// Store configures MongoDB persistence. An empty MongoURI disables it.
type Store struct {
	MongoURI   string `toml:"mongo_uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Duration is a time.Duration written as a Go duration string ("30s").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Parser:    Parser{Lookahead: pipeline.DefaultLookahead},
		Relations: Relations{MaxDepth: pipeline.DefaultMaxDepth},
		Server: Server{
			Addr:         ":8080",
			ReadTimeout:  Duration{10 * time.Second},
			WriteTimeout: Duration{30 * time.Second},
		},
		Cache: Cache{
			Backend: BackendFile,
			TTL:     Duration{pipeline.DefaultTTL},
		},
		Store: Store{
			Database:   mongo.DefaultDatabase,
			Collection: mongo.DefaultCollection,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/gedgraph/config.toml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// DefaultCacheDir returns $XDG_CACHE_HOME/gedgraph, falling back to
// ~/.cache.
func DefaultCacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// Load reads the file at path over the defaults. A missing file yields the
// defaults. Unknown keys are an error so typos do not go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("parse %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and the cache backend.
func (c Config) Validate() error {
	opts := pipeline.Options{Lookahead: c.Parser.Lookahead, MaxDepth: c.Relations.MaxDepth}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.RedisURL == "" {
			return errors.New("cache.redis_url is required for the redis backend")
		}
	default:
		return fmt.Errorf("cache.backend must be one of file, redis, none; got %q", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New("cache.ttl must not be negative")
	}
	if c.Server.ReadTimeout.Duration < 0 || c.Server.WriteTimeout.Duration < 0 {
		return errors.New("server timeouts must not be negative")
	}
	return nil
}
