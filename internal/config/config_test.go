package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(missing) = %+v, want defaults", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[parser]
lookahead = 12

[relations]
max_depth = 25

[server]
addr = "127.0.0.1:9000"
read_timeout = "2s"

[cache]
backend = "redis"
redis_url = "redis://localhost:6379/1"
ttl = "1h"
key_prefix = "delpech:"

[store]
mongo_uri = "mongodb://localhost:27017"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Parser.Lookahead != 12 || cfg.Relations.MaxDepth != 25 {
		t.Errorf("parser/relations = %+v %+v", cfg.Parser, cfg.Relations)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Server.ReadTimeout.Duration != 2*time.Second {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Server.WriteTimeout != Default().Server.WriteTimeout {
		t.Errorf("unset write_timeout = %s, want default", cfg.Server.WriteTimeout)
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.TTL.Duration != time.Hour || cfg.Cache.KeyPrefix != "delpech:" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Store.MongoURI == "" || cfg.Store.Database != "gedgraph" {
		t.Errorf("store = %+v", cfg.Store)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax", "[parser\n", "parse"},
		{"unknown key", "[parser]\nlookahed = 3\n", "unknown keys: parser.lookahed"},
		{"bad duration", "[cache]\nttl = \"soon\"\n", "parse"},
		{"bad backend", "[cache]\nbackend = \"memcached\"\n", "cache.backend"},
		{"redis without url", "[cache]\nbackend = \"redis\"\n", "redis_url"},
		{"negative lookahead", "[parser]\nlookahead = -1\n", "lookahead"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_CACHE_HOME", "/tmp/cache")

	if p, _ := DefaultPath(); p != "/tmp/cfg/gedgraph/config.toml" {
		t.Errorf("DefaultPath() = %q", p)
	}
	if p, _ := DefaultCacheDir(); p != "/tmp/cache/gedgraph" {
		t.Errorf("DefaultCacheDir() = %q", p)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}
