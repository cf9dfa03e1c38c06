package cache

import (
	"context"
	"errors"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || hit || data != nil {
		t.Errorf("Get = %q, %v, %v; want miss", data, hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if _, hit, _ := c.Get(ctx, "missing"); hit {
		t.Error("Get(missing) reported a hit")
	}

	if err := c.Set(ctx, "artifact:abc", []byte(`{"people":[]}`), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "artifact:abc")
	if err != nil || !hit || string(data) != `{"people":[]}` {
		t.Errorf("Get = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, "artifact:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "artifact:abc"); hit {
		t.Error("entry still present after Delete")
	}
	if err := c.Delete(ctx, "artifact:abc"); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	_ = c.Set(ctx, "k", []byte("v"), time.Nanosecond)
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry returned")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry not removed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	path := c.path("k")
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	_ = os.WriteFile(path, []byte("not json"), 0644)

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("Get(corrupt) = %v, %v; want silent miss", hit, err)
	}
}

func TestFileCacheForeignEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	_ = c.Set(ctx, "other", []byte("v"), 0)
	if err := os.MkdirAll(filepath.Dir(c.path("k")), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(c.path("other"), c.path("k")); err != nil {
		t.Fatal(err)
	}

	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("entry stored under another key was returned")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	for _, k := range []string{"a", "b", "c"} {
		_ = c.Set(ctx, k, []byte(k), 0)
	}

	n, err := c.Clear(ctx)
	if err != nil || n != 3 {
		t.Errorf("Clear() = %d, %v; want 3, nil", n, err)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("entry present after Clear")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	a1 := k.ArtifactKey("src", ArtifactKeyOpts{Lookahead: 9})
	a2 := k.ArtifactKey("src", ArtifactKeyOpts{Lookahead: 12})
	a3 := k.ArtifactKey("other", ArtifactKeyOpts{Lookahead: 9})
	if a1 == a2 || a1 == a3 {
		t.Error("different sources or options should produce different keys")
	}
	if a1 != k.ArtifactKey("src", ArtifactKeyOpts{Lookahead: 9}) {
		t.Error("ArtifactKey should be deterministic")
	}
	if !strings.HasPrefix(a1, "artifact:") || len(a1) != len("artifact:")+64 {
		t.Errorf("ArtifactKey = %q", a1)
	}

	r1 := k.RenderKey("art", RenderKeyOpts{Format: "svg"})
	r2 := k.RenderKey("art", RenderKeyOpts{Format: "dot"})
	if r1 == r2 || !strings.HasPrefix(r1, "render:") {
		t.Errorf("RenderKey = %q / %q", r1, r2)
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(nil, "family:delpech:")
	key := scoped.ArtifactKey("src", ArtifactKeyOpts{})
	if want := "family:delpech:" + NewDefaultKeyer().ArtifactKey("src", ArtifactKeyOpts{}); key != want {
		t.Errorf("ArtifactKey = %q, want %q", key, want)
	}
	if !strings.HasPrefix(scoped.RenderKey("a", RenderKeyOpts{}), "family:delpech:render:") {
		t.Error("RenderKey should be prefixed")
	}
}

func TestBackoff(t *testing.T) {
	ctx := context.Background()
	b := backoff{attempts: 3, delay: time.Millisecond}

	permanent := errors.New("permanent")
	netErr := transient(errors.New("dial tcp: connection refused"))
	tests := []struct {
		name      string
		failures  int
		err       error
		wantCalls int
		wantErr   error
	}{
		{"success", 0, nil, 1, nil},
		{"permanent", 5, permanent, 1, permanent},
		{"recovers", 1, netErr, 2, nil},
		{"gives up", 5, netErr, 3, ErrNetwork},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := b.do(ctx, func() error {
				calls++
				if calls <= tt.failures {
					return tt.err
				}
				return nil
			})
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := defaultBackoff.do(ctx, func() error {
		return transient(errors.New("connection reset"))
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), "not-a-url", ""); err == nil {
		t.Error("NewRedisCache(bad url) should fail")
	}
}

func TestTransient(t *testing.T) {
	if transient(nil) != nil {
		t.Error("nil should stay nil")
	}
	if errors.Is(transient(context.Canceled), ErrNetwork) {
		t.Error("context cancellation should not be retried")
	}
	if !errors.Is(transient(errors.New("dial tcp: connection refused")), ErrNetwork) {
		t.Error("connection errors should be retried")
	}
}

func TestClearPatterns(t *testing.T) {
	tests := []struct {
		prefix string
		want   []string
	}{
		{"", []string{"artifact:*", "render:*"}},
		{"delpech:", []string{"delpech:artifact:*", "delpech:render:*"}},
		{"a*b?[c]:", []string{`a\*b\?\[c\]:artifact:*`, `a\*b\?\[c\]:render:*`}},
	}
	for _, tt := range tests {
		got := clearPatterns(tt.prefix)
		if !slices.Equal(got, tt.want) {
			t.Errorf("clearPatterns(%q) = %q, want %q", tt.prefix, got, tt.want)
		}
	}

	// An unprefixed cache must not reach into another scope's keys.
	scoped := NewScopedKeyer(nil, "other:").ArtifactKey("src", ArtifactKeyOpts{})
	for _, pattern := range clearPatterns("") {
		if ok, _ := path.Match(pattern, scoped); ok {
			t.Errorf("pattern %q matches scoped key %q", pattern, scoped)
		}
	}
}
