package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Key prefixes, also used by [RedisCache.Clear] to find owned entries.
const (
	PrefixArtifact = "artifact"
	PrefixRender   = "render"
)

// ArtifactKeyOpts are the build options that change a built artifact.
// Query-time settings such as the distance search depth do not belong here.
type ArtifactKeyOpts struct {
	Lookahead int `json:"lookahead"`
}

// RenderKeyOpts are the options that change a rendered diagram.
type RenderKeyOpts struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed"`
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey returns the key of the artifact built from the source
	// whose content hash is sourceHash.
	ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string

	// RenderKey returns the key of a diagram rendered from an artifact.
	RenderKey(artifactHash string, opts RenderKeyOpts) string
}

// DefaultKeyer produces "prefix:sha256" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key derivation.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey hashes the source hash with the build options.
func (DefaultKeyer) ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string {
	return hashKey(PrefixArtifact, sourceHash, opts)
}

// RenderKey hashes the artifact hash with the render options.
func (DefaultKeyer) RenderKey(artifactHash string, opts RenderKeyOpts) string {
	return hashKey(PrefixRender, artifactHash, opts)
}

// ScopedKeyer prefixes every key of an inner Keyer, isolating several
// datasets (or users) in one shared backend.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all keys. A nil
// inner keyer means the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey returns the prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sourceHash, opts)
}

// RenderKey returns the prefixed render key.
func (k *ScopedKeyer) RenderKey(artifactHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(artifactHash, opts)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey returns "prefix:" followed by the hash of base and the JSON of
// opts. Option structs always marshal, so the error is ignored.
func hashKey(prefix, base string, opts any) string {
	h := sha256.New()
	h.Write([]byte(base))
	h.Write([]byte{0})
	_ = json.NewEncoder(h).Encode(opts)
	return prefix + ":" + hex.EncodeToString(h.Sum(nil))
}
