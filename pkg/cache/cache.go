// Package cache stores rendered chart artifacts so that re-plotting unchanged
// data with unchanged styling skips rendering and conversion.
//
// Two backends are provided: [FileCache] for the CLI, which keeps one JSON
// entry file per key under a directory, and [NullCache], which never stores
// anything and backs --no-cache.
//
// Keys are built by a [Keyer] from the SHA-256 of the input data plus the
// options that affect the output (see [ArtifactKeyOpts]).
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
type Cache interface {
	// Get returns the stored data and whether the key was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key for an artifact rendered from data whose
	// hash is dataHash.
	ArtifactKey(dataHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Palette  string  `json:"palette,omitempty"`
	Color    string  `json:"color,omitempty"`
	FontSize float64 `json:"font_size,omitempty"`
	TickDir  string  `json:"tick_dir,omitempty"`
	Breathe  bool    `json:"breathe,omitempty"`
	NoSpines bool    `json:"no_spines,omitempty"`
	NoTicks  bool    `json:"no_ticks,omitempty"`
	Title    string  `json:"title,omitempty"`
	XLabel   string  `json:"xlabel,omitempty"`
	YLabel   string  `json:"ylabel,omitempty"`
	XColumn  string  `json:"x_column,omitempty"`
	Scatter  bool    `json:"scatter,omitempty"`
}

// DefaultKeyer hashes the options together with the data hash.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey returns "artifact:" followed by a SHA-256 over dataHash and opts.
func (DefaultKeyer) ArtifactKey(dataHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", dataHash, opts)
}
