// Package pipeline composes the identicon stages into a single runnable
// unit shared by the CLI and the HTTP service.
//
// # Architecture
//
// A run consists of three stages:
//
//  1. Derive: hash the input and compute the color, grid, and pixel map
//  2. Render: encode the geometric model as PNG or SVG bytes
//  3. Persist: hand the bytes to the configured store
//
// Derivation is a pure in-memory computation and never cached. Rendered
// artifacts are cached keyed by the input digest plus render options, so
// repeated requests skip the encode. Persistence is the only stage that
// can fail under normal operation; its errors surface to the caller
// unchanged.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, store, logger)
//	opts := pipeline.Options{Input: "banana", Format: "png"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", result.Path)
//
// Run without persisting (e.g. to serve bytes over HTTP):
//
//	result, err := runner.Generate(ctx, opts)
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/identicon/pkg/cache"
	"github.com/matzehuels/identicon/pkg/errors"
	"github.com/matzehuels/identicon/pkg/identicon"
	"github.com/matzehuels/identicon/pkg/render"
)

// DefaultFormat is the output format used when none is requested.
const DefaultFormat = render.FormatPNG

// MaxSize bounds requested output sizes to keep resize work and artifact
// payloads reasonable.
const MaxSize = 2000

// Options contains all configuration for one pipeline run.
type Options struct {
	// Input is the string the identicon is derived from. The empty
	// string is a valid input: the digest is fixed-length regardless.
	Input string `json:"input"`

	// Format selects the output encoding ("png" or "svg").
	Format string `json:"format,omitempty"`

	// Size is the output edge length in pixels; zero means the native
	// 250-pixel canvas.
	Size int `json:"size,omitempty"`

	// Refresh bypasses the artifact cache and re-renders.
	Refresh bool `json:"refresh,omitempty"`

	// Logger overrides the runner's logger for this run; nil keeps the
	// runner's own. Not part of the cache key.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if err := render.ValidateFormat(o.Format); err != nil {
		return err
	}

	if o.Size < 0 {
		return errors.New(errors.ErrCodeInvalidSize, "invalid size: %d", o.Size)
	}
	if o.Size == 0 {
		o.Size = identicon.CanvasSize
	}
	if o.Size > MaxSize {
		return errors.New(errors.ErrCodeInvalidSize, "size %d exceeds maximum %d", o.Size, MaxSize)
	}

	o.validated = true
	return nil
}

// ArtifactKeyOpts returns cache key options for the rendered artifact.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: o.Format,
		Size:   o.Size,
	}
}

// RenderOptions returns the renderer options for this run.
func (o *Options) RenderOptions() render.Options {
	return render.Options{
		Format: o.Format,
		Size:   o.Size,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Image is the derived descriptor (digest, color, grid, pixel map).
	Image identicon.Image

	// Data holds the encoded artifact bytes.
	Data []byte

	// Path is where the artifact was persisted; empty when the run did
	// not persist.
	Path string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	CellCount   int // surviving grid cells
	DeriveTime  time.Duration
	RenderTime  time.Duration
	PersistTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether the artifact came from cache
}
