package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/identicon/pkg/cache"
	"github.com/matzehuels/identicon/pkg/identicon"
	"github.com/matzehuels/identicon/pkg/observability"
	"github.com/matzehuels/identicon/pkg/render"
	"github.com/matzehuels/identicon/pkg/store"
)

// Runner encapsulates pipeline execution with caching. Both the CLI and
// the HTTP service use it to avoid duplicating caching logic.
//
// The Runner is stateless except for its collaborators - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Store  store.Store
	Digest identicon.DigestFunc
	Logger *log.Logger
}

// NewRunner creates a runner with the given collaborators.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
// If st is nil, Execute persists to the current working directory.
func NewRunner(c cache.Cache, keyer cache.Keyer, st store.Store, logger *log.Logger) *Runner {
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
		Store:  st,
		Digest: identicon.MD5,
		Logger: logger,
	}
}

// Execute runs the complete derive → render → persist pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, err
	}

	st := r.Store
	if st == nil {
		fs, err := store.NewFileStore("")
		if err != nil {
			return nil, err
		}
		st = fs
	}

	name := store.Filename(opts.Input, opts.Format)
	persistStart := time.Now()
	observability.Pipeline().OnPersistStart(ctx, name)
	path, err := st.Save(ctx, name, result.Data)
	result.Stats.PersistTime = time.Since(persistStart)
	observability.Pipeline().OnPersistComplete(ctx, name, result.Stats.PersistTime, err)
	if err != nil {
		return nil, fmt.Errorf("persist: %w", err)
	}
	result.Path = path

	r.logger(opts).Info("persisted artifact",
		"path", path,
		"bytes", len(result.Data),
		"duration", result.Stats.PersistTime)

	return result, nil
}

// Generate runs derive → render without persisting. The HTTP service
// uses this to return artifact bytes directly.
func (r *Runner) Generate(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(opts)

	result := &Result{}

	// Stage 1: Derive
	deriveStart := time.Now()
	observability.Pipeline().OnDeriveStart(ctx, opts.Input)
	img, err := r.Derive(opts)
	result.Stats.DeriveTime = time.Since(deriveStart)
	observability.Pipeline().OnDeriveComplete(ctx, opts.Input, len(img.Grid), result.Stats.DeriveTime, err)
	if err != nil {
		return nil, fmt.Errorf("derive: %w", err)
	}
	result.Image = img
	result.Stats.CellCount = len(img.Grid)

	logger.Info("derived descriptor",
		"color", fmt.Sprintf("#%02x%02x%02x", img.Color.R, img.Color.G, img.Color.B),
		"cells", len(img.Grid),
		"duration", result.Stats.DeriveTime)

	// Stage 2: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Format, opts.Size)
	data, renderHit, err := r.RenderWithCacheInfo(ctx, img, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Format, len(data), result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Data = data
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered artifact",
		"format", opts.Format,
		"bytes", len(data),
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Derive computes the identicon descriptor for the input. Derivation is
// a pure function of the input bytes, so it is never cached.
func (r *Runner) Derive(opts Options) (identicon.Image, error) {
	digest := r.Digest
	if digest == nil {
		digest = identicon.MD5
	}
	return identicon.DeriveWith(digest, opts.Input)
}

// RenderWithCacheInfo encodes the descriptor with caching and returns
// cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, img identicon.Image, opts Options) ([]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	cacheKey := r.Keyer.ArtifactKey(cache.Hash(img.Digest[:]), opts.ArtifactKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return data, true, nil // Cache hit
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	data, err := render.Render(img, opts.RenderOptions())
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return data, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, img identicon.Image, opts Options) ([]byte, error) {
	data, _, err := r.RenderWithCacheInfo(ctx, img, opts)
	return data, err
}

// Close releases resources held by the runner (cache and store).
func (r *Runner) Close() error {
	var firstErr error
	if r.Cache != nil {
		if err := r.Cache.Close(); err != nil {
			firstErr = err
		}
	}
	if r.Store != nil {
		if err := r.Store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// logger returns the per-run override when the options carry one and the
// runner's own logger otherwise.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
