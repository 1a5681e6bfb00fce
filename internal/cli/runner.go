package cli

import (
	"context"
	"fmt"

	"github.com/matzehuels/identicon/pkg/cache"
	"github.com/matzehuels/identicon/pkg/config"
	"github.com/matzehuels/identicon/pkg/pipeline"
	"github.com/matzehuels/identicon/pkg/store"
)

// runnerOpts controls which backends newRunner wires up.
type runnerOpts struct {
	outputDir string // overrides the configured output directory
	noCache   bool   // disable the artifact cache entirely
	noStore   bool   // build a runner without a persister (serve, describe)
	scope     string // cache key namespace prefix ("" for none)
}

// newRunner builds a pipeline runner from the loaded configuration,
// selecting the cache and store backends it names.
func newRunner(ctx context.Context, o runnerOpts) (*pipeline.Runner, error) {
	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)

	c, err := buildCache(ctx, cfg, o.noCache)
	if err != nil {
		return nil, fmt.Errorf("cache backend: %w", err)
	}

	var keyer cache.Keyer
	if o.scope != "" {
		keyer = cache.NewScopedKeyer(nil, o.scope)
	}

	var st store.Store
	if !o.noStore {
		st, err = buildStore(ctx, cfg, o.outputDir)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("store backend: %w", err)
		}
	}

	return pipeline.NewRunner(c, keyer, st, logger), nil
}

// buildCache selects the cache backend named by the configuration.
func buildCache(ctx context.Context, cfg config.Config, disabled bool) (cache.Cache, error) {
	if disabled || cfg.Cache.Backend == config.CacheBackendNone {
		return cache.NewNullCache(), nil
	}
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		return cache.NewRedisCache(ctx, cfg.Cache.RedisAddr)
	default:
		dir := cfg.Cache.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return nil, err
			}
		}
		return cache.NewFileCache(dir)
	}
}

// buildStore selects the store backend named by the configuration.
func buildStore(ctx context.Context, cfg config.Config, outputDir string) (store.Store, error) {
	if cfg.Store.Backend == config.StoreBackendMongo {
		return store.NewMongoStore(ctx, cfg.Store.MongoURI, cfg.Store.MongoDatabase, cfg.Store.MongoCollection)
	}
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	return store.NewFileStore(outputDir)
}
