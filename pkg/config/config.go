// Package config loads optional application configuration from a TOML
// file. Every field has a sensible default, so a missing file is not an
// error and command-line flags always take precedence over file values.
//
// The default location is ~/.config/identicon/config.toml:
//
//	output_dir = "~/identicons"
//	format = "png"
//
//	[cache]
//	backend = "file"        # file, redis, none
//	redis_addr = "localhost:6379"
//
//	[store]
//	backend = "file"        # file, mongo
//	mongo_uri = "mongodb://localhost:27017"
//
//	[server]
//	listen = ":8080"
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/identicon/pkg/errors"
)

// Cache backend names.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendNone  = "none"
)

// Store backend names.
const (
	StoreBackendFile  = "file"
	StoreBackendMongo = "mongo"
)

// Config is the application configuration.
type Config struct {
	// OutputDir is where generated artifacts are written. Empty means
	// the current working directory.
	OutputDir string `toml:"output_dir"`

	// Format is the default output format when no flag is given.
	Format string `toml:"format"`

	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects and configures the artifact cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis", or "none".
	Backend string `toml:"backend"`

	// Dir overrides the file backend's directory.
	Dir string `toml:"dir"`

	// RedisAddr is the redis backend's address.
	RedisAddr string `toml:"redis_addr"`
}

// StoreConfig selects and configures the artifact store backend.
type StoreConfig struct {
	// Backend is one of "file" or "mongo".
	Backend string `toml:"backend"`

	// MongoURI, MongoDatabase, and MongoCollection configure the mongo
	// backend.
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	// Listen is the address the serve command binds to.
	Listen string `toml:"listen"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Format: "png",
		Cache: CacheConfig{
			Backend:   CacheBackendFile,
			RedisAddr: "localhost:6379",
		},
		Store: StoreConfig{
			Backend:         StoreBackendFile,
			MongoURI:        "mongodb://localhost:27017",
			MongoDatabase:   "identicon",
			MongoCollection: "artifacts",
		},
		Server: ServerConfig{
			Listen: ":8080",
		},
	}
}

// Load reads the TOML file at path on top of the defaults. A missing
// file returns the defaults without error; a malformed file or unknown
// backend name is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeIOFailure, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks backend names.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case CacheBackendFile, CacheBackendRedis, CacheBackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid cache backend: %q (must be one of: file, redis, none)", c.Cache.Backend)
	}
	switch c.Store.Backend {
	case StoreBackendFile, StoreBackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid store backend: %q (must be one of: file, mongo)", c.Store.Backend)
	}
	return nil
}
