package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/graftlabs/graft/pkg/store"
)

// Config holds the persistent CLI configuration, loaded from a TOML file.
// All fields have sensible defaults so a missing config file is not an error.
type Config struct {
	Store StoreConfig `toml:"store"`
	Serve ServeConfig `toml:"serve"`
}

// StoreConfig selects and configures the snapshot backend.
type StoreConfig struct {
	// Backend is one of "file", "redis", "mongo", or "null".
	Backend string      `toml:"backend"`
	Path    string      `toml:"path"` // file backend root directory
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// RedisConfig configures the redis snapshot backend.
type RedisConfig struct {
	Addr string `toml:"addr"`
}

// MongoConfig configures the mongodb snapshot backend.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// ServeConfig configures the HTTP API server.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// defaultConfig returns the configuration used when no config file exists.
func defaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Backend: "file",
			Path:    defaultStorePath(),
			Redis:   RedisConfig{Addr: "localhost:6379"},
			Mongo:   MongoConfig{URI: "mongodb://localhost:27017", Database: "graft"},
		},
		Serve: ServeConfig{Addr: ":8080"},
	}
}

// defaultConfigPath returns the platform config file location,
// e.g. ~/.config/graft/config.toml on Linux.
func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(dir, "graft", "config.toml"), nil
}

// defaultStorePath returns the default root directory for the file backend.
func defaultStorePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".graft", "snapshots")
	}
	return filepath.Join(dir, "graft", "snapshots")
}

// loadConfig reads the TOML config at path. An empty path means the default
// location; a missing file yields defaultConfig. Fields absent from the file
// keep their default values.
func loadConfig(path string) (Config, error) {
	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return defaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := defaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// openStore creates the snapshot store selected by cfg.
// The caller is responsible for closing the returned store.
func openStore(ctx context.Context, cfg Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "", "file":
		path := cfg.Store.Path
		if path == "" {
			path = defaultStorePath()
		}
		return store.NewFileStore(path)
	case "redis":
		return store.NewRedisStore(ctx, cfg.Store.Redis.Addr)
	case "mongo":
		return store.NewMongoStore(ctx, cfg.Store.Mongo.URI, cfg.Store.Mongo.Database)
	case "null":
		return store.NewNullStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (expected file, redis, mongo, or null)", cfg.Store.Backend)
	}
}
