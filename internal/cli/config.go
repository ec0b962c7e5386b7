package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/treestruct/pkg/store"
)

// Config holds CLI settings loaded from the TOML config file.
// Every field has a usable default so a missing file is fine.
type Config struct {
	Store  StoreConfig  `toml:"store"`
	Render RenderConfig `toml:"render"`
}

// StoreConfig selects and configures the document storage backend.
type StoreConfig struct {
	// Backend is one of "file", "memory", "redis", or "mongo".
	Backend string `toml:"backend"`

	// Dir is the directory for the file backend.
	// Defaults to ~/.local/share/treestruct.
	Dir string `toml:"dir"`

	// Redis settings.
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`

	// Mongo settings.
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// RenderConfig holds render command defaults.
type RenderConfig struct {
	// Format is the default output format ("svg", "png", or "dot").
	Format string `toml:"format"`
	// RankDir is the default graphviz rank direction.
	RankDir string `toml:"rankdir"`
}

func defaultConfig() Config {
	return Config{
		Store:  StoreConfig{Backend: "file"},
		Render: RenderConfig{Format: "svg", RankDir: "TB"},
	}
}

// loadConfig reads the config file, falling back to defaults when the file
// does not exist. An explicit --config path that cannot be read is an error;
// a missing default path is not.
func loadConfig(ctx context.Context) (Config, error) {
	cfg := defaultConfig()

	path := configPathFromContext(ctx)
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	loggerFromContext(ctx).Debug("loaded config", "path", path)
	return cfg, nil
}

// configDir returns the config directory using the XDG standard
// (~/.config/treestruct/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// dataDir returns the data directory for the file store backend
// (~/.local/share/treestruct/).
func dataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// openStore creates the storage backend selected by the config.
func openStore(ctx context.Context, cfg Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "", "file":
		dir := cfg.Store.Dir
		if dir == "" {
			var err error
			dir, err = dataDir()
			if err != nil {
				return nil, fmt.Errorf("resolve data dir: %w", err)
			}
		}
		return store.NewFileStore(dir)
	case "memory":
		return store.NewMemoryStore(), nil
	case "redis":
		return store.NewRedisStore(ctx, store.RedisConfig{
			Addr:     cfg.Store.RedisAddr,
			Password: cfg.Store.RedisPassword,
			DB:       cfg.Store.RedisDB,
		})
	case "mongo":
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:        cfg.Store.MongoURI,
			Database:   cfg.Store.MongoDatabase,
			Collection: cfg.Store.MongoCollection,
		})
	default:
		return nil, fmt.Errorf("unknown store backend: %s (must be 'file', 'memory', 'redis', or 'mongo')", cfg.Store.Backend)
	}
}
