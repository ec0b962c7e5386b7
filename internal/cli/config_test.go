package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/treestruct/pkg/store"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Point XDG_CONFIG_HOME at an empty directory so no real config is read.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig(context.Background())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Store.Backend != "file" {
		t.Errorf("default backend = %q, want file", cfg.Store.Backend)
	}
	if cfg.Render.Format != "svg" {
		t.Errorf("default format = %q, want svg", cfg.Render.Format)
	}
	if cfg.Render.RankDir != "TB" {
		t.Errorf("default rankdir = %q, want TB", cfg.Render.RankDir)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[store]
backend = "redis"
redis_addr = "localhost:6380"
redis_db = 2

[render]
format = "png"
rankdir = "LR"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(withConfigPath(context.Background(), path))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Store.Backend != "redis" {
		t.Errorf("backend = %q, want redis", cfg.Store.Backend)
	}
	if cfg.Store.RedisAddr != "localhost:6380" {
		t.Errorf("redis_addr = %q, want localhost:6380", cfg.Store.RedisAddr)
	}
	if cfg.Store.RedisDB != 2 {
		t.Errorf("redis_db = %d, want 2", cfg.Store.RedisDB)
	}
	if cfg.Render.Format != "png" {
		t.Errorf("format = %q, want png", cfg.Render.Format)
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	ctx := withConfigPath(context.Background(), filepath.Join(t.TempDir(), "nope.toml"))
	if _, err := loadConfig(ctx); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Store.Backend = "memory"
		st, err := openStore(ctx, cfg)
		if err != nil {
			t.Fatalf("openStore: %v", err)
		}
		defer st.Close()
		if _, ok := st.(*store.MemoryStore); !ok {
			t.Errorf("got %T, want *store.MemoryStore", st)
		}
	})

	t.Run("file", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Store.Dir = t.TempDir()
		st, err := openStore(ctx, cfg)
		if err != nil {
			t.Fatalf("openStore: %v", err)
		}
		defer st.Close()
		if _, ok := st.(*store.FileStore); !ok {
			t.Errorf("got %T, want *store.FileStore", st)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Store.Backend = "cassandra"
		if _, err := openStore(ctx, cfg); err == nil {
			t.Fatal("expected error for unknown backend")
		}
	})
}

func TestConfigDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	dir, err := configDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/tmp/xdg-test/treestruct" {
		t.Errorf("configDir = %q, want /tmp/xdg-test/treestruct", dir)
	}
}
