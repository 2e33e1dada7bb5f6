package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Store.Backend != "file" {
		t.Errorf("backend = %q, want %q", cfg.Store.Backend, "file")
	}
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("serve addr = %q, want %q", cfg.Serve.Addr, ":8080")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[store]
backend = "redis"

[store.redis]
addr = "redis.internal:6380"

[serve]
addr = ":9999"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Store.Backend != "redis" {
		t.Errorf("backend = %q, want %q", cfg.Store.Backend, "redis")
	}
	if cfg.Store.Redis.Addr != "redis.internal:6380" {
		t.Errorf("redis addr = %q", cfg.Store.Redis.Addr)
	}
	if cfg.Serve.Addr != ":9999" {
		t.Errorf("serve addr = %q", cfg.Serve.Addr)
	}
	// Fields absent from the file keep defaults.
	if cfg.Store.Mongo.Database != "graft" {
		t.Errorf("mongo database = %q, want default", cfg.Store.Mongo.Database)
	}
}

func TestLoadConfigRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("store = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestOpenStoreBackends(t *testing.T) {
	ctx := context.Background()

	cfg := defaultConfig()
	cfg.Store.Backend = "null"
	st, err := openStore(ctx, cfg)
	if err != nil {
		t.Fatalf("null backend: %v", err)
	}
	st.Close()

	cfg.Store.Backend = "file"
	cfg.Store.Path = t.TempDir()
	st, err = openStore(ctx, cfg)
	if err != nil {
		t.Fatalf("file backend: %v", err)
	}
	st.Close()

	cfg.Store.Backend = "bogus"
	if _, err := openStore(ctx, cfg); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
