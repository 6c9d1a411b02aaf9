package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ChicagoDave/houseplanner/pkg/cache"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("addr = %q, want :3000", cfg.Addr)
	}
	if cfg.CacheBackend != cache.BackendNone {
		t.Errorf("cache = %q, want none", cfg.CacheBackend)
	}
	if cfg.CacheTTL != 24*time.Hour {
		t.Errorf("ttl = %s, want 24h", cfg.CacheTTL)
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Errorf("max body = %d, want 1 MiB", cfg.MaxBodyBytes)
	}
	if cfg.SQLitePath != "houseplanner.db" || cfg.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("backend paths = %q, %q", cfg.SQLitePath, cfg.RedisURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HOUSEPLANNER_ADDR", "127.0.0.1:8080")
	t.Setenv("HOUSEPLANNER_CACHE", "sqlite")
	t.Setenv("HOUSEPLANNER_SQLITE_PATH", "/tmp/models.db")
	t.Setenv("HOUSEPLANNER_CACHE_TTL", "90m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != "127.0.0.1:8080" || cfg.CacheTTL != 90*time.Minute {
		t.Errorf("cfg = %+v", cfg)
	}
	cc := cfg.Cache()
	if cc.Backend != cache.BackendSQLite || cc.SQLitePath != "/tmp/models.db" {
		t.Errorf("cache config = %+v", cc)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("HOUSEPLANNER_CACHE", "memcached")
	if _, err := Load(); !errors.Is(err, cache.ErrUnknownBackend) {
		t.Fatalf("err = %v, want ErrUnknownBackend", err)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"HOUSEPLANNER_CACHE_TTL", "soon"},
		{"HOUSEPLANNER_CACHE_TTL", "-1h"},
		{"HOUSEPLANNER_MAX_BODY_BYTES", "0"},
		{"HOUSEPLANNER_MAX_BODY_BYTES", "lots"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg Config
	t.Setenv("HOUSEPLANNER_MAX_BODY_BYTES", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
