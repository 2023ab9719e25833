package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output != "settlements.xlsx" {
		t.Errorf("Output = %q, want %q", cfg.Output, "settlements.xlsx")
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if !cfg.Server.Metrics {
		t.Error("Server.Metrics should be true by default")
	}
	if cfg.DB.Path == "" {
		t.Error("DB.Path should have a default")
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "0.0.0.0", Port: 9090}
	if got := s.Addr(); got != "0.0.0.0:9090" {
		t.Errorf("Addr() = %q, want %q", got, "0.0.0.0:9090")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
people = ["Alice", "Bob"]
output = "trip.xlsx"

[server]
host = "0.0.0.0"
port = 9999
metrics = false

[db]
path = "/tmp/test-rosters.db"
`
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.People) != 2 || cfg.People[0] != "Alice" {
		t.Errorf("People = %v, want [Alice Bob]", cfg.People)
	}
	if cfg.Output != "trip.xlsx" {
		t.Errorf("Output = %q, want %q", cfg.Output, "trip.xlsx")
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Server.Metrics {
		t.Error("Server.Metrics should be false from file")
	}
	if cfg.DB.Path != "/tmp/test-rosters.db" {
		t.Errorf("DB.Path = %q, want /tmp/test-rosters.db", cfg.DB.Path)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SETTLE_DB_PATH", "/tmp/env-rosters.db")
	t.Setenv("SETTLE_PORT", "7070")
	t.Setenv("SETTLE_HOME", t.TempDir()) // avoid picking up a real user config

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DB.Path != "/tmp/env-rosters.db" {
		t.Errorf("DB.Path = %q, want env override", cfg.DB.Path)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
}
