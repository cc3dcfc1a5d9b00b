package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.UI.MaxResults != 32 {
		t.Errorf("default max_results = %d, want 32", cfg.UI.MaxResults)
	}
	if cfg.Server.MaxLimit != 64 || cfg.Server.MaxQueryLen != 120 {
		t.Errorf("unexpected server defaults: %+v", cfg.Server)
	}
	if cfg.Source.Path != "" || cfg.Source.URL != "" {
		t.Errorf("source must default to the live socket: %+v", cfg.Source)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[ui]
max_results = 8
highlight_color = "201"

[server]
max_limit = 16

[source]
path = "/etc/i3/config"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.UI.MaxResults != 8 || cfg.UI.HighlightColor != "201" {
		t.Errorf("ui section not applied: %+v", cfg.UI)
	}
	if cfg.Server.MaxLimit != 16 {
		t.Errorf("server section not applied: %+v", cfg.Server)
	}
	// untouched keys keep their defaults
	if cfg.Server.MaxQueryLen != 120 {
		t.Errorf("missing key lost its default: %+v", cfg.Server)
	}
	if cfg.Source.Path != "/etc/i3/config" {
		t.Errorf("source section not applied: %+v", cfg.Source)
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// max_limit has the wrong type; the [ui] section should still survive
	content := `[ui]
max_results = 12

[server]
max_limit = "lots"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig must recover, got error: %v", err)
	}
	if cfg.UI.MaxResults != 12 {
		t.Errorf("recoverable section lost: %+v", cfg.UI)
	}
	if cfg.Server.MaxLimit != 64 {
		t.Errorf("broken key must fall back to default: %+v", cfg.Server)
	}
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig returned error: %v", err)
	}
	if cfg.UI.MaxResults != DefaultConfig().UI.MaxResults {
		t.Errorf("fresh config must carry defaults: %+v", cfg.UI)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config file was not created: %v", err)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("reloading created file: %v", err)
	}
	if reloaded.Server.MaxLimit != cfg.Server.MaxLimit {
		t.Errorf("created file does not round-trip: %+v", reloaded.Server)
	}
}
