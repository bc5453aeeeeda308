package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, appName), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, appName, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := LoadConfig()
	if cfg.Output != "." {
		t.Errorf("default output = %q, want %q", cfg.Output, ".")
	}
	if cfg.Catalog.Backend != "file" {
		t.Errorf("default catalog backend = %q, want file", cfg.Catalog.Backend)
	}
}

func TestLoadConfigFile(t *testing.T) {
	writeConfig(t, `
output = "/data/networks"
workers = 24
status_addr = "127.0.0.1:9100"

[catalog]
backend = "redis"
addr = "redis.lab:6379"
`)

	cfg := LoadConfig()
	if cfg.Output != "/data/networks" {
		t.Errorf("output = %q", cfg.Output)
	}
	if cfg.Workers != 24 {
		t.Errorf("workers = %d", cfg.Workers)
	}
	if cfg.StatusAddr != "127.0.0.1:9100" {
		t.Errorf("status_addr = %q", cfg.StatusAddr)
	}
	if cfg.Catalog.Backend != "redis" || cfg.Catalog.Addr != "redis.lab:6379" {
		t.Errorf("catalog = %+v", cfg.Catalog)
	}
}

func TestLoadConfigMalformedFallsBack(t *testing.T) {
	writeConfig(t, "not toml [[[")

	cfg := LoadConfig()
	if cfg.Catalog.Backend != "file" {
		t.Errorf("malformed config should fall back to defaults, got %+v", cfg)
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{"search": false, "render": false, "runs": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("root command is missing %q", name)
		}
	}
}
