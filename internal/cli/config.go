package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk CLI configuration, read from
// $XDG_CONFIG_HOME/sortnet/config.toml. Output, Workers and StatusAddr each
// have a search flag that overrides them; the catalog settings have no flag
// and come from the file only (--no-catalog skips recording altogether).
type Config struct {
	// Output is the default directory for found network files.
	Output string `toml:"output"`

	// Workers is the default worker count; 0 means one per CPU.
	Workers int `toml:"workers"`

	// StatusAddr, if set, serves the live progress endpoint during every
	// search (e.g. "127.0.0.1:8080").
	StatusAddr string `toml:"status_addr"`

	Catalog CatalogConfig `toml:"catalog"`
}

// CatalogConfig selects where completed runs are recorded.
type CatalogConfig struct {
	// Backend is one of "file" (default), "redis", "mongo", or "none".
	Backend string `toml:"backend"`

	// Path is the file backend's location. Empty means
	// $XDG_DATA_HOME/sortnet/runs.jsonl.
	Path string `toml:"path"`

	// Addr is the redis address or mongo URI for those backends.
	Addr string `toml:"addr"`
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() Config {
	return Config{
		Output:  ".",
		Catalog: CatalogConfig{Backend: "file"},
	}
}

// LoadConfig reads the config file, falling back to defaults when the file
// is missing or the home directory cannot be resolved. A malformed file is
// ignored rather than fatal: a broken config should not strand a search
// that is fully specified by flags.
func LoadConfig() Config {
	cfg := defaultConfig()

	dir, err := configDir()
	if err != nil {
		return cfg
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	if err != nil {
		return cfg
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return defaultConfig()
	}
	return cfg
}
