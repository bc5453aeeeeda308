// Package cli implements the sortnet command-line interface.
//
// This package provides commands for running the exhaustive sorting network
// search, rendering found networks as diagrams, and inspecting the catalog
// of past runs. The CLI is built using cobra and logs through the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - search: run the exhaustive search for a width and depth
//   - render: draw a saved network file as DOT, SVG, or PNG
//   - runs: list catalog records of completed searches
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The CLI holds
// one logger and hands it to the search as an argument, so the search core
// stays frontend-free.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/depthlab/sortnet/pkg/buildinfo"
	"github.com/depthlab/sortnet/pkg/catalog"
)

// appName is the application name used for directories and display.
const appName = "sortnet"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and the on-disk
// configuration (defaults if no config file exists).
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: LoadConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Exhaustive search for depth-optimal sorting networks",
		Long: `sortnet searches exhaustively for n-input sorting networks of a given
depth, enumerating comparator networks up to first and second normal form
symmetries and verifying them with a Gray-code-accelerated zero-one test.
Every sorting network found is written to a text file; runs are summarized
in log.txt and, optionally, a catalog.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.searchCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.runsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCatalog opens the catalog backend named by the configuration.
func (c *CLI) newCatalog(cmd *cobra.Command) (catalog.Store, error) {
	ctx := cmd.Context()
	switch c.Config.Catalog.Backend {
	case "", "none":
		return catalog.NewNullStore(), nil
	case "file":
		path := c.Config.Catalog.Path
		if path == "" {
			dir, err := dataDir()
			if err != nil {
				return nil, err
			}
			path = filepath.Join(dir, "runs.jsonl")
		}
		return catalog.NewFileStore(path)
	case "redis":
		return catalog.NewRedisStore(ctx, catalog.RedisConfig{Addr: c.Config.Catalog.Addr})
	case "mongo":
		return catalog.NewMongoStore(ctx, catalog.MongoConfig{URI: c.Config.Catalog.Addr})
	default:
		return nil, &UnknownBackendError{Backend: c.Config.Catalog.Backend}
	}
}

// UnknownBackendError reports an unrecognized catalog backend name.
type UnknownBackendError struct {
	Backend string
}

func (e *UnknownBackendError) Error() string {
	return "unknown catalog backend " + e.Backend + " (want file, redis, mongo, or none)"
}

// configDir returns the configuration directory using the XDG standard
// (~/.config/sortnet/).
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

// dataDir returns the data directory using the XDG standard
// (~/.local/share/sortnet/).
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
