// Package cli implements the mailcanvas command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SharadhNaidu/mailcanvas/pkg/buildinfo"
	"github.com/SharadhNaidu/mailcanvas/pkg/cache"
	"github.com/SharadhNaidu/mailcanvas/pkg/config"
	"github.com/SharadhNaidu/mailcanvas/pkg/document"
	"github.com/SharadhNaidu/mailcanvas/pkg/editor"
	"github.com/SharadhNaidu/mailcanvas/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "mailcanvas"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a CLI instance with a default logger and the user's config
// layered over the defaults.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: config.Default(),
	}
	if path, err := config.DefaultPath(); err == nil {
		if cfg, err := config.Load(path); err == nil {
			c.Config = cfg
		} else {
			c.Logger.Warn("ignoring config file", "path", path, "err", err)
		}
	}
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Mailcanvas compiles free-form email designs into flow markup",
		Long:         `Mailcanvas is a block-based email document tool: it edits absolutely-positioned block documents and compiles them into strictly vertical email markup via flow approximation.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.newCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.outlineCommand())
	root.AddCommand(c.blocksCommand())
	root.AddCommand(c.resizeCommand())
	root.AddCommand(c.tokensCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Backend Factories
// =============================================================================

// newCache builds the artifact cache selected by config; --no-cache forces
// the null backend. Backend failures degrade to the null cache so exports
// still run.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache || c.Config.Cache.Backend == "none" {
		return cache.NewNullCache()
	}

	if c.Config.Cache.Backend == "redis" {
		rc, err := cache.NewRedisCache(ctx, c.Config.Cache.Addr)
		if err != nil {
			c.Logger.Warn("redis cache unavailable, caching disabled", "addr", c.Config.Cache.Addr, "err", err)
			return cache.NewNullCache()
		}
		return rc
	}

	dir := c.Config.Cache.Dir
	if dir == "" {
		var err error
		dir, err = cacheDir()
		if err != nil {
			return cache.NewNullCache()
		}
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("artifact cache disabled", "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// newEditor builds an editor over doc with the configured engine tuning.
func (c *CLI) newEditor(doc *document.Document) *editor.Editor {
	return editor.New(doc, editor.Options{
		SnapThreshold: c.Config.Editor.SnapThreshold,
		HistoryDepth:  c.Config.Editor.HistoryDepth,
		Logger:        c.Logger,
	})
}

// newStore builds the document store selected by config.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	if c.Config.Store.Backend == "mongo" {
		return store.NewMongoStore(ctx, c.Config.Store.Addr)
	}
	return store.NewFileStore(c.Config.Store.Dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/mailcanvas/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
