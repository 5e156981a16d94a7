package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/initstate/internal/config"
	"github.com/matzehuels/initstate/pkg/buildinfo"
	"github.com/matzehuels/initstate/pkg/cache"
	"github.com/matzehuels/initstate/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "initstate"

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

	// Err receives status lines, tables and the spinner. Command output
	// (diagrams, merged files) goes to the command's stdout instead.
	Err io.Writer

	cfgFile string
	cfg     *config.Config
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Err:    w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "initstate lays out and links panel configurations",
		Long: `initstate works with initial states of an interactive single-cell viewer:
ordered lists of panels placed in a 12-column grid, some of them driving the
selection of others.

It packs panels into a tile preview, draws the selection-link network and
merges several initial states into one.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			c.cfg = cfg
			if cfg.Verbose {
				c.SetLogLevel(LogDebug)
			}
			if cfg.File != "" {
				c.Logger.Debug("loaded config", "file", cfg.File)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "config file (default: ./initstate.yaml)")
	pf.BoolP("verbose", "v", false, "enable verbose logging")
	pf.Bool("no-cache", false, "disable the render cache")
	pf.String("cache-dir", "", "render cache directory (default: $XDG_CACHE_HOME/initstate)")

	root.AddCommand(c.tilesCommand())
	root.AddCommand(c.networkCommand())
	root.AddCommand(c.mergeCommand())
	root.AddCommand(c.typesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// config returns the loaded configuration, or the defaults when the root
// pre-run hook has not run.
func (c *CLI) config() *config.Config {
	if c.cfg == nil {
		c.cfg = config.Default()
	}
	return c.cfg
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Cache keys are scoped by
// build version. Close the runner's cache when done.
func (c *CLI) newRunner() (*pipeline.Runner, error) {
	ch, err := newCache(c.config())
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ch, c.newKeyer(), c.Logger), nil
}

// newKeyer scopes cache keys to the build, so an upgrade never serves
// diagrams drawn by an older renderer.
func (c *CLI) newKeyer() cache.Keyer {
	return cache.NewScopedKeyer(nil, buildinfo.Version+":")
}

func newCache(cfg *config.Config) (cache.Cache, error) {
	if cfg.Cache.Disabled {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir(cfg)
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// pipelineOptions builds runner options for files from the configuration
// and the shared input flags.
func (c *CLI) pipelineOptions(files []string, in inputFlags) pipeline.Options {
	cfg := c.config()
	opts := pipeline.DefaultOptions()
	opts.Files = files
	opts.Deduplicate = cfg.Deduplicate
	opts.Registry = cfg.Registry()
	opts.ExtraTypes = in.allowTypes
	opts.Format = cfg.Format()
	opts.Detailed = cfg.Render.Detailed
	opts.InvertRows = cfg.Render.InvertRows
	opts.Legend = cfg.Render.Legend
	opts.CacheTTL = cfg.Cache.TTL
	return opts
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, else the XDG standard
// location (~/.cache/initstate/).
func cacheDir(cfg *config.Config) (string, error) {
	if cfg != nil && cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
