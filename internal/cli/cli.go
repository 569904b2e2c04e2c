package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/standings/pkg/buildinfo"
	"github.com/matzehuels/standings/pkg/builder"
	"github.com/matzehuels/standings/pkg/cache"
	"github.com/matzehuels/standings/pkg/config"
	"github.com/matzehuels/standings/pkg/integrations/mlb"
	"github.com/matzehuels/standings/pkg/render"
	"github.com/matzehuels/standings/pkg/sink"
	"github.com/matzehuels/standings/pkg/standings"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "standings"

	// retryDelay is the first backoff between sink save attempts.
	retryDelay = time.Second
)

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

	flags globalFlags
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	fixtures   bool
	season     int
	noCache    bool
	cachePath  string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Standings renders baseball division standings as display images",
		Long:         `Standings fetches the current MLB standings once a day and renders one 1920x1080 JPEG per division, ready for a wall display or signage player.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVarP(&c.flags.configPath, "config", "c", "", "TOML config file")
	pf.BoolVar(&c.flags.fixtures, "fixtures", false, "use embedded sample standings instead of the live feed")
	pf.IntVar(&c.flags.season, "season", 0, "season year (default: current year)")
	pf.BoolVar(&c.flags.noCache, "no-cache", false, "bypass the standings cache")
	pf.StringVar(&c.flags.cachePath, "cache-path", "", "cache file location")

	// Register all subcommands
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig layers the config file, the environment and the flags that were
// set on cmd, then validates the result.
func (c *CLI) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(c.flags.configPath)
	if err != nil {
		return cfg, err
	}
	c.applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Verbose {
		c.SetLogLevel(LogDebug)
	}
	c.Logger.Debug("config loaded", "file", c.flags.configPath, "fixtures", cfg.UseFixtureData, "sink", cfg.Sink.Kind)
	return cfg, nil
}

func (c *CLI) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("fixtures") {
		cfg.UseFixtureData = c.flags.fixtures
	}
	if f.Changed("season") {
		cfg.Season = c.flags.season
	}
	if f.Changed("no-cache") {
		cfg.NoCache = c.flags.noCache
	}
	if f.Changed("cache-path") {
		cfg.CachePath = c.flags.cachePath
	}
	if v, err := f.GetBool("verbose"); err == nil && v {
		cfg.Verbose = true
	}
}

// =============================================================================
// Component Factory
// =============================================================================

func (c *CLI) newCache(cfg config.Config) cache.Cache {
	if cfg.NoCache {
		return cache.NewNullCache()
	}
	return cache.NewStore(cfg.CachePath, cache.WithLogger(c.Logger), cache.WithVerbose(cfg.Verbose))
}

func newSource(cfg config.Config) standings.Source {
	if cfg.UseFixtureData {
		return mlb.Fixtures{}
	}
	return mlb.NewClient(cfg.BaseURL, cfg.UserAgent, cfg.Timeout)
}

// newBuilder wires source, cache and compositor. s may be nil for commands
// that never save.
func (c *CLI) newBuilder(cfg config.Config, s sink.Sink, opts ...builder.Option) (*builder.Builder, error) {
	comp, err := render.NewCompositor(render.WithLogger(c.Logger))
	if err != nil {
		return nil, err
	}
	nopts := []standings.Option{standings.WithLogger(c.Logger)}
	if cfg.UseFixtureData {
		nopts = append(nopts, standings.WithCacheNamespace("fixtures"))
	}
	n := standings.NewNormalizer(newSource(cfg), c.newCache(cfg), nopts...)
	opts = append([]builder.Option{builder.WithLogger(c.Logger)}, opts...)
	return builder.New(n, comp, s, opts...), nil
}

// openSink opens the configured sink with retries for transient failures.
func openSink(ctx context.Context, cfg config.Config) (sink.Sink, error) {
	s, err := sink.Open(ctx, cfg.Sink)
	if err != nil {
		return nil, err
	}
	return sink.Retrying(s, cfg.Retries, retryDelay), nil
}
