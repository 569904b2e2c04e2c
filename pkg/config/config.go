// Package config holds the runtime configuration passed to every component
// at construction.
//
// # Sources
//
// Values are layered, later sources winning:
//
//  1. [Default]
//  2. an optional TOML file
//  3. environment variables prefixed with STANDINGS_
//  4. command-line flags (applied by the CLI)
//
// Call [Config.Validate] after the last layer is applied.
//
// # Example File
//
//	use_fixture_data = false
//	verbose = true
//	season = 2026
//	cache_path = "/var/cache/standings/cache.json"
//	timeout = "20s"
//
//	[sink]
//	kind = "s3"
//
//	[sink.s3]
//	bucket = "displays"
//	prefix = "standings"
//
// The same settings from the environment:
//
//	STANDINGS_VERBOSE=true STANDINGS_SINK_KIND=s3 STANDINGS_SINK_S3_BUCKET=displays
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/matzehuels/standings/pkg/errors"
	"github.com/matzehuels/standings/pkg/integrations"
	"github.com/matzehuels/standings/pkg/integrations/mlb"
	"github.com/matzehuels/standings/pkg/sink"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "STANDINGS_"

// CacheFileName is the cache file name inside the default cache directory.
const CacheFileName = "standings-cache.json"

// Config is the full runtime configuration.
type Config struct {
	// UseFixtureData serves embedded sample standings instead of calling the feed.
	UseFixtureData bool `toml:"use_fixture_data" env:"USE_FIXTURE_DATA"`

	// Verbose enables debug logging, including per-entry cache tracing.
	Verbose bool `toml:"verbose" env:"VERBOSE"`

	// Season to fetch; 0 means the current year.
	Season int `toml:"season" env:"SEASON"`

	CachePath string `toml:"cache_path" env:"CACHE_PATH"`
	NoCache   bool   `toml:"no_cache" env:"NO_CACHE"`

	BaseURL   string        `toml:"base_url" env:"BASE_URL"`
	UserAgent string        `toml:"user_agent" env:"USER_AGENT"`
	Timeout   time.Duration `toml:"timeout" env:"TIMEOUT"`

	// Retries is the number of attempts for a network sink save.
	Retries int `toml:"retries" env:"RETRIES"`

	Sink  sink.Config `toml:"sink" envPrefix:"SINK_"`
	Serve ServeConfig `toml:"serve" envPrefix:"SERVE_"`
}

// ServeConfig configures the HTTP image server.
type ServeConfig struct {
	Addr string `toml:"addr" env:"ADDR"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CachePath: DefaultCachePath(),
		BaseURL:   mlb.DefaultBaseURL,
		UserAgent: mlb.DefaultUserAgent,
		Timeout:   integrations.DefaultTimeout,
		Retries:   3,
		Sink: sink.Config{
			Kind: sink.KindDir,
			Dir:  sink.DefaultDir,
		},
		Serve: ServeConfig{Addr: ":8080"},
	}
}

// DefaultCachePath returns the cache file location under the user cache
// directory, or a file in the working directory if there is none.
func DefaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return CacheFileName
	}
	return filepath.Join(dir, "standings", CacheFileName)
}

// Load layers the TOML file at path (if non-empty) and the process
// environment over [Default]. The result is not validated.
func Load(path string) (Config, error) {
	return load(path, nil)
}

// LoadWithEnv is like [Load] but reads variables from environ instead of the
// process environment.
func LoadWithEnv(path string, environ map[string]string) (Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	return load(path, environ)
}

func load(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			if os.IsNotExist(err) {
				return Config{}, errors.Wrap(errors.ErrCodeNotFound, err, "config file %s", path)
			}
			return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "config file %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return Config{}, errors.New(errors.ErrCodeInvalidInput, "config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "environment")
	}
	return cfg, nil
}

// Validate checks the configuration for values no component can work with.
func (c Config) Validate() error {
	if c.Season != 0 {
		if err := errors.ValidateSeason(c.Season); err != nil {
			return err
		}
	}
	if !c.UseFixtureData {
		if err := errors.ValidateURL(c.BaseURL); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "base_url")
		}
	}
	if c.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "timeout must not be negative")
	}
	if c.Retries < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "retries must not be negative")
	}
	if !c.NoCache && c.CachePath == "" {
		return errors.New(errors.ErrCodeInvalidPath, "cache_path is required unless no_cache is set")
	}
	kind := strings.ToLower(c.Sink.Kind)
	if kind != "" && !slices.Contains(sink.Kinds, kind) {
		return errors.New(errors.ErrCodeInvalidInput, "unknown sink kind %q (want one of %s)", c.Sink.Kind, strings.Join(sink.Kinds, ", "))
	}
	return nil
}

// SeasonAt returns the configured season, or now's year when unset.
func (c Config) SeasonAt(now time.Time) int {
	if c.Season != 0 {
		return c.Season
	}
	return now.Year()
}

// String renders the configuration as TOML, omitting secrets.
func (c Config) String() string {
	redacted := c
	if redacted.Sink.Redis.Password != "" {
		redacted.Sink.Redis.Password = "***"
	}
	if redacted.Sink.Mongo.URI != "" {
		redacted.Sink.Mongo.URI = "***"
	}
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(redacted); err != nil {
		return fmt.Sprintf("%+v", redacted)
	}
	return sb.String()
}
