package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mmcdole/marquee/internal/search"
)

const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p/w500"

	// Search defaults are owned by the orchestrator
	DefaultSettleDelay  = search.DefaultSettleDelay
	DefaultInitialQuery = search.DefaultInitialQuery
)

// ErrMissingToken is returned by Validate when no bearer token is configured
var ErrMissingToken = errors.New("TMDB token is not set (export MARQUEE_TMDB_TOKEN or TMDB_TOKEN)")

// Config holds all application configuration
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds movie database connection settings
type TMDBConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	Token        string `mapstructure:"token"` // v4 read access token, sent as Bearer
	ImageBaseURL string `mapstructure:"image_base_url"`
	Language     string `mapstructure:"language"` // optional, e.g. "en-US"
	IncludeAdult bool   `mapstructure:"include_adult"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	SettleDelay  time.Duration `mapstructure:"settle_delay"` // loader hold after a search resolves
	InitialQuery string        `mapstructure:"initial_query"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			BaseURL:      DefaultBaseURL,
			ImageBaseURL: DefaultImageBaseURL,
		},
		UI: UIConfig{
			SettleDelay:  DefaultSettleDelay,
			InitialQuery: DefaultInitialQuery,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "marquee", "marquee.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "marquee", "marquee.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "marquee")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "marquee")
	}
}

// LoadConfig loads configuration from .env files, the config file and environment.
// configFile overrides the default search path when non-empty.
func LoadConfig(configFile string) (*Config, error) {
	if _, err := LoadDotEnv("."); err != nil {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	cfg := DefaultConfig()
	v := newViper(cfg)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.TMDB.Token = strings.TrimSpace(cfg.TMDB.Token)
	return cfg, nil
}

// newViper registers every key so AutomaticEnv can see it during Unmarshal
func newViper(defaults *Config) *viper.Viper {
	v := viper.New()

	v.SetDefault("tmdb.base_url", defaults.TMDB.BaseURL)
	v.SetDefault("tmdb.token", defaults.TMDB.Token)
	v.SetDefault("tmdb.image_base_url", defaults.TMDB.ImageBaseURL)
	v.SetDefault("tmdb.language", defaults.TMDB.Language)
	v.SetDefault("tmdb.include_adult", defaults.TMDB.IncludeAdult)
	v.SetDefault("ui.settle_delay", defaults.UI.SettleDelay)
	v.SetDefault("ui.initial_query", defaults.UI.InitialQuery)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.level", defaults.Logging.Level)

	// Environment variable overrides: MARQUEE_TMDB_TOKEN, MARQUEE_LOGGING_LEVEL, ...
	v.SetEnvPrefix("MARQUEE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The bare name most TMDB tooling documents
	_ = v.BindEnv("tmdb.token", "MARQUEE_TMDB_TOKEN", "TMDB_TOKEN")

	return v
}

// IsConfigured returns true if a bearer token is set
func (c *Config) IsConfigured() bool {
	return c.TMDB.Token != ""
}

// Validate checks the settings required to talk to the movie database
func (c *Config) Validate() error {
	if !c.IsConfigured() {
		return ErrMissingToken
	}
	if c.TMDB.BaseURL == "" {
		return fmt.Errorf("tmdb.base_url must not be empty")
	}
	if c.UI.SettleDelay < 0 {
		return fmt.Errorf("invalid ui.settle_delay: %s (must not be negative)", c.UI.SettleDelay)
	}
	return nil
}
