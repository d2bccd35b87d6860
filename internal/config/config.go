// Package config resolves realwage settings from flags, environment and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"

	"github.com/spf13/viper"
)

// Defaults.
const (
	DefaultAddr     = ":8080"
	DefaultLogLevel = "info"

	// EnvPrefix namespaces environment variables, e.g. REALWAGE_CPI_SOURCE.
	EnvPrefix = "REALWAGE"

	configName = ".realwage"
)

// Config keys, shared with the CLI flag names.
const (
	KeyConfig     = "config"
	KeyAddr       = "addr"
	KeyCPISource  = "cpi-source"
	KeyStaticPath = "static-path"
	KeyLogLevel   = "log-level"
	KeyEndYear    = "end-year"
)

// Config holds the validated settings.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `mapstructure:"addr"`

	// CPISource is a CSV or SQLite dataset path. Empty uses the embedded ONS dataset.
	CPISource string `mapstructure:"cpi-source"`

	// StaticPath serves the UI from disk instead of the embedded assets when set.
	StaticPath string `mapstructure:"static-path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log-level"`

	// EndYear is the default last year of salary series. Zero means the last CPI year.
	EndYear int `mapstructure:"end-year"`
}

// New returns a viper instance with defaults, env binding and config file search paths set.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyAddr, DefaultAddr)
	v.SetDefault(KeyCPISource, "")
	v.SetDefault(KeyStaticPath, "")
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyEndYear, 0)

	return v
}

// Load reads the config file (if any), unmarshals and validates.
// A missing default config file is not an error; a missing explicit one is.
func Load(v *viper.Viper) (*Config, error) {
	if configFile := v.GetString(KeyConfig); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field formats. It does not touch the filesystem.
func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("invalid %s %q: %w", KeyAddr, c.Addr, err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.EndYear < 0 {
		return fmt.Errorf("invalid %s %d: must not be negative", KeyEndYear, c.EndYear)
	}
	return nil
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid %s %q: want debug, info, warn or error", KeyLogLevel, name)
	}
}
