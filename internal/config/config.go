// Package config loads the jarray CLI configuration.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (JARRAY_*, e.g. JARRAY_LOGGING_LEVEL=DEBUG)
//  2. Configuration file (YAML)
//  3. Default values
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/marcodamonte/jarray/internal/logger"
)

// Config is the root configuration.
type Config struct {
	Logging logger.Config `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// MetricsConfig controls the Prometheus growth metrics dump.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Logging: logger.Config{
			Level:  "INFO",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Load reads configuration from configPath (or the default location when
// empty), the environment, and defaults. A missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate rejects unknown logging levels and formats.
func Validate(cfg *Config) error {
	if _, err := logger.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if !logger.ValidFormat(cfg.Logging.Format) {
		return fmt.Errorf("logging.format: unknown format %q", cfg.Logging.Format)
	}
	return nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

func setupViper(v *viper.Viper, configPath string) {
	def := Default()
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.output", def.Logging.Output)
	v.SetDefault("metrics.enabled", def.Metrics.Enabled)

	v.SetEnvPrefix("JARRAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.AddConfigPath(configDir())
	v.SetConfigName("config")
	v.SetConfigType("yaml")
}

// readConfigFile reads the config file, treating a missing one as empty.
func readConfigFile(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to read config file: %w", err)
}

func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "jarray")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "jarray")
	}
	return ".jarray"
}
