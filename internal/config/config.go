// Package config provides configuration management for the order-entry application.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	apperrors "options-desk/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Account AccountConfig `mapstructure:"account"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
	UI      UIConfig      `mapstructure:"ui"`
}

// AccountConfig holds account-related configuration.
type AccountConfig struct {
	StartingBalance float64 `mapstructure:"starting_balance"`
}

// StorageConfig holds persistence configuration.
type StorageConfig struct {
	// OrdersPath is the JSON file holding the serialized order collection.
	OrdersPath string `mapstructure:"orders_path"`
	// JournalPath is the SQLite database holding the activity journal.
	JournalPath string `mapstructure:"journal_path"`
	// Watch enables reloading when another process rewrites the order file.
	Watch bool `mapstructure:"watch"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
	TimeFormat string `mapstructure:"time_format"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/options-desk"
	}
	return filepath.Join(home, ".config", "options-desk")
}

// Default returns the built-in configuration.
func Default() *Config {
	dir := DefaultConfigDir()
	return &Config{
		Account: AccountConfig{
			StartingBalance: 50000,
		},
		Storage: StorageConfig{
			OrdersPath:  filepath.Join(dir, "orders.json"),
			JournalPath: filepath.Join(dir, "journal.db"),
			Watch:       true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
			File:    true,
		},
		UI: UIConfig{
			DateFormat: "02-Jan-2006",
			TimeFormat: "15:04:05",
		},
	}
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if err := createTemplateConfig(configDir); err != nil {
				return nil, fmt.Errorf("creating config template: %w", err)
			}
		} else {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
	} else if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	// Empty paths in the config file mean "use the default location".
	defaults := Default()
	if cfg.Storage.OrdersPath == "" {
		cfg.Storage.OrdersPath = defaults.Storage.OrdersPath
	}
	if cfg.Storage.JournalPath == "" {
		cfg.Storage.JournalPath = defaults.Storage.JournalPath
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OPTIONS_DESK_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("OPTIONS_DESK_ORDERS_PATH"); v != "" {
		cfg.Storage.OrdersPath = v
	}
	if v := os.Getenv("OPTIONS_DESK_JOURNAL_PATH"); v != "" {
		cfg.Storage.JournalPath = v
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Account.StartingBalance < 0 {
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "starting_balance must not be negative, got %.2f", c.Account.StartingBalance)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "unknown log level %q", c.Logging.Level)
	}
	return nil
}
