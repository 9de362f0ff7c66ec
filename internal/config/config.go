// Package config loads the application configuration from a YAML file with
// environment variable overrides. The Fingrid API key is read once from the
// FINGRID_API_KEY environment variable and carried in the config value so
// the API client never consults the environment itself.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Fingrid  FingridConfig  `mapstructure:"fingrid"`
	Display  DisplayConfig  `mapstructure:"display"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// FingridConfig holds Fingrid Open Data API configuration
type FingridConfig struct {
	APIBaseURL string        `mapstructure:"api_base_url"`
	APIKey     string        `mapstructure:"api_key"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// DisplayConfig holds console presentation configuration
type DisplayConfig struct {
	MaxTableRows int `mapstructure:"max_table_rows"`
	ChartWidth   int `mapstructure:"chart_width"`
	ChartHeight  int `mapstructure:"chart_height"`
}

// TelegramConfig holds Telegram summary notification configuration
type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
	Enabled  bool   `mapstructure:"enabled"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables. A missing
// config file is not an error: the tool runs on defaults so that demo mode
// and the variable reference table work with zero setup.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	setDefaults(v)

	v.SetEnvPrefix("GRIDVIEW")
	v.AutomaticEnv()

	// The API key deliberately lives outside the GRIDVIEW prefix: the
	// variable name is fixed by the Fingrid onboarding docs.
	if err := v.BindEnv("fingrid.api_key", "FINGRID_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind API key env var: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	// Fingrid defaults
	v.SetDefault("fingrid.api_base_url", "https://api.fingrid.fi/v1/variable")
	v.SetDefault("fingrid.api_key", "")
	v.SetDefault("fingrid.timeout", "10s")

	// Display defaults
	v.SetDefault("display.max_table_rows", 20)
	v.SetDefault("display.chart_width", 72)
	v.SetDefault("display.chart_height", 16)

	// Telegram defaults
	v.SetDefault("telegram.enabled", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all configuration values are valid. The API key is
// intentionally not required here: listing variables and demo mode work
// without one, and a missing key surfaces as an authentication fault only
// when a fetch is attempted.
func (c *Config) Validate() error {
	if c.Fingrid.APIBaseURL == "" {
		return fmt.Errorf("fingrid.api_base_url is required")
	}
	if c.Fingrid.Timeout < 1*time.Second {
		return fmt.Errorf("fingrid.timeout must be at least 1 second")
	}

	if c.Display.MaxTableRows < 1 {
		return fmt.Errorf("display.max_table_rows must be at least 1")
	}
	if c.Display.ChartWidth < 20 {
		return fmt.Errorf("display.chart_width must be at least 20")
	}
	if c.Display.ChartHeight < 4 {
		return fmt.Errorf("display.chart_height must be at least 4")
	}

	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram is enabled")
		}
		if c.Telegram.ChatID == "" {
			return fmt.Errorf("telegram.chat_id is required when telegram is enabled")
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}
