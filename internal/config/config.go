// Package config loads application configuration from an optional YAML file
// and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Env string `mapstructure:"env"` // current environment (local, production)

	// SheetURL is the primary data source: a URL returning the question
	// sheet as comma-separated text. When empty, the app runs from the
	// offline cache or the bundled sample deck.
	SheetURL string `mapstructure:"sheet_url"`

	// CachePath overrides the SQLite cache location.
	CachePath string `mapstructure:"cache_path"`

	// LogPath is the log file. The TUI owns the terminal, so logs never go
	// to stdout; empty disables logging.
	LogPath string `mapstructure:"log_path"`

	// IntroPolicy selects how the intro card is sourced: "reserved",
	// "first" or "none".
	IntroPolicy string `mapstructure:"intro_policy"`

	// IntroCategory is the reserved category label used by the "reserved"
	// intro policy.
	IntroCategory string `mapstructure:"intro_category"`

	Suggest Suggest `mapstructure:"suggest"`
}

// Suggest configures the optional question-suggestion command.
type Suggest struct {
	APIKey  string `mapstructure:"-"` // loaded from environment only
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"` // override for OpenAI-compatible APIs
}

// Load reads configuration from config files and environment variables.
// A missing config file is fine; everything has a usable default.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "checkin-roulette"))
	}

	v.SetDefault("env", "local")
	v.SetDefault("sheet_url", "")
	v.SetDefault("cache_path", "")
	v.SetDefault("log_path", "")
	v.SetDefault("intro_policy", "reserved")
	v.SetDefault("intro_category", "intro")
	v.SetDefault("suggest.model", "gpt-4o-mini")
	v.SetDefault("suggest.base_url", "")

	v.SetEnvPrefix("CHECKIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("sheet_url", "CHECKIN_SHEET_URL")
	_ = v.BindEnv("log_path", "CHECKIN_LOG")
	_ = v.BindEnv("env", "CHECKIN_ENV")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Sensitive values come from the environment only.
	cfg.Suggest.APIKey = os.Getenv("CHECKIN_OPENAI_API_KEY")

	return &cfg, nil
}
