// Package config loads runtime settings from defaults, an optional config
// file, a .env file and TODO_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/felixgeelhaar/todo/pkg/observability"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. TODO_LOG_LEVEL.
const EnvPrefix = "TODO"

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv string `mapstructure:"app_env"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// Terminal
	Color  bool   `mapstructure:"color"`
	Prompt string `mapstructure:"prompt"`

	// Events
	Events EventsConfig `mapstructure:"events"`
}

// EventsConfig configures the in-process event subscribers.
type EventsConfig struct {
	// Log enables the activity log subscriber.
	Log bool `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", string(observability.LogLevelWarn))
	v.SetDefault("log_format", "") // resolved from app_env after loading
	v.SetDefault("color", true)
	v.SetDefault("prompt", "> ")
	v.SetDefault("events.log", true)
}

// Load reads configuration. A non-empty path names a yaml, json or toml file
// that must exist; environment variables override it.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.Color = false
	}

	level, err := observability.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = string(level)

	if cfg.LogFormat == "" {
		cfg.LogFormat = string(cfg.defaultLogFormat())
	}
	format, err := observability.ParseLogFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	cfg.LogFormat = string(format)

	return cfg, nil
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// defaultLogFormat is json in production and text elsewhere.
func (c *Config) defaultLogFormat() observability.LogFormat {
	if c.IsProduction() {
		return observability.LogFormatJSON
	}
	return observability.LogFormatText
}

// LogConfig derives the logger settings.
func (c *Config) LogConfig() observability.LogConfig {
	lc := observability.DefaultLogConfig()
	lc.Level = observability.LogLevel(c.LogLevel)
	lc.Format = observability.LogFormat(c.LogFormat)
	lc.NoColor = !c.Color
	return lc
}
