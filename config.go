package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime settings. Everything has a sensible default; a
// config.yaml next to the binary or environment variables override it
// (e.g. UPCOMING_LIMIT=3).
type Config struct {
	Port          int    `mapstructure:"port"`
	DataDir       string `mapstructure:"data_dir"`
	UpcomingLimit int    `mapstructure:"upcoming_limit"`
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
	Watch         bool   `mapstructure:"watch"`
}

func LoadConfig() (*Config, error) {
	// Optional .env for local development; system env still wins.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 5000)
	v.SetDefault("data_dir", "data")
	v.SetDefault("upcoming_limit", 5)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("watch", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.UpcomingLimit <= 0 {
		return nil, fmt.Errorf("invalid configuration: upcoming_limit must be positive, got %d", cfg.UpcomingLimit)
	}
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("invalid configuration: data_dir must not be empty")
	}

	return &cfg, nil
}
