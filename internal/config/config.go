// Package config loads runtime settings from defaults, FREEBIES_* environment
// variables (a .env file in the working directory is loaded first) and
// finally command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "FREEBIES_"

// Config is the runtime configuration.
type Config struct {
	DBPath    string `koanf:"db_path" validate:"required"`
	Addr      string `koanf:"addr" validate:"required,hostname_port"`
	AdminUser string `koanf:"admin_user" validate:"required"`
	LogPath   string `koanf:"log_path"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		DBPath:    "freebies.sqlite3",
		Addr:      ":8080",
		AdminUser: "Admin",
	}
}

// Load returns the defaults overlaid with FREEBIES_* environment variables,
// e.g. FREEBIES_DB_PATH sets DBPath.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required settings are present and well formed.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
