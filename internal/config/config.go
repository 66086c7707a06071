package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Defaults for the catalog service endpoints. The API key has no default:
// it lives in the config file or environment, never in the binary.
const (
	defaultCatalogBaseURL = "https://api.themoviedb.org/3"
	defaultImageBaseURL   = "https://image.tmdb.org/t/p"
)

// CatalogConfig holds the injected catalog client configuration
type CatalogConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	APIKey       string `mapstructure:"api_key"`
	ImageBaseURL string `mapstructure:"image_base_url"`
}

// DatabaseConfig holds the hosted database connection settings
type DatabaseConfig struct {
	DSN    string `mapstructure:"dsn"`
	UserID string `mapstructure:"user_id"` // profile row for the current user
}

// LoggingConfig controls the file logger
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Config is the application configuration
type Config struct {
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// IsConfigured returns true when enough configuration exists to start the UI
func (c *Config) IsConfigured() bool {
	return c.Catalog.APIKey != ""
}

// configDir returns the directory holding config.yaml
func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(base, "flix"), nil
}

// LoadConfig reads configuration from file and environment. A missing config
// file is not an error; defaults plus env vars still apply.
func LoadConfig() (*Config, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("catalog.base_url", defaultCatalogBaseURL)
	v.SetDefault("catalog.image_base_url", defaultImageBaseURL)
	v.SetDefault("logging.file", filepath.Join(dir, "flix.log"))
	v.SetDefault("logging.level", "info")

	v.SetEnvPrefix("FLIX")
	v.AutomaticEnv()
	_ = v.BindEnv("catalog.api_key", "FLIX_CATALOG_API_KEY", "TMDB_API_KEY")
	_ = v.BindEnv("database.dsn", "FLIX_DATABASE_DSN", "DATABASE_URL")
	_ = v.BindEnv("database.user_id", "FLIX_USER_ID")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// SaveConfig writes the configuration to config.yaml, creating the directory
// if needed
func SaveConfig(cfg *Config) error {
	dir, err := configDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("catalog.base_url", cfg.Catalog.BaseURL)
	v.Set("catalog.api_key", cfg.Catalog.APIKey)
	v.Set("catalog.image_base_url", cfg.Catalog.ImageBaseURL)
	v.Set("database.dsn", cfg.Database.DSN)
	v.Set("database.user_id", cfg.Database.UserID)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	path := filepath.Join(dir, "config.yaml")
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
