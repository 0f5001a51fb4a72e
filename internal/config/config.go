// Package config handles configuration loading for StockLens.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	FMP      FMPConfig      `mapstructure:"fmp"      yaml:"fmp"`
	API      APIConfig      `mapstructure:"api"      yaml:"api"`
	News     NewsConfig     `mapstructure:"news"     yaml:"news"`
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis"`
	Logging  LoggingConfig  `mapstructure:"logging"  yaml:"logging"`
}

// FMPConfig holds Financial Modeling Prep credentials.
type FMPConfig struct {
	APIKey string `mapstructure:"api_key" yaml:"api_key"`
}

// APIConfig holds HTTP server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// Addr returns the host:port listen address.
func (c APIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RSSFeed is a single configured news feed.
type RSSFeed struct {
	Name string `mapstructure:"name" yaml:"name"`
	URL  string `mapstructure:"url"  yaml:"url"`
}

// NewsConfig holds the optional RSS feed list. Empty means RSS news is
// disabled and analysis news falls straight back to the mock pool.
type NewsConfig struct {
	Feeds []RSSFeed `mapstructure:"feeds" yaml:"feeds"`
}

// AnalysisConfig holds analysis engine settings.
type AnalysisConfig struct {
	CacheTTL  int `mapstructure:"cache_ttl"  yaml:"cache_ttl"` // seconds
	NewsLimit int `mapstructure:"news_limit" yaml:"news_limit"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.stocklens/config.yaml (home directory)
//  3. /etc/stocklens/config.yaml (system)
//
// Environment variables override config file values.
// Format: STOCKLENS_<SECTION>_<KEY>, e.g., STOCKLENS_FMP_API_KEY
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".stocklens"))
	v.AddConfigPath("/etc/stocklens")

	v.SetEnvPrefix("STOCKLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; defaults + env vars are enough to run.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("STOCKLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"*"})

	// Analysis defaults
	v.SetDefault("analysis.cache_ttl", 300) // 5 minutes
	v.SetDefault("analysis.news_limit", 5)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// overrideFromEnv explicitly reads sensitive keys from environment variables.
// The bare FMP_API_KEY form is honored for compatibility with FMP's own docs.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv("STOCKLENS_FMP_API_KEY"); key != "" {
		cfg.FMP.APIKey = key
	} else if key := os.Getenv("FMP_API_KEY"); key != "" {
		cfg.FMP.APIKey = key
	}
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
