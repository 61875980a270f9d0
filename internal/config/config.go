// Package config handles configuration loading for devcrew.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for devcrew.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Journal JournalConfig `mapstructure:"journal"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address.
	Host string `mapstructure:"host"`
	// Port is the listen port.
	Port int `mapstructure:"port"`
	// CORSOrigins lists allowed cross-origin request origins.
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// CatalogConfig holds agent and template catalog settings.
type CatalogConfig struct {
	// Dir is the directory holding agents.yaml and templates.yaml
	// overrides. Empty means built-in defaults only.
	Dir string `mapstructure:"dir"`
}

// JournalConfig holds event journal settings.
type JournalConfig struct {
	// Enabled toggles the SQLite journal.
	Enabled bool `mapstructure:"enabled"`
	// Path is the journal database file.
	Path string `mapstructure:"path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level"`
	// Pretty enables human-readable console output.
	Pretty bool `mapstructure:"pretty"`
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (DEVCREW_*)
// 2. Project config (.devcrew.yaml in current directory or parent)
// 3. User config (~/.config/devcrew/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	// Load project config if present
	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	// Environment variable overrides
	v.AutomaticEnv()
	v.BindEnv("server.port", "DEVCREW_PORT")
	v.BindEnv("catalog.dir", "DEVCREW_CATALOG_DIR")
	v.BindEnv("journal.path", "DEVCREW_JOURNAL_PATH")
	v.BindEnv("log.level", "DEVCREW_LOG_LEVEL")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.cors_origins", []string{"*"})

	// Catalog defaults
	v.SetDefault("catalog.dir", "")

	// Journal defaults
	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.path", defaultJournalPath())

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}

// getUserConfigDir returns the XDG config directory for devcrew.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "devcrew")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "devcrew")
	}
	return filepath.Join(home, ".config", "devcrew")
}

// defaultJournalPath returns the XDG data location for the event journal.
func defaultJournalPath() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "devcrew", "journal.db")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".devcrew", "journal.db")
	}
	return filepath.Join(home, ".local", "share", "devcrew", "journal.db")
}

// findProjectConfig searches for .devcrew.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".devcrew.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8000,
			CORSOrigins: []string{"*"},
		},
		Catalog: CatalogConfig{
			Dir: "",
		},
		Journal: JournalConfig{
			Enabled: false,
			Path:    defaultJournalPath(),
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: false,
		},
	}
}
