package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Preview PreviewConfig `mapstructure:"preview"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Transport string `mapstructure:"transport"`
	HTTPPort  int    `mapstructure:"http_port"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Mode  string `mapstructure:"mode"`
	Level string `mapstructure:"level"`
	// Output is a zap sink: "stderr", "stdout" or a file path.
	Output string `mapstructure:"output"`
}

// PreviewConfig holds preview project configuration
type PreviewConfig struct {
	DefaultTheme     string   `mapstructure:"default_theme"`
	ArchiveExcludes  []string `mapstructure:"archive_excludes"`
	MaxArchiveSizeMB int      `mapstructure:"max_archive_size_mb"`
}

// New loads and validates the application configuration
func New() (*Config, error) {
	return load(viper.New(), ".", "./config")
}

// NewFromFile loads and validates configuration from a single file
func NewFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper, paths ...string) (*Config, error) {
	if len(paths) > 0 {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, p := range paths {
			v.AddConfigPath(p)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// If config file not found, continue with defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.transport", "stdio")
	v.SetDefault("server.http_port", 8080)

	v.SetDefault("logging.mode", "production")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("preview.default_theme", "light")
	v.SetDefault("preview.archive_excludes", []string{})
	v.SetDefault("preview.max_archive_size_mb", 5)
}

// validate ensures the configuration is valid
func (c *Config) validate() error {
	if c.Server.Transport != "stdio" && c.Server.Transport != "http" {
		return fmt.Errorf("invalid server.transport: %s, must be 'stdio' or 'http'", c.Server.Transport)
	}

	if c.Server.Transport == "http" && (c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535) {
		return fmt.Errorf("invalid server.http_port: %d", c.Server.HTTPPort)
	}

	if c.Logging.Mode != "production" && c.Logging.Mode != "development" {
		return fmt.Errorf("invalid logging.mode: %s, must be 'production' or 'development'", c.Logging.Mode)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
		"dpanic": true, "panic": true, "fatal": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging.level: %s", c.Logging.Level)
	}

	if c.Logging.Output == "" {
		return fmt.Errorf("logging.output is required")
	}
	if c.Server.Transport == "stdio" && c.Logging.Output == "stdout" {
		return fmt.Errorf("invalid logging.output: stdout carries the stdio transport")
	}

	if c.Preview.DefaultTheme != "light" && c.Preview.DefaultTheme != "dark" {
		return fmt.Errorf("invalid preview.default_theme: %s, must be 'light' or 'dark'", c.Preview.DefaultTheme)
	}

	if c.Preview.MaxArchiveSizeMB <= 0 {
		return fmt.Errorf("preview.max_archive_size_mb must be positive, got: %d", c.Preview.MaxArchiveSizeMB)
	}

	return nil
}
