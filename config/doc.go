// Package config provides configuration management for the application.
//
// The config package handles loading, validating, and providing access to
// application configuration using viper. It supports configuration from
// YAML files with defaults for every key.
//
// Usage:
//
//	cfg, err := config.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
