// Package config provides configuration management for rowframe operations
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the global configuration for DataFrame operations
type Config struct {
	// Display Configuration
	DisplayRows int `json:"display_rows" yaml:"display_rows"` // Maximum rows rendered by String()

	// Join Index Configuration
	JoinIndexLoadFactor     float64 `json:"join_index_load_factor" yaml:"join_index_load_factor"`         // Entries per bucket before the index grows (0.0-1.0]
	JoinIndexCapacityFactor float64 `json:"join_index_capacity_factor" yaml:"join_index_capacity_factor"` // Initial buckets per indexed row (>= 1.0)

	// Debugging Configuration
	VerboseLogging    bool `json:"verbose_logging" yaml:"verbose_logging"`       // Enable debug logging through slog
	MetricsCollection bool `json:"metrics_collection" yaml:"metrics_collection"` // Enable metrics collection
}

// Global configuration instance
var (
	globalConfig Config
	configMutex  sync.RWMutex
)

// Default configuration values
const (
	DefaultDisplayRows             = 10
	DefaultJoinIndexLoadFactor     = 0.75
	DefaultJoinIndexCapacityFactor = 1.3
)

// Environment variable names read by LoadFromEnv
const (
	EnvDisplayRows             = "ROWFRAME_DISPLAY_ROWS"
	EnvJoinIndexLoadFactor     = "ROWFRAME_JOIN_INDEX_LOAD_FACTOR"
	EnvJoinIndexCapacityFactor = "ROWFRAME_JOIN_INDEX_CAPACITY_FACTOR"
	EnvVerboseLogging          = "ROWFRAME_VERBOSE_LOGGING"
	EnvMetricsCollection       = "ROWFRAME_METRICS_COLLECTION"
)

// Initialize global configuration with defaults
func init() {
	globalConfig = NewConfig()
}

// NewConfig creates a new configuration with default values
func NewConfig() Config {
	return Config{
		DisplayRows:             DefaultDisplayRows,
		JoinIndexLoadFactor:     DefaultJoinIndexLoadFactor,
		JoinIndexCapacityFactor: DefaultJoinIndexCapacityFactor,

		// Debugging defaults (disabled)
		VerboseLogging:    false,
		MetricsCollection: false,
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c.DisplayRows <= 0 {
		return fmt.Errorf("DisplayRows must be positive, got %d", c.DisplayRows)
	}

	if c.JoinIndexLoadFactor <= 0.0 || c.JoinIndexLoadFactor > 1.0 {
		return fmt.Errorf("JoinIndexLoadFactor must be in (0, 1], got %f", c.JoinIndexLoadFactor)
	}

	if c.JoinIndexCapacityFactor < 1.0 {
		return fmt.Errorf("JoinIndexCapacityFactor must be at least 1, got %f", c.JoinIndexCapacityFactor)
	}

	return nil
}

// WithDefaults returns a new configuration with default values filled in for zero values
func (c Config) WithDefaults() Config {
	defaults := NewConfig()

	if c.DisplayRows == 0 {
		c.DisplayRows = defaults.DisplayRows
	}
	if c.JoinIndexLoadFactor == 0.0 {
		c.JoinIndexLoadFactor = defaults.JoinIndexLoadFactor
	}
	if c.JoinIndexCapacityFactor == 0.0 {
		c.JoinIndexCapacityFactor = defaults.JoinIndexCapacityFactor
	}

	// Boolean fields keep their explicit value; false and unset are the same default.

	return c
}

// Logger returns the logger operations should report through. Debug output
// goes to slog.Default() only when VerboseLogging is enabled.
func (c Config) Logger() *slog.Logger {
	if c.VerboseLogging {
		return slog.Default()
	}
	return slog.New(slog.DiscardHandler)
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config Config) {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = config
}

// GetGlobalConfig returns the current global configuration
func GetGlobalConfig() Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// ResetGlobalConfig restores the defaults
func ResetGlobalConfig() {
	SetGlobalConfig(NewConfig())
}

// LoadFromJSON loads configuration from JSON data
func LoadFromJSON(data []byte) (Config, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing JSON configuration: %w", err)
	}
	return config.WithDefaults(), nil
}

// LoadFromYAML loads configuration from YAML data
func LoadFromYAML(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing YAML configuration: %w", err)
	}
	return config.WithDefaults(), nil
}

// LoadFromFile loads configuration from a file (supports JSON, YAML and .env)
func LoadFromFile(filename string) (Config, error) {
	if strings.ToLower(filepath.Ext(filename)) == ".env" {
		return LoadFromDotEnv(filename)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", filename, err)
	}

	var config Config
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".json":
		config, err = LoadFromJSON(data)
	case ".yaml", ".yml":
		config, err = LoadFromYAML(data)
	default:
		return Config{}, fmt.Errorf("unsupported config file format: %s", ext)
	}

	if err != nil {
		return Config{}, fmt.Errorf("loading config file %s: %w", filename, err)
	}

	return config, nil
}

// LoadFromEnv loads configuration from environment variables.
// Unparseable values are ignored and the default is kept.
func LoadFromEnv() Config {
	return loadFromLookup(os.Getenv)
}

// LoadFromDotEnv loads configuration from a .env file holding the same
// ROWFRAME_* variables as LoadFromEnv. The process environment is not read.
func LoadFromDotEnv(filename string) (Config, error) {
	vars, err := godotenv.Read(filename)
	if err != nil {
		return Config{}, fmt.Errorf("reading env file %s: %w", filename, err)
	}
	return loadFromLookup(func(key string) string { return vars[key] }), nil
}

func loadFromLookup(lookup func(string) string) Config {
	config := NewConfig()

	if val := lookup(EnvDisplayRows); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			config.DisplayRows = parsed
		}
	}

	if val := lookup(EnvJoinIndexLoadFactor); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			config.JoinIndexLoadFactor = parsed
		}
	}

	if val := lookup(EnvJoinIndexCapacityFactor); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			config.JoinIndexCapacityFactor = parsed
		}
	}

	if val := lookup(EnvVerboseLogging); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			config.VerboseLogging = parsed
		}
	}

	if val := lookup(EnvMetricsCollection); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			config.MetricsCollection = parsed
		}
	}

	return config
}
