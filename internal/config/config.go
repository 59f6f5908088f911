// Package config provides application configuration loaded from the
// environment, following 12-factor conventions.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// Global configuration instance
	globalConfig *Config
	configMutex  sync.RWMutex
)

// Get returns the global configuration instance
// If the configuration has not been initialized, it will return an error
func Get() (*Config, error) {
	configMutex.RLock()
	defer configMutex.RUnlock()

	if globalConfig == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}

	return globalConfig, nil
}

// Set sets the global configuration instance
func Set(cfg *Config) {
	configMutex.Lock()
	defer configMutex.Unlock()

	globalConfig = cfg
}

// Config represents the complete application configuration
type Config struct {
	DefaultLLMProvider string // Which provider to use for audits (claude)
	Scan               ScanConfig
	Claude             ClaudeConfig
	Logging            LoggingConfig
}

// ScanConfig represents block scanning configuration
type ScanConfig struct {
	InputPath     string // Default path of the file to scan
	Callee        string // Invocation token that opens a definition (e.g. "router")
	CommentMarker string // Single-line comment marker for leading-comment attachment
}

// ClaudeConfig holds Claude API configuration
type ClaudeConfig struct {
	// Authentication and connection
	APIKey     string // Claude API key
	BaseURL    string // Claude API base URL
	APIVersion string // API version to use

	// Model settings
	Model string // Claude model to use

	// Request settings
	Timeout    time.Duration // Request timeout
	MaxRetries int           // Maximum number of retries on failure

	// Generation parameters
	MaxTokens   int     // Max tokens to generate for Claude responses
	Temperature float64 // Default temperature for Claude

	// Rate limiting
	RequestsPerMinute int // Requests allowed per minute (0 disables limiting)
	BurstLimit        int // Burst size for the rate limiter
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string // debug, info, warn, error
	Format     string // text or json
	Output     string // stdout, stderr, or file path
	AddSource  bool   // Include source code position in logs
	TimeFormat string // Time format for logs (empty uses RFC3339)
}

// New returns a new empty Config
func New() *Config {
	return &Config{
		DefaultLLMProvider: "",
		Scan:               ScanConfig{},
		Claude:             ClaudeConfig{},
		Logging:            LoggingConfig{},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return fmt.Errorf("scan config: %w", err)
	}

	if err := c.validateClaude(); err != nil {
		return fmt.Errorf("Claude config: %w", err)
	}

	if err := c.validateLogging(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// ParseLogLevel parses a log level string to a slog.Level
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "none":
		// Set to a very high level that won't be triggered
		return slog.Level(9999)
	default:
		return slog.LevelInfo
	}
}

func (c *Config) validateScan() error {
	if c.Scan.InputPath == "" {
		return fmt.Errorf("input path cannot be empty")
	}

	if c.Scan.Callee == "" {
		return fmt.Errorf("callee cannot be empty")
	}

	for _, r := range c.Scan.Callee {
		if !strings.ContainsRune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_", r) {
			return fmt.Errorf("callee must be a plain identifier, got %q", c.Scan.Callee)
		}
	}

	if c.Scan.CommentMarker == "" {
		return fmt.Errorf("comment marker cannot be empty")
	}

	return nil
}

func (c *Config) validateClaude() error {
	// If API key is not provided, the audit command is simply unavailable
	if c.Claude.APIKey == "" {
		return nil
	}

	if c.Claude.BaseURL == "" {
		c.Claude.BaseURL = "https://api.anthropic.com"
	}

	if c.Claude.APIVersion == "" {
		c.Claude.APIVersion = "2023-06-01"
	}

	if c.Claude.Model == "" {
		c.Claude.Model = "claude-3-7-sonnet-20250219"
	}

	if c.Claude.Timeout == 0 {
		c.Claude.Timeout = 60 * time.Second
	}

	if c.Claude.MaxRetries <= 0 {
		c.Claude.MaxRetries = 3
	}

	if c.Claude.MaxTokens <= 0 {
		c.Claude.MaxTokens = 4096
	}

	return nil
}

func (c *Config) validateLogging() error {
	// Validate logging level
	level := strings.ToLower(c.Logging.Level)
	if level != "debug" && level != "info" && level != "warn" && level != "error" && level != "none" {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	// Validate format
	format := strings.ToLower(c.Logging.Format)
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	return nil
}

// getEnvString returns a string from the environment variable
func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns an int from the environment variable
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool returns a bool from the environment variable
func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration returns a time.Duration from the environment variable
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvFloat returns a float64 from the environment variable
func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
