package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// LoadFromEnv loads configuration from environment variables
// Parameters:
// - configDir: Directory containing config files (or empty for default)
// - configFilePath: Path to .env file (or empty for default)
func LoadFromEnv(configDir string, configFilePath string) (*Config, error) {
	cfg := New()

	// If configDir is empty, use the default
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".blockmap")

		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	// Default log path is in the config directory
	defaultLogPath := filepath.Join(configDir, "blockmap.log")

	// Use provided config file path or default
	if configFilePath == "" {
		configFilePath = filepath.Join(configDir, ".env")
	}

	// Check if ENV_FILE_PATH is set to load from a custom .env file
	envFilePath := getEnvString("ENV_FILE_PATH", "")
	if envFilePath != "" {
		// User specified a custom env file path
		if err := godotenv.Load(envFilePath); err != nil {
			return nil, fmt.Errorf("failed to load env file from %s: %w", envFilePath, err)
		}
	} else {
		// Try to load from config directory first
		if err := godotenv.Load(configFilePath); err != nil {
			// Then try current directory as fallback
			_ = godotenv.Load() // Ignore errors if file doesn't exist
		}
	}

	// LLM Configuration
	cfg.DefaultLLMProvider = getEnvString("BLOCKMAP_LLM_DEFAULT_PROVIDER", "claude")

	// Scan Configuration
	cfg.Scan = ScanConfig{
		InputPath:     getEnvString("BLOCKMAP_SCAN_INPUT_PATH", "server/routers.ts"),
		Callee:        getEnvString("BLOCKMAP_SCAN_CALLEE", "router"),
		CommentMarker: getEnvString("BLOCKMAP_SCAN_COMMENT_MARKER", "//"),
	}

	// Load Claude config
	cfg.Claude = ClaudeConfig{
		APIKey:            getEnvString("BLOCKMAP_CLAUDE_API_KEY", ""),
		BaseURL:           getEnvString("BLOCKMAP_CLAUDE_BASE_URL", "https://api.anthropic.com"),
		Model:             getEnvString("BLOCKMAP_CLAUDE_MODEL", "claude-3-7-sonnet-20250219"),
		Timeout:           getEnvDuration("BLOCKMAP_CLAUDE_TIMEOUT", 60*time.Second),
		MaxRetries:        getEnvInt("BLOCKMAP_CLAUDE_MAX_RETRIES", 3),
		MaxTokens:         getEnvInt("BLOCKMAP_CLAUDE_MAX_TOKENS", 1500),
		Temperature:       getEnvFloat("BLOCKMAP_CLAUDE_TEMPERATURE", 0.1),
		APIVersion:        getEnvString("BLOCKMAP_CLAUDE_API_VERSION", "2023-06-01"),
		RequestsPerMinute: getEnvInt("BLOCKMAP_CLAUDE_REQUESTS_PER_MINUTE", 0),
		BurstLimit:        getEnvInt("BLOCKMAP_CLAUDE_BURST_LIMIT", 1),
	}

	// Logging Configuration
	cfg.Logging = LoggingConfig{
		Level:      getEnvString("BLOCKMAP_LOG_LEVEL", "info"),
		Format:     getEnvString("BLOCKMAP_LOG_FORMAT", "text"),
		Output:     getEnvString("BLOCKMAP_LOG_OUTPUT", defaultLogPath),
		AddSource:  getEnvBool("BLOCKMAP_LOG_ADD_SOURCE", true),
		TimeFormat: getEnvString("BLOCKMAP_LOG_TIME_FORMAT", time.RFC3339),
	}

	// Validate the configuration
	return cfg, cfg.Validate()
}
