package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable the loader reads so tests see only what
// they set themselves
func clearEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		"ENV_FILE_PATH",
		"BLOCKMAP_LLM_DEFAULT_PROVIDER",
		"BLOCKMAP_SCAN_INPUT_PATH",
		"BLOCKMAP_SCAN_CALLEE",
		"BLOCKMAP_SCAN_COMMENT_MARKER",
		"BLOCKMAP_CLAUDE_API_KEY",
		"BLOCKMAP_CLAUDE_BASE_URL",
		"BLOCKMAP_CLAUDE_MODEL",
		"BLOCKMAP_CLAUDE_TIMEOUT",
		"BLOCKMAP_CLAUDE_MAX_RETRIES",
		"BLOCKMAP_CLAUDE_MAX_TOKENS",
		"BLOCKMAP_CLAUDE_TEMPERATURE",
		"BLOCKMAP_CLAUDE_API_VERSION",
		"BLOCKMAP_CLAUDE_REQUESTS_PER_MINUTE",
		"BLOCKMAP_CLAUDE_BURST_LIMIT",
		"BLOCKMAP_LOG_LEVEL",
		"BLOCKMAP_LOG_FORMAT",
		"BLOCKMAP_LOG_OUTPUT",
		"BLOCKMAP_LOG_ADD_SOURCE",
		"BLOCKMAP_LOG_TIME_FORMAT",
	}
	for _, v := range vars {
		t.Setenv(v, "")
		require.NoError(t, os.Unsetenv(v))
	}
}

func TestLoadFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := LoadFromEnv(dir, filepath.Join(dir, ".env"))
	require.NoError(t, err)

	assert.Equal(t, "claude", cfg.DefaultLLMProvider)
	assert.Equal(t, "server/routers.ts", cfg.Scan.InputPath)
	assert.Equal(t, "router", cfg.Scan.Callee)
	assert.Equal(t, "//", cfg.Scan.CommentMarker)
	assert.Empty(t, cfg.Claude.APIKey)
	assert.Equal(t, 60*time.Second, cfg.Claude.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(dir, "blockmap.log"), cfg.Logging.Output)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	t.Setenv("BLOCKMAP_SCAN_INPUT_PATH", "src/api.ts")
	t.Setenv("BLOCKMAP_SCAN_CALLEE", "createRouter")
	t.Setenv("BLOCKMAP_CLAUDE_API_KEY", "sk-test")
	t.Setenv("BLOCKMAP_CLAUDE_MAX_TOKENS", "2000")
	t.Setenv("BLOCKMAP_CLAUDE_TIMEOUT", "30s")
	t.Setenv("BLOCKMAP_LOG_LEVEL", "debug")

	cfg, err := LoadFromEnv(dir, filepath.Join(dir, ".env"))
	require.NoError(t, err)

	assert.Equal(t, "src/api.ts", cfg.Scan.InputPath)
	assert.Equal(t, "createRouter", cfg.Scan.Callee)
	assert.Equal(t, "sk-test", cfg.Claude.APIKey)
	assert.Equal(t, 2000, cfg.Claude.MaxTokens)
	assert.Equal(t, 30*time.Second, cfg.Claude.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromEnvDotEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile,
		[]byte("BLOCKMAP_SCAN_CALLEE=procedure\n"), 0o644))

	cfg, err := LoadFromEnv(dir, envFile)
	require.NoError(t, err)
	assert.Equal(t, "procedure", cfg.Scan.Callee)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Scan: ScanConfig{
				InputPath:     "server/routers.ts",
				Callee:        "router",
				CommentMarker: "//",
			},
			Logging: LoggingConfig{Level: "info", Format: "text"},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("empty input path", func(t *testing.T) {
		cfg := base()
		cfg.Scan.InputPath = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("callee with metacharacters", func(t *testing.T) {
		cfg := base()
		cfg.Scan.Callee = "t.router("
		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := base()
		cfg.Logging.Level = "verbose"
		assert.Error(t, cfg.Validate())
	})

	t.Run("claude defaults applied when key set", func(t *testing.T) {
		cfg := base()
		cfg.Claude.APIKey = "sk-test"
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "https://api.anthropic.com", cfg.Claude.BaseURL)
		assert.Equal(t, 3, cfg.Claude.MaxRetries)
		assert.Equal(t, 4096, cfg.Claude.MaxTokens)
	})
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("INFO"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("bogus"))
	assert.Equal(t, slog.Level(9999), ParseLogLevel("none"))
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("BLOCKMAP_TEST_STRING", "value")
	t.Setenv("BLOCKMAP_TEST_INT", "42")
	t.Setenv("BLOCKMAP_TEST_BOOL", "true")
	t.Setenv("BLOCKMAP_TEST_DURATION", "90s")
	t.Setenv("BLOCKMAP_TEST_FLOAT", "0.7")
	t.Setenv("BLOCKMAP_TEST_BAD_INT", "not-a-number")

	assert.Equal(t, "value", getEnvString("BLOCKMAP_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", getEnvString("BLOCKMAP_TEST_ABSENT", "fallback"))
	assert.Equal(t, 42, getEnvInt("BLOCKMAP_TEST_INT", 0))
	assert.Equal(t, 7, getEnvInt("BLOCKMAP_TEST_BAD_INT", 7))
	assert.True(t, getEnvBool("BLOCKMAP_TEST_BOOL", false))
	assert.Equal(t, 90*time.Second, getEnvDuration("BLOCKMAP_TEST_DURATION", 0))
	assert.Equal(t, 0.7, getEnvFloat("BLOCKMAP_TEST_FLOAT", 0))
}

func TestGlobalConfig(t *testing.T) {
	original := globalConfig
	defer Set(original)

	Set(nil)
	_, err := Get()
	assert.Error(t, err)

	cfg := New()
	Set(cfg)
	got, err := Get()
	require.NoError(t, err)
	assert.Same(t, cfg, got)
}
