package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tildaslashalef/blockmap/internal/config"
	"github.com/tildaslashalef/blockmap/internal/loggy"
)

func TestGetDefaultClient(t *testing.T) {
	t.Run("claude with key", func(t *testing.T) {
		cfg := config.New()
		cfg.DefaultLLMProvider = "claude"
		cfg.Claude.APIKey = "sk-test"

		client, clientType, err := NewFactory(cfg, loggy.NewNoopLogger()).GetDefaultClient()
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, ClientTypeClaude, clientType)
	})

	t.Run("claude without key", func(t *testing.T) {
		cfg := config.New()
		cfg.DefaultLLMProvider = "claude"

		client, _, err := NewFactory(cfg, loggy.NewNoopLogger()).GetDefaultClient()
		assert.Error(t, err)
		assert.Nil(t, client)
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := config.New()
		cfg.DefaultLLMProvider = "ollama"

		client, _, err := NewFactory(cfg, loggy.NewNoopLogger()).GetDefaultClient()
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}
