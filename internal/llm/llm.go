// Package llm defines the client abstraction for text-generation providers
// used by the audit workflow.
package llm

import (
	"context"
	"fmt"

	"github.com/tildaslashalef/blockmap/internal/claude"
	"github.com/tildaslashalef/blockmap/internal/config"
	"github.com/tildaslashalef/blockmap/internal/loggy"
)

// ClientType identifies the LLM provider backing a client
type ClientType string

const (
	// ClientTypeClaude represents the Anthropic Claude provider
	ClientTypeClaude ClientType = "claude"
)

// Message represents a single chat message
type Message struct {
	Role    string // system, user, or assistant
	Content string
}

// ChatRequest is a provider-agnostic chat completion request
type ChatRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// ChatResponse is a provider-agnostic chat completion response
type ChatResponse struct {
	Content string
	Model   string
}

// Client is the interface implemented by all LLM provider adapters
type Client interface {
	GenerateChat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// Factory creates LLM clients based on configuration
type Factory struct {
	cfg    *config.Config
	logger *loggy.Logger
}

// NewFactory creates a new LLM client factory
func NewFactory(cfg *config.Config, logger *loggy.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		logger: logger,
	}
}

// GetDefaultClient returns a client for the configured default provider
func (f *Factory) GetDefaultClient() (Client, ClientType, error) {
	switch ClientType(f.cfg.DefaultLLMProvider) {
	case ClientTypeClaude:
		if f.cfg.Claude.APIKey == "" {
			return nil, ClientTypeClaude, fmt.Errorf("claude API key not configured")
		}
		return newClaudeClientAdapter(claude.NewClient(f.cfg.Claude)), ClientTypeClaude, nil
	default:
		return nil, "", fmt.Errorf("unsupported LLM provider: %s", f.cfg.DefaultLLMProvider)
	}
}
