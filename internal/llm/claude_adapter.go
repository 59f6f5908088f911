package llm

import (
	"context"
	"fmt"

	"github.com/tildaslashalef/blockmap/internal/claude"
)

// claudeClientAdapter adapts the Claude client to the LLM Client interface
type claudeClientAdapter struct {
	client *claude.Client
}

// newClaudeClientAdapter creates a new Claude client adapter
func newClaudeClientAdapter(client *claude.Client) *claudeClientAdapter {
	return &claudeClientAdapter{
		client: client,
	}
}

// GenerateChat implements the Client interface for Claude
func (a *claudeClientAdapter) GenerateChat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	// Claude carries the system instruction outside the messages array
	var claudeMessages []claude.Message
	var systemMessage string

	for _, msg := range req.Messages {
		if msg.Role == "system" {
			systemMessage = msg.Content
		} else {
			claudeMessages = append(claudeMessages, claude.Message{
				Role:    msg.Role,
				Content: msg.Content,
			})
		}
	}

	claudeReq := claude.ChatRequest{
		Model:    req.Model,
		Messages: claudeMessages,
		System:   systemMessage,
	}

	if req.MaxTokens > 0 {
		claudeReq.MaxTokens = req.MaxTokens
	}
	if req.Temperature > 0 {
		temp := req.Temperature
		claudeReq.Temperature = &temp
	}

	resp, err := a.client.GenerateChat(ctx, claudeReq)
	if err != nil {
		return nil, fmt.Errorf("claude chat generation failed: %w", err)
	}

	return &ChatResponse{
		Content: resp.Text(),
		Model:   resp.Model,
	}, nil
}
