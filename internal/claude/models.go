// Package claude implements a minimal Anthropic Claude API client covering
// the synchronous messages endpoint used for report audits.
package claude

import (
	"fmt"
	"strings"
)

// Message represents a chat message
type Message struct {
	Role    string `json:"role"` // user or assistant
	Content string `json:"content"`
}

// ChatRequest represents a messages request to the Claude API
type ChatRequest struct {
	Model       string    `json:"model"`                 // Claude model to use
	Messages    []Message `json:"messages"`              // Chat history messages
	System      string    `json:"system,omitempty"`      // System instructions
	MaxTokens   int       `json:"max_tokens,omitempty"`  // Maximum tokens to generate
	Temperature *float64  `json:"temperature,omitempty"` // Controls randomness
	Stream      bool      `json:"stream,omitempty"`      // Always false; streaming is not used
}

// ContentBlock represents a block of content in a response
// Claude responses can contain multiple content blocks of different types
type ContentBlock struct {
	Type string `json:"type"` // Content type (e.g., "text", "thinking")
	Text string `json:"text"` // The actual content text
}

// ChatResponse represents a response from the messages endpoint
type ChatResponse struct {
	ID         string         `json:"id,omitempty"`          // Response ID
	Type       string         `json:"type,omitempty"`        // Message type
	Role       string         `json:"role,omitempty"`        // Message role
	Model      string         `json:"model,omitempty"`       // Model used
	Content    []ContentBlock `json:"content,omitempty"`     // Response content blocks
	StopReason string         `json:"stop_reason,omitempty"` // Reason why generation stopped
	Usage      *UsageInfo     `json:"usage,omitempty"`       // Token usage information
}

// Text concatenates the text content blocks of the response
func (r *ChatResponse) Text() string {
	var b strings.Builder
	for _, block := range r.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

// UsageInfo contains token usage information for a request
type UsageInfo struct {
	InputTokens  int `json:"input_tokens"`  // Number of input tokens
	OutputTokens int `json:"output_tokens"` // Number of output tokens
}

// APIError represents an error response from the Claude API
type APIError struct {
	Type         string `json:"type"`
	ErrorDetails struct {
		Type    string `json:"type"`    // Error type
		Message string `json:"message"` // Error message
	} `json:"error"`
}

// Error implements the error interface for APIError
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorDetails.Type, e.ErrorDetails.Message)
}
