// Package llm talks to chat-completion providers behind one interface.
// Providers are decorated with retry and request logging by NewProvider.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one completion.
type Provider interface {
	// Generate sends req and returns the completion. When req.Schema is
	// set the content is JSON validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model requests are sent to.
	ModelID() string
}

// Request is a prompt plus conversation history.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks for structured JSON output. Without it the
	// response content is the raw text.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema. Name doubles as the cache key for the
// compiled validator and as the schema name sent to providers that take
// one, so it must be unique per definition.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Stop reasons, normalized across providers.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

const defaultMaxTokens = 1024

func maxTokens(n int) int {
	if n <= 0 {
		return defaultMaxTokens
	}
	return n
}
