package translate

import (
	"context"
	"encoding/json"
)

// Provider is a structured-output LLM backend.
type Provider interface {
	// Generate sends the prompt and returns JSON conforming to req.Schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request is a single-turn prompt.
type Request struct {
	System    string
	User      string
	Schema    *Schema
	MaxTokens int
}

// Schema is the JSON Schema the response must conform to.
type Schema struct {
	// Name is used as schema name by OpenAI and as cache key.
	Name       string
	Definition map[string]any
}

// Response holds the provider output.
type Response struct {
	Content json.RawMessage
	Model   string
	Usage   Usage
}

// Usage reports token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
}
