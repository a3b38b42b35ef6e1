package translate

import (
	"fmt"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderNone       = ""
	ProviderServer     = "server"
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
	ProviderMock       = "mock"
)

// Config selects and configures the translation backend.
type Config struct {
	Provider string
	Target   string
	Timeout  time.Duration

	Anthropic  ProviderConfig
	OpenAI     ProviderConfig
	OpenRouter ProviderConfig
	Gemini     ProviderConfig
	Retry      RetryConfig
}

// ProviderConfig holds the credentials of one LLM backend.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// DefaultConfig returns a Config with translation disabled.
func DefaultConfig() Config {
	return Config{
		Target:     DefaultTarget,
		Timeout:    20 * time.Second,
		Anthropic:  ProviderConfig{Model: "claude-haiku"},
		OpenAI:     ProviderConfig{Model: "gpt-4o-mini"},
		OpenRouter: ProviderConfig{Model: "google/gemini-2.0-flash-exp"},
		Gemini:     ProviderConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case ProviderNone, ProviderServer, ProviderMock:
		return nil
	case ProviderAnthropic:
		key = c.Anthropic.APIKey
	case ProviderOpenAI:
		key = c.OpenAI.APIKey
	case ProviderOpenRouter:
		key = c.OpenRouter.APIKey
	case ProviderGemini:
		key = c.Gemini.APIKey
	default:
		return fmt.Errorf("unknown translate provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("an API key is required for the %s translate provider", c.Provider)
	}
	return nil
}
