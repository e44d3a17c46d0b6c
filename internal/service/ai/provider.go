package ai

import (
	"context"
	"errors"
)

// Provider defines the interface for hosted model APIs.
type Provider interface {
	// Test sends a short probe message and returns the response.
	Test(ctx context.Context) (string, error)
	// Name returns the provider name.
	Name() string
	// Complete sends one user message (plus an optional system persona)
	// and returns the raw response text. Never a conversation: each call
	// is independent.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Config holds the configuration for a provider. All fields are fixed at
// process start; the key is read from the environment exactly once.
type Config struct {
	Provider    string // anthropic, openai, compatible
	APIKey      string
	BaseURL     string // optional for anthropic/openai, required for compatible
	Model       string
	MaxTokens   int64
	Temperature float64
}

// ProviderType constants
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderCompatible = "compatible"
)

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingBaseURL  = errors.New("base URL is required for compatible provider")
	ErrMissingModel    = errors.New("model is required")
)

// NewProvider creates a provider based on the config.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1000
	}

	switch cfg.Provider {
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg)
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg)
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewCompatibleProvider(cfg)
	default:
		return nil, ErrInvalidProvider
	}
}
