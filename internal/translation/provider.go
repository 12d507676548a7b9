package translation

import (
	"context"
	"fmt"
)

// Provider defines the interface for remote translation backends
type Provider interface {
	// Translate translates text into the target language, given by its
	// catalog code (for example "es" or "zh-CN").
	Translate(ctx context.Context, text, target string) (string, error)

	// Name returns the provider name
	Name() string
}

// Config holds common configuration for translation providers
type Config struct {
	Provider string // Provider name: "google", "openai" or "gemini"

	// Google Cloud settings
	CredentialsJSON []byte // Raw service account key JSON

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string // "gpt-4o-mini" by default

	// Gemini-specific settings
	GeminiKey   string
	GeminiModel string // "gemini-2.0-flash" by default
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:    "google",
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
	}
}

// NewProvider creates the appropriate translation provider based on
// configuration.
func NewProvider(ctx context.Context, config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Provider {
	case "google":
		if len(config.CredentialsJSON) == 0 {
			return nil, fmt.Errorf("Google credentials are required")
		}
		return NewGoogleProvider(ctx, config.CredentialsJSON)

	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config), nil

	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiProvider(ctx, config)

	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}
}
