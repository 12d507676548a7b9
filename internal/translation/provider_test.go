package translation

import (
	"context"
	"strings"
	"testing"
)

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(context.Background(), &Config{Provider: "babelfish"})
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "babelfish") {
		t.Errorf("error should name the provider, got: %v", err)
	}
}

func TestNewProvider_MissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
	}{
		{"google without key JSON", &Config{Provider: "google"}},
		{"openai without API key", &Config{Provider: "openai"}},
		{"gemini without API key", &Config{Provider: "gemini"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewProvider(context.Background(), tt.config); err == nil {
				t.Error("expected error for missing credentials")
			}
		})
	}
}

func TestNewProvider_OpenAI(t *testing.T) {
	provider, err := NewProvider(context.Background(), &Config{
		Provider:  "openai",
		OpenAIKey: "test-api-key",
	})
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	if provider.Name() != "openai" {
		t.Errorf("Name = %q, want %q", provider.Name(), "openai")
	}
}

func TestNewProvider_NilConfigDefaults(t *testing.T) {
	// nil config falls back to the default google provider, which then
	// fails for missing credentials rather than panicking
	if _, err := NewProvider(context.Background(), nil); err == nil {
		t.Error("expected credentials error for nil config")
	}
}

func TestDefaultProviderConfig(t *testing.T) {
	config := DefaultProviderConfig()

	if config.Provider != "google" {
		t.Errorf("Provider = %q, want %q", config.Provider, "google")
	}
	if config.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q, want %q", config.OpenAIModel, "gpt-4o-mini")
	}
	if config.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("GeminiModel = %q, want %q", config.GeminiModel, "gemini-2.0-flash")
	}
}

func TestTranslationPrompt(t *testing.T) {
	prompt := translationPrompt("Dear Parents, tomorrow is a half-day.", "es")

	if !strings.Contains(prompt, "Spanish") {
		t.Errorf("prompt should use the catalog name for es: %q", prompt)
	}
	if !strings.Contains(prompt, "Dear Parents, tomorrow is a half-day.") {
		t.Error("prompt should contain the source text")
	}

	// Unknown codes pass through untranslated
	prompt = translationPrompt("Hello", "xx")
	if !strings.Contains(prompt, "xx") {
		t.Errorf("prompt should fall back to the raw code: %q", prompt)
	}
}
