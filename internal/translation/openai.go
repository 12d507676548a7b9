package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider translates text with an OpenAI chat model.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI-backed provider.
func NewOpenAIProvider(config *Config) *OpenAIProvider {
	model := config.OpenAIModel
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIProvider{
		client: openai.NewClient(config.OpenAIKey),
		model:  model,
	}
}

// Translate issues a single chat completion asking for the translation.
func (p *OpenAIProvider) Translate(ctx context.Context, text, target string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: translationPrompt(text, target),
			},
		},
		Temperature: 0.3,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// translationPrompt builds the instruction shared by the chat-model
// providers. The catalog name reads better in a prompt than a bare code.
func translationPrompt(text, target string) string {
	languageName := target
	if name, ok := NameForCode(target); ok {
		languageName = name
	}
	return fmt.Sprintf("Translate the following text into %s. Respond with only the translation, nothing else.\n\n%s",
		languageName, text)
}
