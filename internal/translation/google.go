package translation

import (
	"context"
	"fmt"
	"html"

	"cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleProvider translates text with the Google Cloud Translation API (v2).
type GoogleProvider struct {
	client *translate.Client
}

// NewGoogleProvider creates a provider authenticated with the given service
// account key JSON.
func NewGoogleProvider(ctx context.Context, credentialsJSON []byte) (*GoogleProvider, error) {
	client, err := translate.NewClient(ctx, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("creating translation client: %w", err)
	}
	return &GoogleProvider{client: client}, nil
}

// Translate issues a single translation request.
func (g *GoogleProvider) Translate(ctx context.Context, text, target string) (string, error) {
	tag, err := language.Parse(target)
	if err != nil {
		return "", fmt.Errorf("invalid target language %q: %w", target, err)
	}

	translations, err := g.client.Translate(ctx, []string{text}, tag, nil)
	if err != nil {
		return "", fmt.Errorf("translation API error: %w", err)
	}
	if len(translations) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	// The API HTML-escapes its output
	return html.UnescapeString(translations[0].Text), nil
}

// Name returns the provider name
func (g *GoogleProvider) Name() string {
	return "google"
}

// Close releases the underlying client connection.
func (g *GoogleProvider) Close() error {
	return g.client.Close()
}
