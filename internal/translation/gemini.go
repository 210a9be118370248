package translation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiEngine translates via the Google Gemini API.
type GeminiEngine struct {
	apiKey string
	model  string
}

// NewGeminiEngine creates a new Gemini translation engine.
func NewGeminiEngine(apiKey, model string) *GeminiEngine {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiEngine{apiKey: apiKey, model: model}
}

// Translate translates text between the given languages.
func (e *GeminiEngine) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if e.apiKey == "" {
		return "", fmt.Errorf("Gemini API key not found")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  e.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	prompt := fmt.Sprintf("Translate the following text from %s to %s. Respond with only the translation, nothing else.\n\n%s",
		languageName(sourceLang), languageName(targetLang), text)

	resp, err := client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translated := strings.TrimSpace(resp.Text())
	if translated == "" {
		return "", fmt.Errorf("no translation returned")
	}

	return translated, nil
}

// Name returns the engine name.
func (e *GeminiEngine) Name() string {
	return "gemini"
}
