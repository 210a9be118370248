package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIEngine translates via the OpenAI chat completion API.
type OpenAIEngine struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAIEngine creates a new OpenAI translation engine.
func NewOpenAIEngine(apiKey, model string) *OpenAIEngine {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIEngine{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

// Translate translates text between the given languages.
func (e *OpenAIEngine) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if e.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	req := openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Translate the following text from %s to %s. Respond with only the translation, nothing else.\n\n%s",
					languageName(sourceLang), languageName(targetLang), text),
			},
		},
		MaxTokens:   200,
		Temperature: 0.3,
	}

	resp, err := e.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Name returns the engine name.
func (e *OpenAIEngine) Name() string {
	return "openai"
}

func languageName(code string) string {
	switch code {
	case "de":
		return "German"
	case "zh-CN":
		return "Simplified Chinese"
	case "en":
		return "English"
	default:
		return code
	}
}
