package pronunciation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const ipaTimeout = 30 * time.Second

// IPAFetcher fetches IPA transcriptions and per-symbol explanations for
// German words from the OpenAI API.
type IPAFetcher struct {
	apiKey string
	client *openai.Client
}

// NewIPAFetcher creates a new IPA fetcher.
func NewIPAFetcher(apiKey string) *IPAFetcher {
	return &IPAFetcher{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// Fetch returns a formatted IPA breakdown for the given word.
func (f *IPAFetcher) Fetch(ctx context.Context, word string) (string, error) {
	if f.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, ipaTimeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You are a German pronunciation coach for beginners. Provide IPA transcriptions " +
					"and explain each symbol with familiar English sound comparisons where possible.",
			},
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(`For the German word '%s':
1. Give the complete IPA transcription
2. Break down each phonetic symbol
3. For every symbol, explain how it sounds using English examples, or describe mouth position if no English equivalent exists
4. Mark the stressed syllable

Example format:
Word: [IPA transcription]
• /h/ - like 'h' in English 'house'
• /aʊ̯/ - like 'ow' in 'how'
• /ˈ/ - stress mark (following syllable is stressed)`, word),
			},
		},
		Temperature: 0.3,
		MaxTokens:   500,
	}

	resp, err := f.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
