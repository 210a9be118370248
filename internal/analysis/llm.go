package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const llmTimeout = 30 * time.Second

// LLMAnalyzer is the primary analyzer, delegating POS and morphology tagging
// to the OpenAI chat API.
type LLMAnalyzer struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewLLMAnalyzer creates a new LLM-backed analyzer.
func NewLLMAnalyzer(apiKey, model string) *LLMAnalyzer {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &LLMAnalyzer{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

// IsAvailable checks whether the analyzer is configured.
func (a *LLMAnalyzer) IsAvailable() error {
	if a.apiKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}

// Analyze requests a structured analysis of the German sentence.
func (a *LLMAnalyzer) Analyze(ctx context.Context, text string) (*Analysis, error) {
	if err := a.IsAvailable(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You are a German grammar expert. Analyze German sentences token by token. " +
					"Respond with JSON only, in the form " +
					`{"tokens":[{"text":"","lemma":"","pos":"","gloss":""}],"tense":""}. ` +
					"Use universal POS tags (NOUN, VERB, AUX, DET, PRON, ADP, ADV, ADJ, CCONJ, SCONJ, PUNCT, ...). " +
					"In gloss, explain case, gender, number, person and tense where relevant, briefly and in English. " +
					"For tense, name the German tense: Präsens, Präteritum, Perfekt, Plusquamperfekt or Futur.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Analyze: %s", text),
			},
		},
		Temperature: 0.1,
		MaxTokens:   800,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no analysis returned")
	}

	var result Analysis
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}
	if len(result.Tokens) == 0 {
		return nil, fmt.Errorf("analysis response contained no tokens")
	}

	return &result, nil
}

// Serve implements capability.Backend.
func (a *LLMAnalyzer) Serve(ctx context.Context, text string) (any, error) {
	return a.Analyze(ctx, text)
}

// Name implements capability.Backend.
func (a *LLMAnalyzer) Name() string {
	return "openai"
}
