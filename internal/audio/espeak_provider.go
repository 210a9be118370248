package audio

import (
	"context"
	"strings"
)

// ESpeakProvider implements Provider interface for espeak-ng
type ESpeakProvider struct {
	espeak *ESpeak
}

// NewESpeakProvider creates a new espeak-ng provider
func NewESpeakProvider(config *ESpeakConfig) (Provider, error) {
	espeak, err := NewESpeak(config)
	if err != nil {
		return nil, err
	}

	return &ESpeakProvider{espeak: espeak}, nil
}

// GenerateAudio generates audio using espeak-ng. Only WAV output is
// supported; an .mp3 extension is rewritten to .wav.
func (p *ESpeakProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateGermanText(text); err != nil {
		return err
	}

	if strings.HasSuffix(outputFile, ".mp3") {
		outputFile = strings.TrimSuffix(outputFile, ".mp3") + ".wav"
	}

	return p.espeak.GenerateAudio(text, outputFile)
}

// Name returns the provider name
func (p *ESpeakProvider) Name() string {
	return "espeak-ng"
}

// IsAvailable checks if espeak-ng is installed
func (p *ESpeakProvider) IsAvailable() error {
	return checkESpeakInstalled()
}
