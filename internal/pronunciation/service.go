package pronunciation

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/lernhelfer/internal"
	"codeberg.org/snonux/lernhelfer/internal/audio"
)

// Guidance is the payload returned for a pronunciation request.
type Guidance struct {
	Text      string
	Tips      []string
	IPA       string // empty in degraded mode
	AudioFile string // empty when no synthesizer is available
}

// Service builds pronunciation guidance. The primary service combines tips,
// an IPA breakdown and OpenAI-synthesized audio; the fallback uses espeak-ng
// without IPA, or tips only when no synthesizer exists at all.
type Service struct {
	name     string
	provider audio.Provider // nil means tips only
	fetcher  *IPAFetcher    // nil skips the IPA breakdown
	audioDir string
	format   string
	logger   zerolog.Logger
}

// NewService creates a pronunciation service.
func NewService(name string, provider audio.Provider, fetcher *IPAFetcher, audioDir, format string, logger zerolog.Logger) *Service {
	if format == "" {
		format = "mp3"
	}
	return &Service{
		name:     name,
		provider: provider,
		fetcher:  fetcher,
		audioDir: audioDir,
		format:   format,
		logger:   logger,
	}
}

// Guide assembles the guidance for a word or short phrase. Audio synthesis
// failures fail the request; IPA failures are logged and skipped since tips
// and audio remain useful without them.
func (s *Service) Guide(ctx context.Context, text string) (*Guidance, error) {
	guidance := &Guidance{
		Text: text,
		Tips: Tips(text),
	}

	if s.fetcher != nil {
		ipa, err := s.fetcher.Fetch(ctx, text)
		if err != nil {
			s.logger.Warn().Err(err).Str("word", text).Msg("IPA lookup failed")
		} else {
			guidance.IPA = ipa
		}
	}

	if s.provider != nil {
		name := internal.SanitizeFilename(text) + "_" + internal.CacheKey(text)[:8]
		outputFile := filepath.Join(s.audioDir, name+"."+s.format)
		if err := s.provider.GenerateAudio(ctx, text, outputFile); err != nil {
			return nil, fmt.Errorf("audio synthesis failed: %w", err)
		}
		// espeak rewrites .mp3 to .wav
		if s.provider.Name() == "espeak-ng" && s.format == "mp3" {
			outputFile = outputFile[:len(outputFile)-len(".mp3")] + ".wav"
		}
		guidance.AudioFile = outputFile
	}

	return guidance, nil
}

// Serve implements capability.Backend.
func (s *Service) Serve(ctx context.Context, text string) (any, error) {
	return s.Guide(ctx, text)
}

// Name implements capability.Backend.
func (s *Service) Name() string {
	return s.name
}
