package audio

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ESpeakConfig holds configuration for espeak-ng audio generation
type ESpeakConfig struct {
	Voice     string // Voice variant (e.g., "de", "de+m1", "de+f1")
	Speed     int    // Speech speed in words per minute (default: 140)
	Pitch     int    // Pitch adjustment, 0 to 99 (default: 50)
	Amplitude int    // Volume/amplitude, 0 to 200 (default: 100)
	WordGap   int    // Gap between words in 10ms units (default: 0)
}

// DefaultESpeakConfig returns the default configuration for the German voice
func DefaultESpeakConfig() *ESpeakConfig {
	return &ESpeakConfig{
		Voice:     "de",
		Speed:     140,
		Pitch:     50,
		Amplitude: 100,
		WordGap:   0,
	}
}

// ESpeak provides an interface to the espeak-ng text-to-speech engine
type ESpeak struct {
	config *ESpeakConfig
}

// NewESpeak creates a new ESpeak instance with the given configuration
func NewESpeak(config *ESpeakConfig) (*ESpeak, error) {
	if err := checkESpeakInstalled(); err != nil {
		return nil, err
	}

	if config == nil {
		config = DefaultESpeakConfig()
	}
	if config.Voice == "" {
		config.Voice = "de"
	}
	if config.Speed == 0 {
		config.Speed = 140
	}
	config.Speed = clampSpeed(config.Speed)

	return &ESpeak{config: config}, nil
}

// GenerateAudio generates a WAV file for the given German text
func (e *ESpeak) GenerateAudio(text string, outputFile string) error {
	if text == "" {
		return fmt.Errorf("text cannot be empty")
	}

	dir := filepath.Dir(outputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	args := []string{
		"-v", e.config.Voice,
		"-s", fmt.Sprintf("%d", e.config.Speed),
		"-p", fmt.Sprintf("%d", e.config.Pitch),
		"-a", fmt.Sprintf("%d", e.config.Amplitude),
	}

	if e.config.WordGap > 0 {
		args = append(args, "-g", fmt.Sprintf("%d", e.config.WordGap))
	}

	args = append(args, "-w", outputFile, text)

	cmd := exec.Command("espeak-ng", args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("espeak-ng failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}

// clampSpeed limits the speech speed to espeak-ng's supported range
func clampSpeed(speed int) int {
	if speed < 80 {
		return 80
	}
	if speed > 450 {
		return 450
	}
	return speed
}

// checkESpeakInstalled verifies the espeak-ng binary is on PATH
func checkESpeakInstalled() error {
	if _, err := exec.LookPath("espeak-ng"); err != nil {
		return fmt.Errorf("espeak-ng is not installed or not in PATH: %w", err)
	}
	return nil
}
