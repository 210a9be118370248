// Package logging configures the zerolog logger shared by all components:
// human-readable console output plus an optional JSON log file.
package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New constructs a logger for the given level, writing console output to
// stderr so interactive menu output on stdout stays clean. When logFile is
// non-empty, entries are additionally written there as JSON.
func New(level, logFile string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	var writer zerolog.LevelWriter = zerolog.MultiLevelWriter(consoleWriter)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("failed to open log file: %w", err)
		}
		writer = zerolog.MultiLevelWriter(consoleWriter, f)
	}

	return zerolog.New(writer).With().Timestamp().Logger().Level(lvl), nil
}
