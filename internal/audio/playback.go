package audio

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// linuxPlayers are tried in order; the first one found on PATH wins.
var linuxPlayers = [][]string{
	{"mpg123", "-q"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
	{"play", "-q"},
	{"paplay"},
	{"aplay", "-q"},
}

// PlayFile plays an audio file through a platform audio player and waits for
// it to finish.
func PlayFile(audioFile string) error {
	if audioFile == "" {
		return fmt.Errorf("no audio file to play")
	}
	if _, err := os.Stat(audioFile); err != nil {
		return fmt.Errorf("audio file not found: %w", err)
	}

	cmd, err := playCommand(audioFile)
	if err != nil {
		return err
	}

	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("audio playback failed: %w\nOutput: %s", err, string(output))
	}
	return nil
}

func playCommand(audioFile string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("afplay", audioFile), nil
	case "linux":
		for _, player := range linuxPlayers {
			// aplay and paplay only handle WAV
			if (player[0] == "aplay" || player[0] == "paplay") && !strings.HasSuffix(audioFile, ".wav") {
				continue
			}
			if _, err := exec.LookPath(player[0]); err == nil {
				args := append(player[1:], audioFile)
				return exec.Command(player[0], args...), nil
			}
		}
		return nil, fmt.Errorf("no audio player found (tried mpg123, ffplay, play, paplay, aplay)")
	case "windows":
		return exec.Command("cmd", "/c", "start", "/min", audioFile), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}
