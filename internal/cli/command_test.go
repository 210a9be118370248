package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd == nil {
		t.Fatal("CreateRootCommand() returned nil")
	}
	if cmd.Use != "lernhelfer" {
		t.Errorf("Use = %q, want %q", cmd.Use, "lernhelfer")
	}
	if cmd.Version == "" {
		t.Error("Version should be set")
	}

	// All flags should be registered
	for _, name := range []string{
		"config", "target-lang", "provider", "notebook", "no-audio",
		"no-auto-play", "log-level", "log-file", "translate", "analyze",
		"correct", "pronounce", "languagetool-jar", "openai-model",
		"openai-voice", "openai-speed", "format", "espeak-voice",
		"espeak-speed",
	} {
		t.Run("flag_"+name, func(t *testing.T) {
			var flag *pflag.Flag
			if name == "config" {
				flag = cmd.PersistentFlags().Lookup(name)
			} else {
				flag = cmd.Flags().Lookup(name)
			}
			if flag == nil {
				t.Errorf("expected flag %s to exist", name)
			}
		})
	}
}

func TestCreateRootCommand_FlagParsing(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	cmd.SetArgs([]string{
		"--translate", "Guten Morgen",
		"--provider", "gemini",
		"--no-auto-play",
	})
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return nil }

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if flags.Translate != "Guten Morgen" {
		t.Errorf("Translate = %q, want %q", flags.Translate, "Guten Morgen")
	}
	if flags.Provider != "gemini" {
		t.Errorf("Provider = %q, want %q", flags.Provider, "gemini")
	}
	if !flags.NoAutoPlay {
		t.Error("NoAutoPlay should be true")
	}
}

func TestGetOpenAIKey_Environment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key-123")

	if got := GetOpenAIKey(); got != "test-key-123" {
		t.Errorf("GetOpenAIKey() = %q, want %q", got, "test-key-123")
	}
}

func TestGetGeminiKey_Environment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gm-key-456")

	if got := GetGeminiKey(); got != "gm-key-456" {
		t.Errorf("GetGeminiKey() = %q, want %q", got, "gm-key-456")
	}
}

func TestGetLanguageToolJar(t *testing.T) {
	t.Setenv("LANGUAGETOOL_JAR", "/opt/lt/languagetool.jar")

	if got := GetLanguageToolJar(""); got != "/opt/lt/languagetool.jar" {
		t.Errorf("GetLanguageToolJar(\"\") = %q, want env value", got)
	}

	// Flag value wins over environment
	if got := GetLanguageToolJar("/tmp/other.jar"); got != "/tmp/other.jar" {
		t.Errorf("GetLanguageToolJar(flag) = %q, want flag value", got)
	}
}
