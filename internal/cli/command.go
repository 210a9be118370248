package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/lernhelfer/internal"
	"codeberg.org/snonux/lernhelfer/internal/grammar"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lernhelfer",
		Short: "German learning helper",
		Long: `lernhelfer is a console helper for German learners at A1 level.

It translates between German and Chinese, analyzes grammar, checks
spelling, and generates pronunciation guidance with audio. Optional
backends (LanguageTool, OpenAI, espeak-ng) are probed at startup;
missing ones degrade the matching feature instead of breaking it.

Examples:
  lernhelfer                             # Interactive menu (default)
  lernhelfer --translate "Guten Morgen"  # One-shot translation
  lernhelfer --correct "Ich lernen Deutsch."`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	home, _ := os.UserHomeDir()
	defaultNotebook := filepath.Join(home, ".local", "state", "lernhelfer", "notebook.db")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.lernhelfer.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.TargetLang, "target-lang", flags.TargetLang, "Target language for German input")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider (openai or gemini)")
	cmd.Flags().StringVar(&flags.NotebookPath, "notebook", defaultNotebook, "Vocabulary notebook database path")
	cmd.Flags().BoolVar(&flags.NoAudio, "no-audio", false, "Disable audio synthesis entirely")
	cmd.Flags().BoolVar(&flags.NoAutoPlay, "no-auto-play", false, "Disable automatic audio playback")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "Also write JSON logs to this file")

	// One-shot flags
	cmd.Flags().StringVar(&flags.Translate, "translate", "", "Translate the given text and exit")
	cmd.Flags().StringVar(&flags.Analyze, "analyze", "", "Analyze the given German sentence and exit")
	cmd.Flags().StringVar(&flags.Correct, "correct", "", "Check the given German sentence and exit")
	cmd.Flags().StringVar(&flags.Pronounce, "pronounce", "", "Pronunciation guide for the given word and exit")

	// Grammar engine flags
	cmd.Flags().StringVar(&flags.LanguageToolJar, "languagetool-jar", "", "Path to the LanguageTool jar (default $"+grammar.EnvLanguageToolJar+")")

	// OpenAI TTS flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.OpenAIVoice, "openai-voice", flags.OpenAIVoice, "OpenAI voice: alloy, ash, coral, echo, nova, ...")
	cmd.Flags().Float64Var(&flags.OpenAISpeed, "openai-speed", flags.OpenAISpeed, "OpenAI speech speed (0.25 to 4.0)")
	cmd.Flags().StringVar(&flags.AudioFormat, "format", flags.AudioFormat, "Audio format (mp3 or wav)")

	// espeak-ng fallback flags
	cmd.Flags().StringVar(&flags.ESpeakVoice, "espeak-voice", flags.ESpeakVoice, "espeak-ng voice variant: de, de+m1, de+f1, ...")
	cmd.Flags().IntVar(&flags.ESpeakSpeed, "espeak-speed", flags.ESpeakSpeed, "espeak-ng speed in words per minute (80 to 450)")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translation.target", cmd.Flags().Lookup("target-lang"))
	viper.BindPFlag("translation.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("grammar.languagetool_jar", cmd.Flags().Lookup("languagetool-jar"))
	viper.BindPFlag("audio.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("audio.openai_voice", cmd.Flags().Lookup("openai-voice"))
	viper.BindPFlag("audio.openai_speed", cmd.Flags().Lookup("openai-speed"))
	viper.BindPFlag("audio.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("audio.espeak_voice", cmd.Flags().Lookup("espeak-voice"))
	viper.BindPFlag("audio.espeak_speed", cmd.Flags().Lookup("espeak-speed"))
	viper.BindPFlag("notebook.path", cmd.Flags().Lookup("notebook"))
	viper.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
	viper.BindPFlag("log.file", cmd.Flags().Lookup("log-file"))
}

// InitConfig initializes viper configuration and loads a .env file when one
// is present in the working directory.
func InitConfig(cfgFile string) {
	// A missing .env file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".lernhelfer" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".lernhelfer")
	}

	// Environment variables
	viper.SetEnvPrefix("LERNHELFER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("gemini_key")
}

// GetLanguageToolJar resolves the LanguageTool jar path from flag,
// environment or config.
func GetLanguageToolJar(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if jar := os.Getenv(grammar.EnvLanguageToolJar); jar != "" {
		return jar
	}
	return viper.GetString("grammar.languagetool_jar")
}
