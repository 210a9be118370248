package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"codeberg.org/snonux/lernhelfer/internal/analysis"
	"codeberg.org/snonux/lernhelfer/internal/audio"
	"codeberg.org/snonux/lernhelfer/internal/capability"
	"codeberg.org/snonux/lernhelfer/internal/cli"
	"codeberg.org/snonux/lernhelfer/internal/grammar"
	"codeberg.org/snonux/lernhelfer/internal/logging"
	"codeberg.org/snonux/lernhelfer/internal/menu"
	"codeberg.org/snonux/lernhelfer/internal/pronunciation"
	"codeberg.org/snonux/lernhelfer/internal/store"
	"codeberg.org/snonux/lernhelfer/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	logger, err := logging.New(flags.LogLevel, flags.LogFile)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	if flags.OneShotCount() > 1 {
		return fmt.Errorf("only one of --translate, --analyze, --correct and --pronounce may be given")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	registry, err := buildRegistry(flags, logger)
	if err != nil {
		return fmt.Errorf("failed to build capability registry: %w", err)
	}

	// Probe every optional backend exactly once. A failed probe degrades
	// the feature to its fallback, it never aborts startup.
	for _, c := range registry.ProbeAll(ctx) {
		if c.Status == capability.StatusDegraded {
			logger.Warn().
				Str("capability", string(c.ID)).
				Str("reason", c.Reason).
				Msg("running in reduced mode")
		} else {
			logger.Debug().Str("capability", string(c.ID)).Msg("available")
		}
	}

	if flags.OneShotCount() == 1 {
		return runOneShot(ctx, registry, flags)
	}

	// Notebook failures are not fatal, the menu works without it
	notebook, err := store.Open(flags.NotebookPath)
	if err != nil {
		logger.Warn().Err(err).Msg("vocabulary notebook is unavailable")
		notebook = nil
	} else {
		defer notebook.Close()
	}

	autoplay := !flags.NoAutoPlay && !flags.NoAudio
	return menu.New(registry, notebook, autoplay, logger).Run(ctx)
}

// runOneShot dispatches a single request from the command line and prints the
// result to stdout.
func runOneShot(ctx context.Context, registry *capability.Registry, flags *cli.Flags) error {
	requests := []struct {
		id   capability.ID
		text string
	}{
		{capability.Translation, flags.Translate},
		{capability.Analysis, flags.Analyze},
		{capability.GrammarCheck, flags.Correct},
		{capability.Pronunciation, flags.Pronounce},
	}

	for _, req := range requests {
		if req.text == "" {
			continue
		}
		result, err := registry.Dispatch(ctx, capability.Request{
			Capability: req.id,
			Text:       req.text,
		})
		if err != nil {
			return err
		}
		fmt.Println(menu.RenderResult(result))
	}
	return nil
}

// buildRegistry wires the four capabilities, each with a primary backend, a
// startup probe and a fallback that works without network or external tools.
func buildRegistry(flags *cli.Flags, logger zerolog.Logger) (*capability.Registry, error) {
	registry := capability.NewRegistry()

	openaiKey := cli.GetOpenAIKey()
	geminiKey := cli.GetGeminiKey()

	// Translation: LLM primary, built-in A1 glossary fallback
	var engine translation.Engine
	var translationProbe capability.Probe
	switch flags.Provider {
	case "gemini":
		engine = translation.NewGeminiEngine(geminiKey, "")
		translationProbe = keyProbe("GEMINI_API_KEY", geminiKey)
	default:
		engine = translation.NewOpenAIEngine(openaiKey, "")
		translationProbe = keyProbe("OPENAI_API_KEY", openaiKey)
	}
	translator := translation.NewTranslator(engine, translation.NewDictionary(), flags.TargetLang, logger)
	if err := registry.Register(capability.Registration{
		ID:       capability.Translation,
		Probe:    translationProbe,
		Primary:  translator,
		Fallback: translation.NewGlossary(),
	}); err != nil {
		return nil, err
	}

	// Analysis: LLM primary, heuristic tagger fallback
	llm := analysis.NewLLMAnalyzer(openaiKey, "")
	if err := registry.Register(capability.Registration{
		ID:       capability.Analysis,
		Probe:    func(ctx context.Context) error { return llm.IsAvailable() },
		Primary:  llm,
		Fallback: analysis.NewHeuristicAnalyzer(),
	}); err != nil {
		return nil, err
	}

	// Grammar check: LanguageTool primary, rule-based spell hints fallback
	languageTool := grammar.NewLanguageTool(cli.GetLanguageToolJar(flags.LanguageToolJar), "")
	if err := registry.Register(capability.Registration{
		ID:       capability.GrammarCheck,
		Probe:    func(ctx context.Context) error { return languageTool.IsAvailable() },
		Primary:  languageTool,
		Fallback: grammar.NewSpellChecker(),
	}); err != nil {
		return nil, err
	}

	// Pronunciation: OpenAI TTS with IPA primary, espeak-ng fallback.
	// Without espeak the fallback still serves articulation tips.
	audioDir := audioCacheDir()
	primaryProvider, primaryErr := buildOpenAIProvider(flags, openaiKey, audioDir)

	var fallbackProvider audio.Provider
	if !flags.NoAudio {
		espeakConfig := audio.DefaultESpeakConfig()
		espeakConfig.Voice = flags.ESpeakVoice
		espeakConfig.Speed = flags.ESpeakSpeed
		if p, err := audio.NewESpeakProvider(espeakConfig); err == nil {
			fallbackProvider = p
		} else {
			logger.Debug().Err(err).Msg("espeak-ng not available, fallback serves tips only")
		}
	}

	var fetcher *pronunciation.IPAFetcher
	if openaiKey != "" {
		fetcher = pronunciation.NewIPAFetcher(openaiKey)
	}

	if err := registry.Register(capability.Registration{
		ID: capability.Pronunciation,
		Probe: func(ctx context.Context) error {
			if primaryErr != nil {
				return primaryErr
			}
			return primaryProvider.IsAvailable()
		},
		Primary:  pronunciation.NewService("openai-tts", primaryProvider, fetcher, audioDir, flags.AudioFormat, logger),
		Fallback: pronunciation.NewService("espeak-ng", fallbackProvider, nil, audioDir, "wav", logger),
	}); err != nil {
		return nil, err
	}

	return registry, nil
}

func buildOpenAIProvider(flags *cli.Flags, openaiKey, audioDir string) (audio.Provider, error) {
	if flags.NoAudio {
		return nil, fmt.Errorf("audio synthesis disabled with --no-audio")
	}

	config := audio.DefaultProviderConfig()
	config.OpenAIKey = openaiKey
	config.OpenAIModel = flags.OpenAIModel
	config.OpenAIVoice = flags.OpenAIVoice
	config.OpenAISpeed = flags.OpenAISpeed
	config.OutputFormat = flags.AudioFormat
	config.CacheDir = audioDir
	config.EnableCache = true

	return audio.NewProvider(config)
}

func keyProbe(name, key string) capability.Probe {
	return func(ctx context.Context) error {
		if key == "" {
			return fmt.Errorf("%s is not set", name)
		}
		return nil
	}
}

func audioCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "lernhelfer", "audio")
}
