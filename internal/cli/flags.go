package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	TargetLang   string
	Provider     string // translation provider: "openai" or "gemini"
	NotebookPath string
	NoAudio      bool
	NoAutoPlay   bool
	LogLevel     string
	LogFile      string

	// One-shot mode flags, bypassing the interactive menu
	Translate string
	Analyze   string
	Correct   string
	Pronounce string

	// Grammar engine flags
	LanguageToolJar string

	// OpenAI TTS flags
	OpenAIModel string
	OpenAIVoice string
	OpenAISpeed float64
	AudioFormat string

	// espeak-ng fallback flags
	ESpeakVoice string
	ESpeakSpeed int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		TargetLang:  "zh-CN",
		Provider:    "openai",
		LogLevel:    "info",
		OpenAIModel: "gpt-4o-mini-tts",
		OpenAIVoice: "alloy",
		OpenAISpeed: 0.9,
		AudioFormat: "mp3",
		ESpeakVoice: "de",
		ESpeakSpeed: 140,
	}
}

// OneShotCount returns how many one-shot mode flags are set.
func (f *Flags) OneShotCount() int {
	count := 0
	for _, v := range []string{f.Translate, f.Analyze, f.Correct, f.Pronounce} {
		if v != "" {
			count++
		}
	}
	return count
}
