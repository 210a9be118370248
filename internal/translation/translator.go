package translation

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
)

// DefaultTargetLang is the language German text is translated into unless
// configured otherwise.
const DefaultTargetLang = "zh-CN"

const explanationWordLimit = 5

// Engine translates text between two languages.
type Engine interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
	Name() string
}

// WordExplanation is a dictionary gloss for a single word of the input.
type WordExplanation struct {
	Word    string
	Meaning string
}

// Outcome is the payload returned for a translation request.
type Outcome struct {
	Source       string
	Translated   string
	SourceLang   string
	TargetLang   string
	Explanations []WordExplanation
	Note         string // set by the glossary fallback
}

// Translator routes text through an Engine, detecting the translation
// direction from the input script.
type Translator struct {
	engine     Engine
	dictionary *Dictionary
	targetLang string
	logger     zerolog.Logger
}

// NewTranslator creates a translator around the given engine. The dictionary
// may be nil, in which case word explanations are skipped.
func NewTranslator(engine Engine, dictionary *Dictionary, targetLang string, logger zerolog.Logger) *Translator {
	if targetLang == "" {
		targetLang = DefaultTargetLang
	}
	return &Translator{
		engine:     engine,
		dictionary: dictionary,
		targetLang: targetLang,
		logger:     logger,
	}
}

// DetectDirection returns the source and target language for the given text.
// Text containing Han characters is treated as Chinese and translated to
// German; everything else is treated as German.
func DetectDirection(text, targetLang string) (source, target string) {
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			return targetLang, "de"
		}
	}
	return "de", targetLang
}

// Translate translates the text, picking the direction automatically. For
// short German inputs it also collects per-word dictionary explanations;
// explanation lookup failures are logged and skipped, they never fail the
// translation itself.
func (t *Translator) Translate(ctx context.Context, text string) (*Outcome, error) {
	source, target := DetectDirection(text, t.targetLang)

	translated, err := t.engine.Translate(ctx, text, source, target)
	if err != nil {
		return nil, fmt.Errorf("translation failed: %w", err)
	}
	t.logger.Info().
		Str("source", source).
		Str("target", target).
		Str("engine", t.engine.Name()).
		Msg("translated text")

	outcome := &Outcome{
		Source:     text,
		Translated: translated,
		SourceLang: source,
		TargetLang: target,
	}

	if source == "de" && t.dictionary != nil {
		outcome.Explanations = t.explainWords(ctx, text)
	}

	return outcome, nil
}

// Serve implements capability.Backend.
func (t *Translator) Serve(ctx context.Context, text string) (any, error) {
	return t.Translate(ctx, text)
}

// Name implements capability.Backend.
func (t *Translator) Name() string {
	return t.engine.Name()
}

func (t *Translator) explainWords(ctx context.Context, text string) []WordExplanation {
	words := strings.Fields(text)
	if len(words) > explanationWordLimit {
		return nil
	}

	var explanations []WordExplanation
	for _, word := range words {
		word = strings.Trim(word, ".,!?;:\"'()")
		if word == "" {
			continue
		}
		meaning, err := t.dictionary.Lookup(ctx, word)
		if err != nil {
			t.logger.Debug().Err(err).Str("word", word).Msg("dictionary lookup failed")
			continue
		}
		if meaning != "" {
			explanations = append(explanations, WordExplanation{Word: word, Meaning: meaning})
		}
	}
	return explanations
}
