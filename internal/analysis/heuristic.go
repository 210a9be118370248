package analysis

import (
	"context"
	"strings"
	"unicode"
)

// HeuristicAnalyzer is the offline fallback analyzer. It tags tokens from
// small lexicon tables and suffix heuristics; coverage is rough but needs no
// external backend.
type HeuristicAnalyzer struct{}

// NewHeuristicAnalyzer creates the fallback analyzer.
func NewHeuristicAnalyzer() *HeuristicAnalyzer {
	return &HeuristicAnalyzer{}
}

// Analyze tags each token and classifies the sentence tense.
func (a *HeuristicAnalyzer) Analyze(ctx context.Context, text string) (*Analysis, error) {
	words := tokenize(text)
	tokens := make([]Token, 0, len(words))
	for i, word := range words {
		tokens = append(tokens, a.tag(word, i == 0))
	}

	return &Analysis{
		Tokens: tokens,
		Tense:  classifyTense(tokens),
	}, nil
}

// Serve implements capability.Backend.
func (a *HeuristicAnalyzer) Serve(ctx context.Context, text string) (any, error) {
	return a.Analyze(ctx, text)
}

// Name implements capability.Backend.
func (a *HeuristicAnalyzer) Name() string {
	return "heuristic"
}

// tokenize splits a sentence into words and punctuation tokens.
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush()
		case unicode.IsPunct(r):
			flush()
			tokens = append(tokens, string(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return tokens
}

func (a *HeuristicAnalyzer) tag(word string, sentenceInitial bool) Token {
	lower := strings.ToLower(word)
	token := Token{Text: word, Lemma: lower}

	switch {
	case len(word) == 1 && unicode.IsPunct([]rune(word)[0]):
		token.POS = "PUNCT"
		token.Lemma = word
	case determiners[lower] != "":
		token.POS = "DET"
		token.Gloss = determiners[lower]
	case pronouns[lower] != "":
		token.POS = "PRON"
		token.Gloss = pronouns[lower]
	case isAuxiliary(lower):
		aux := auxiliaries[lower]
		token.POS = "AUX"
		token.Lemma = aux.Lemma
		token.Gloss = tenseName(aux.Tense) + " auxiliary"
	case prepositions[lower]:
		token.POS = "ADP"
	case conjunctions[lower] != "":
		token.POS = conjunctions[lower]
	case adverbs[lower]:
		token.POS = "ADV"
	case isPastParticiple(word) && !isCapitalizedNoun(word, sentenceInitial):
		token.POS = "VERB"
		token.Lemma = participleLemma(lower)
		token.Gloss = "past participle"
	case isCapitalizedNoun(word, sentenceInitial) || hasNounSuffix(lower):
		token.POS = "NOUN"
		token.Lemma = word
	case strings.HasSuffix(lower, "en") && len(lower) > 3:
		token.POS = "VERB"
		token.Gloss = "infinitive or plural form"
	case isPreteriteVerb(lower):
		token.POS = "VERB"
		token.Lemma = preteriteLemma(lower)
		token.Gloss = "past tense (Präteritum)"
	case isFiniteVerb(lower):
		token.POS = "VERB"
		token.Lemma = finiteLemma(lower)
		token.Gloss = "conjugated present form"
	default:
		token.POS = "X"
	}

	if token.Gloss == "" && token.POS != "PUNCT" {
		token.Gloss = POSGloss(token.POS)
	}
	return token
}

func isAuxiliary(lower string) bool {
	_, ok := auxiliaries[lower]
	return ok
}

// isCapitalizedNoun treats mid-sentence capitalized words as nouns, the most
// reliable signal German offers an offline tagger.
func isCapitalizedNoun(word string, sentenceInitial bool) bool {
	if sentenceInitial {
		return false
	}
	r := []rune(word)[0]
	return unicode.IsUpper(r)
}

func hasNounSuffix(lower string) bool {
	for _, suffix := range nounSuffixes {
		if strings.HasSuffix(lower, suffix) && len(lower) > len(suffix)+2 {
			return true
		}
	}
	return false
}

// isFiniteVerb matches conjugated present-tense endings.
func isFiniteVerb(lower string) bool {
	for _, suffix := range []string{"st", "t", "e"} {
		if strings.HasSuffix(lower, suffix) && len(lower) > len(suffix)+2 {
			return true
		}
	}
	return false
}

func finiteLemma(lower string) string {
	for _, suffix := range []string{"est", "st", "et", "t", "e"} {
		if strings.HasSuffix(lower, suffix) && len(lower) > len(suffix)+2 {
			return strings.TrimSuffix(lower, suffix) + "en"
		}
	}
	return lower
}

func preteriteLemma(lower string) string {
	for _, suffix := range []string{"tetest", "teten", "tetet", "tete", "test", "ten", "tet", "te"} {
		if strings.HasSuffix(lower, suffix) && len(lower) > len(suffix)+2 {
			return strings.TrimSuffix(lower, suffix) + "en"
		}
	}
	return lower
}

func participleLemma(lower string) string {
	stem := strings.TrimPrefix(lower, "ge")
	stem = strings.TrimSuffix(stem, "t")
	if strings.HasSuffix(stem, "en") {
		return stem
	}
	return stem + "en"
}

func tenseName(tag string) string {
	switch tag {
	case "Pres":
		return "present"
	case "Past":
		return "past"
	default:
		return tag
	}
}

// classifyTense ports the sentence-level tense rules: auxiliary plus past
// participle yields Perfekt or Plusquamperfekt depending on the auxiliary's
// own tense, werden plus verb yields Futur, a Präteritum verb yields
// Präteritum, everything else is Präsens.
func classifyTense(tokens []Token) string {
	var hasAuxPres, hasAuxPast, hasParticiple, hasWerden, hasVerb, hasPastVerb bool

	for _, tok := range tokens {
		switch tok.POS {
		case "AUX":
			if tok.Lemma == "werden" {
				hasWerden = true
			}
			if strings.HasPrefix(tok.Gloss, "present") {
				hasAuxPres = true
			}
			if strings.HasPrefix(tok.Gloss, "past") {
				hasAuxPast = true
			}
		case "VERB":
			hasVerb = true
			if tok.Gloss == "past participle" {
				hasParticiple = true
			}
			if strings.HasPrefix(tok.Gloss, "past tense") {
				hasPastVerb = true
			}
		}
	}

	switch {
	case hasAuxPast && hasParticiple:
		return "Plusquamperfekt"
	case hasAuxPres && hasParticiple && !hasWerden:
		return "Perfekt"
	case hasWerden && hasVerb:
		return "Futur"
	case hasPastVerb || hasAuxPast:
		return "Präteritum"
	default:
		return "Präsens"
	}
}
