package grammar

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Rule inspects text and reports zero or more issues. The fallback checker is
// just an ordered rule list, so callers can swap in their own rules.
type Rule func(text string) []Issue

// SpellChecker is the degraded-mode checker used when the LanguageTool
// runtime is unavailable. It only suggests; it never rewrites the text.
type SpellChecker struct {
	rules []Rule
}

// NewSpellChecker creates a checker with the given rules, defaulting to
// DefaultRules.
func NewSpellChecker(rules ...Rule) *SpellChecker {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &SpellChecker{rules: rules}
}

// Check runs all rules over the text.
func (s *SpellChecker) Check(ctx context.Context, text string) (*Report, error) {
	report := &Report{
		Original:  text,
		Corrected: text,
		Limited:   true,
	}
	for _, rule := range s.rules {
		report.Issues = append(report.Issues, rule(text)...)
	}
	return report, nil
}

// Serve implements capability.Backend.
func (s *SpellChecker) Serve(ctx context.Context, text string) (any, error) {
	return s.Check(ctx, text)
}

// Name implements capability.Backend.
func (s *SpellChecker) Name() string {
	return "spellcheck"
}

// DefaultRules returns the built-in rule set: umlaut digraph hints, article
// agreement pairs, subject-verb agreement for singular pronouns, sentence
// capitalization and terminal punctuation.
func DefaultRules() []Rule {
	rules := []Rule{
		SubstringRule("ae", "ä", "'ae' is usually written 'ä'", "Spelling"),
		SubstringRule("oe", "ö", "'oe' is usually written 'ö'", "Spelling"),
		SubstringRule("ue", "ü", "'ue' is usually written 'ü'", "Spelling"),
		SubstringRule("ss", "ß", "'ss' after a long vowel is written 'ß'", "Spelling"),
		SubstringRule("ein der", "ein", "article repetition, use 'ein'", "Grammar"),
		SubstringRule("ein die", "eine", "article disagreement, use 'eine'", "Grammar"),
		SubstringRule("ein das", "ein", "article repetition, use 'ein'", "Grammar"),
		SubstringRule("eine der", "ein", "article disagreement, use 'ein'", "Grammar"),
		SubstringRule("eine das", "ein", "article disagreement, use 'ein'", "Grammar"),
		agreementRule,
		capitalizationRule,
		punctuationRule,
	}
	return rules
}

// SubstringRule flags each occurrence of find with a suggested replacement.
func SubstringRule(find, suggest, message, category string) Rule {
	return func(text string) []Issue {
		var issues []Issue
		lower := strings.ToLower(text)
		for start := 0; ; {
			idx := strings.Index(lower[start:], find)
			if idx < 0 {
				break
			}
			offset := start + idx
			issues = append(issues, Issue{
				Message:      message,
				Offset:       offset,
				Length:       len(find),
				Category:     category,
				RuleID:       "HINT_" + strings.ToUpper(strings.ReplaceAll(find, " ", "_")),
				Replacements: []string{suggest},
			})
			start = offset + len(find)
		}
		return issues
	}
}

// conjugate maps singular pronouns to the ending replacing the infinitive
// -en.
var conjugate = map[string]string{
	"ich": "e",
	"du":  "st",
	"er":  "t",
	"es":  "t",
}

// agreementRule flags an infinitive directly following a singular pronoun,
// e.g. "ich lernen" -> "lerne".
func agreementRule(text string) []Issue {
	var issues []Issue
	words := fieldsWithOffsets(text)

	for i := 0; i+1 < len(words); i++ {
		pronoun := strings.ToLower(words[i].text)
		ending, ok := conjugate[pronoun]
		if !ok {
			continue
		}
		verb := words[i+1].text
		lower := strings.ToLower(verb)
		if !strings.HasSuffix(lower, "en") || len(lower) <= 3 {
			continue
		}
		stem := verb[:len(verb)-len("en")]
		suggestion := stem + ending
		if ending != "e" && needsEpenthesis(stem) {
			suggestion = stem + "e" + ending
		}
		issues = append(issues, Issue{
			Message:      fmt.Sprintf("verb %q does not agree with %q", verb, words[i].text),
			Offset:       words[i+1].offset,
			Length:       len(verb),
			Category:     "Grammar",
			RuleID:       "SUBJECT_VERB_AGREEMENT",
			Replacements: []string{suggestion},
		})
	}
	return issues
}

// needsEpenthesis reports whether a verb stem takes an extra -e- before the
// -st/-t endings: stems ending in d or t ("arbeit" -> "arbeitet") and stems
// ending in m or n after another consonant ("regn" -> "regnet"). Stems like
// "lern" (m/n after l or r) conjugate without it.
func needsEpenthesis(stem string) bool {
	runes := []rune(strings.ToLower(stem))
	if len(runes) == 0 {
		return false
	}
	last := runes[len(runes)-1]
	if last == 'd' || last == 't' {
		return true
	}
	if (last == 'm' || last == 'n') && len(runes) >= 2 {
		switch runes[len(runes)-2] {
		case 'a', 'e', 'i', 'o', 'u', 'ä', 'ö', 'ü', 'l', 'r', 'm', 'n', 'h':
			return false
		}
		return true
	}
	return false
}

// capitalizationRule flags a lowercase sentence start.
func capitalizationRule(text string) []Issue {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	first := []rune(trimmed)[0]
	if !unicode.IsLetter(first) || !unicode.IsLower(first) {
		return nil
	}
	return []Issue{{
		Message:      "German sentences start with a capital letter",
		Offset:       strings.Index(text, trimmed),
		Length:       len(string(first)),
		Category:     "Casing",
		RuleID:       "SENTENCE_CAPITALIZATION",
		Replacements: []string{string(unicode.ToUpper(first))},
	}}
}

// punctuationRule flags a missing terminal punctuation mark.
func punctuationRule(text string) []Issue {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasSuffix(trimmed, ".") ||
		strings.HasSuffix(trimmed, "!") || strings.HasSuffix(trimmed, "?") {
		return nil
	}
	return []Issue{{
		Message:      "sentence should end with punctuation",
		Offset:       len(text),
		Length:       0,
		Category:     "Punctuation",
		RuleID:       "TERMINAL_PUNCTUATION",
		Replacements: []string{trimmed + "."},
	}}
}

type wordAt struct {
	text   string
	offset int
}

// fieldsWithOffsets splits text into words, keeping each word's byte offset
// and stripping surrounding punctuation.
func fieldsWithOffsets(text string) []wordAt {
	var words []wordAt
	start := -1
	for i, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words = append(words, wordAt{text: text[start:i], offset: start})
			start = -1
		}
	}
	if start >= 0 {
		words = append(words, wordAt{text: text[start:], offset: start})
	}
	return words
}
