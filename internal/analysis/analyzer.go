// Package analysis provides part-of-speech and morphology analysis for
// German sentences, with an LLM-backed analyzer and an offline heuristic
// fallback built on small lexicon tables.
package analysis

// Token is the analysis of a single word in the input sentence.
type Token struct {
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	POS   string `json:"pos"`   // universal tag: NOUN, VERB, DET, ...
	Gloss string `json:"gloss"` // short human-readable explanation
}

// Analysis is the payload returned for an analysis request.
type Analysis struct {
	Tokens []Token `json:"tokens"`
	Tense  string  `json:"tense"` // sentence-level tense classification
}
