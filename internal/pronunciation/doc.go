// Package pronunciation provides pronunciation guidance for German words:
// rule-based tips for tricky digraphs and umlauts, an IPA breakdown fetched
// from the OpenAI API, and synthesized audio through an audio provider.
package pronunciation
