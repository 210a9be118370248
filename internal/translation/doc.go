// Package translation provides German/Chinese translation with automatic
// direction detection. The primary path delegates to a configurable LLM
// engine (OpenAI or Gemini); without a configured engine the capability
// degrades to an offline A1 glossary. Short German inputs additionally get
// per-word dictionary explanations.
package translation
