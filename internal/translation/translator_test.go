package translation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// mockEngine implements Engine for testing
type mockEngine struct {
	result     string
	err        error
	lastSource string
	lastTarget string
	calls      int
}

func (m *mockEngine) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	m.calls++
	m.lastSource = sourceLang
	m.lastTarget = targetLang
	return m.result, m.err
}

func (m *mockEngine) Name() string {
	return "mock"
}

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantSource string
		wantTarget string
	}{
		{
			name:       "German word",
			text:       "Apfel",
			wantSource: "de",
			wantTarget: "zh-CN",
		},
		{
			name:       "German sentence with umlauts",
			text:       "Ich möchte Deutsch lernen.",
			wantSource: "de",
			wantTarget: "zh-CN",
		},
		{
			name:       "Chinese text",
			text:       "我学德语",
			wantSource: "zh-CN",
			wantTarget: "de",
		},
		{
			name:       "mixed text treated as Chinese",
			text:       "Apfel 苹果",
			wantSource: "zh-CN",
			wantTarget: "de",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, target := DetectDirection(tt.text, "zh-CN")
			if source != tt.wantSource || target != tt.wantTarget {
				t.Errorf("DetectDirection(%q) = (%q, %q), want (%q, %q)",
					tt.text, source, target, tt.wantSource, tt.wantTarget)
			}
		})
	}
}

func TestTranslate_UsesDetectedDirection(t *testing.T) {
	engine := &mockEngine{result: "苹果"}
	tr := NewTranslator(engine, nil, "zh-CN", zerolog.Nop())

	outcome, err := tr.Translate(context.Background(), "Apfel")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	if engine.lastSource != "de" || engine.lastTarget != "zh-CN" {
		t.Errorf("Engine called with (%q, %q), want (de, zh-CN)", engine.lastSource, engine.lastTarget)
	}
	if outcome.Translated != "苹果" {
		t.Errorf("Expected translation '苹果', got %q", outcome.Translated)
	}
	if outcome.SourceLang != "de" {
		t.Errorf("Expected source lang 'de', got %q", outcome.SourceLang)
	}
}

func TestTranslate_EngineError(t *testing.T) {
	engine := &mockEngine{err: errors.New("API timeout")}
	tr := NewTranslator(engine, nil, "", zerolog.Nop())

	_, err := tr.Translate(context.Background(), "Hallo")
	if err == nil {
		t.Fatal("Expected error from failing engine")
	}
	if !strings.Contains(err.Error(), "API timeout") {
		t.Errorf("Expected wrapped engine error, got: %v", err)
	}
}

func TestTranslate_DefaultTargetLang(t *testing.T) {
	engine := &mockEngine{result: "x"}
	tr := NewTranslator(engine, nil, "", zerolog.Nop())

	if _, err := tr.Translate(context.Background(), "Hallo"); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if engine.lastTarget != DefaultTargetLang {
		t.Errorf("Expected default target %q, got %q", DefaultTargetLang, engine.lastTarget)
	}
}

func TestGlossary_Lookup(t *testing.T) {
	g := NewGlossary()

	tests := []struct {
		word   string
		wantOK bool
	}{
		{"Apfel", true},
		{"apfel", true},
		{"  Danke  ", true},
		{"Quantenphysik", false},
	}

	for _, tt := range tests {
		_, ok := g.Lookup(tt.word)
		if ok != tt.wantOK {
			t.Errorf("Lookup(%q) ok = %v, want %v", tt.word, ok, tt.wantOK)
		}
	}
}

func TestGlossary_Serve(t *testing.T) {
	g := NewGlossary()

	payload, err := g.Serve(context.Background(), "Ich lernen Deutsch.")
	if err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	outcome, ok := payload.(*Outcome)
	if !ok {
		t.Fatalf("Expected *Outcome payload, got %T", payload)
	}
	if outcome.Note == "" {
		t.Error("Glossary results must carry a note disclosing limited mode")
	}
	if !strings.Contains(outcome.Translated, "学习") {
		t.Errorf("Expected 'lernen' resolved to 学习, got %q", outcome.Translated)
	}
	// Unknown words must be visibly marked, not silently dropped.
	if !strings.Contains(outcome.Translated, "(?)") {
		t.Errorf("Expected unknown words marked with (?), got %q", outcome.Translated)
	}
}

func TestGlossary_ServeAllUnknown(t *testing.T) {
	g := NewGlossary()

	if _, err := g.Serve(context.Background(), "Quantenphysik Relativitätstheorie"); err == nil {
		t.Error("Expected error when no word is in the glossary")
	}
}

func TestGlossary_ServeChineseInput(t *testing.T) {
	g := NewGlossary()

	if _, err := g.Serve(context.Background(), "我学德语"); err == nil {
		t.Error("Expected error for Chinese input in offline mode")
	}
}
