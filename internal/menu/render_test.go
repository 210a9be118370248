package menu

import (
	"strings"
	"testing"
	"time"

	"codeberg.org/snonux/lernhelfer/internal/analysis"
	"codeberg.org/snonux/lernhelfer/internal/capability"
	"codeberg.org/snonux/lernhelfer/internal/grammar"
	"codeberg.org/snonux/lernhelfer/internal/pronunciation"
	"codeberg.org/snonux/lernhelfer/internal/store"
	"codeberg.org/snonux/lernhelfer/internal/translation"
)

func TestRenderResult_DisclosesDegradedMode(t *testing.T) {
	result := capability.Result{
		Capability: capability.GrammarCheck,
		Mode:       capability.StatusDegraded,
		Backend:    "spellcheck",
		Payload: &grammar.Report{
			Original:  "Ich lernen Deutsch.",
			Corrected: "Ich lernen Deutsch.",
			Limited:   true,
			Issues: []grammar.Issue{
				{Message: "verb does not agree", Replacements: []string{"lerne"}},
			},
		},
	}

	out := renderResult(result)
	if !strings.Contains(out, "reduced mode") {
		t.Errorf("Degraded results must disclose the mode, got:\n%s", out)
	}
	if !strings.Contains(out, "spellcheck") {
		t.Errorf("Degraded results must name the serving backend, got:\n%s", out)
	}
	if !strings.Contains(out, "lerne") {
		t.Errorf("Expected the suggestion in the output, got:\n%s", out)
	}
}

func TestRenderResult_AvailableModeNotMarked(t *testing.T) {
	result := capability.Result{
		Capability: capability.Translation,
		Mode:       capability.StatusAvailable,
		Backend:    "openai",
		Payload: &translation.Outcome{
			Source:     "Apfel",
			Translated: "苹果",
			SourceLang: "de",
			TargetLang: "zh-CN",
		},
	}

	out := renderResult(result)
	if strings.Contains(out, "reduced mode") {
		t.Errorf("Available results must not be marked degraded, got:\n%s", out)
	}
	if !strings.Contains(out, "苹果") {
		t.Errorf("Expected the translation in the output, got:\n%s", out)
	}
}

func TestRenderOutcome_Explanations(t *testing.T) {
	out := renderOutcome(&translation.Outcome{
		Translated: "苹果",
		SourceLang: "de",
		TargetLang: "zh-CN",
		Explanations: []translation.WordExplanation{
			{Word: "Apfel", Meaning: "noun: apple"},
		},
	})

	if !strings.Contains(out, "Apfel") || !strings.Contains(out, "noun: apple") {
		t.Errorf("Expected word explanation in output:\n%s", out)
	}
}

func TestRenderReport_CleanText(t *testing.T) {
	out := renderReport(&grammar.Report{Original: "Ich lerne Deutsch.", Corrected: "Ich lerne Deutsch."})
	if !strings.Contains(out, "No errors") {
		t.Errorf("Expected clean-text message, got:\n%s", out)
	}
}

func TestRenderReport_CorrectedText(t *testing.T) {
	out := renderReport(&grammar.Report{
		Original:  "Ich lernen Deutsch.",
		Corrected: "Ich lerne Deutsch.",
		Issues:    []grammar.Issue{{Message: "agreement"}},
	})
	if !strings.Contains(out, "Ich lerne Deutsch.") {
		t.Errorf("Expected corrected text, got:\n%s", out)
	}
}

func TestRenderAnalysis(t *testing.T) {
	out := renderAnalysis(&analysis.Analysis{
		Tense: "Präsens",
		Tokens: []analysis.Token{
			{Text: "Ich", Lemma: "ich", POS: "PRON", Gloss: "1st person singular"},
			{Text: "lerne", Lemma: "lernen", POS: "VERB"},
			{Text: ".", Lemma: ".", POS: "PUNCT"},
		},
	})

	if !strings.Contains(out, "Präsens") {
		t.Errorf("Expected tense in output:\n%s", out)
	}
	if !strings.Contains(out, "lemma: lernen") {
		t.Errorf("Expected lemma in output:\n%s", out)
	}
	if strings.Contains(out, "PUNCT") {
		t.Errorf("Punctuation tokens should be skipped:\n%s", out)
	}
}

func TestRenderCapabilities(t *testing.T) {
	out := renderCapabilities([]capability.Capability{
		{ID: capability.Translation, Status: capability.StatusAvailable},
		{ID: capability.GrammarCheck, Status: capability.StatusDegraded, Reason: "java runtime not found"},
	})

	if !strings.Contains(out, "translation: available") {
		t.Errorf("Expected available capability listed, got:\n%s", out)
	}
	if !strings.Contains(out, "java runtime not found") {
		t.Errorf("Expected degradation reason listed, got:\n%s", out)
	}
}

func TestRenderNotebook(t *testing.T) {
	out := renderNotebook([]store.Entry{
		{Text: "Apfel", Result: "苹果", Mode: "available", CreatedAt: time.Now()},
		{Text: "Ich lernen", Result: "1 issue(s)", Mode: "degraded", CreatedAt: time.Now()},
	})

	if !strings.Contains(out, "Apfel") {
		t.Errorf("Expected entry in notebook output:\n%s", out)
	}
	if !strings.Contains(out, "reduced mode") {
		t.Errorf("Expected degraded entries marked, got:\n%s", out)
	}

	empty := renderNotebook(nil)
	if !strings.Contains(empty, "empty") {
		t.Errorf("Expected empty-notebook message, got:\n%s", empty)
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		want    string
	}{
		{
			name:    "translation",
			payload: &translation.Outcome{Translated: "苹果"},
			want:    "苹果",
		},
		{
			name:    "analysis",
			payload: &analysis.Analysis{Tense: "Perfekt"},
			want:    "tense: Perfekt",
		},
		{
			name:    "clean grammar report",
			payload: &grammar.Report{Original: "x", Corrected: "x"},
			want:    "no errors",
		},
		{
			name:    "guidance tips",
			payload: &pronunciation.Guidance{Tips: []string{"a", "b"}},
			want:    "2 tip(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarize(capability.Result{Payload: tt.payload})
			if got != tt.want {
				t.Errorf("summarize() = %q, want %q", got, tt.want)
			}
		})
	}
}
