package pronunciation

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestTips(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantContains []string
		wantAbsent   []string
	}{
		{
			name:         "diphthong ei",
			text:         "mein",
			wantContains: []string{"'ei'"},
		},
		{
			name:         "sch does not also match ch",
			text:         "Schule",
			wantContains: []string{"'sch'"},
			wantAbsent:   []string{"'ch' after"},
		},
		{
			name:         "standalone ch still matches",
			text:         "ich",
			wantContains: []string{"'ch' after"},
		},
		{
			name:         "umlauts",
			text:         "schön",
			wantContains: []string{"'ö'"},
		},
		{
			name:         "eszett",
			text:         "Straße",
			wantContains: []string{"'ß'"},
		},
		{
			name:         "no trouble spots",
			text:         "Oma",
			wantContains: []string{"first syllable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Tips(tt.text)
			joined := strings.Join(result, "\n")
			for _, want := range tt.wantContains {
				if !strings.Contains(joined, want) {
					t.Errorf("Tips(%q) missing %q, got:\n%s", tt.text, want, joined)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(joined, absent) {
					t.Errorf("Tips(%q) should not contain %q, got:\n%s", tt.text, absent, joined)
				}
			}
		})
	}
}

func TestService_TipsOnly(t *testing.T) {
	s := NewService("tips", nil, nil, "", "", zerolog.Nop())

	payload, err := s.Serve(context.Background(), "schön")
	if err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	guidance, ok := payload.(*Guidance)
	if !ok {
		t.Fatalf("Expected *Guidance payload, got %T", payload)
	}
	if len(guidance.Tips) == 0 {
		t.Error("Expected tips")
	}
	if guidance.AudioFile != "" {
		t.Errorf("Expected no audio file without a provider, got %q", guidance.AudioFile)
	}
	if guidance.IPA != "" {
		t.Errorf("Expected no IPA without a fetcher, got %q", guidance.IPA)
	}
}
