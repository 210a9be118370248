package cli

import "testing"

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	if flags == nil {
		t.Fatal("NewFlags() returned nil")
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"TargetLang", flags.TargetLang, "zh-CN"},
		{"Provider", flags.Provider, "openai"},
		{"LogLevel", flags.LogLevel, "info"},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o-mini-tts"},
		{"OpenAIVoice", flags.OpenAIVoice, "alloy"},
		{"AudioFormat", flags.AudioFormat, "mp3"},
		{"ESpeakVoice", flags.ESpeakVoice, "de"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("NewFlags().%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}

	if flags.OpenAISpeed != 0.9 {
		t.Errorf("NewFlags().OpenAISpeed = %v, want 0.9", flags.OpenAISpeed)
	}
	if flags.ESpeakSpeed != 140 {
		t.Errorf("NewFlags().ESpeakSpeed = %d, want 140", flags.ESpeakSpeed)
	}
	if flags.NoAudio {
		t.Error("NewFlags().NoAudio should default to false")
	}
}

func TestOneShotCount(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Flags)
		want  int
	}{
		{
			name:  "no one-shot flags",
			setup: func(f *Flags) {},
			want:  0,
		},
		{
			name:  "translate only",
			setup: func(f *Flags) { f.Translate = "Guten Morgen" },
			want:  1,
		},
		{
			name:  "correct only",
			setup: func(f *Flags) { f.Correct = "Ich lernen Deutsch." },
			want:  1,
		},
		{
			name: "two flags set",
			setup: func(f *Flags) {
				f.Analyze = "Ich lerne Deutsch."
				f.Pronounce = "schön"
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := NewFlags()
			tt.setup(flags)
			if got := flags.OneShotCount(); got != tt.want {
				t.Errorf("OneShotCount() = %d, want %d", got, tt.want)
			}
		})
	}
}
