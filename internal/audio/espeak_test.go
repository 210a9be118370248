package audio

import "testing"

func TestDefaultESpeakConfig(t *testing.T) {
	config := DefaultESpeakConfig()

	if config.Voice != "de" {
		t.Errorf("Expected voice 'de', got '%s'", config.Voice)
	}
	if config.Speed != 140 {
		t.Errorf("Expected speed 140, got %d", config.Speed)
	}
}

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		name  string
		speed int
		want  int
	}{
		{"below minimum", 50, 80},
		{"minimum", 80, 80},
		{"default", 140, 140},
		{"maximum", 450, 450},
		{"above maximum", 500, 450},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampSpeed(tt.speed); got != tt.want {
				t.Errorf("clampSpeed(%d) = %d, want %d", tt.speed, got, tt.want)
			}
		})
	}
}
