package audio

import (
	"testing"
)

func TestDefaultProviderConfig(t *testing.T) {
	config := DefaultProviderConfig()

	if config.Provider != "openai" {
		t.Errorf("Expected provider 'openai', got '%s'", config.Provider)
	}

	if config.OutputFormat != "mp3" {
		t.Errorf("Expected output format 'mp3', got '%s'", config.OutputFormat)
	}

	if config.OpenAIModel != "gpt-4o-mini-tts" {
		t.Errorf("Expected OpenAI model 'gpt-4o-mini-tts', got '%s'", config.OpenAIModel)
	}

	if config.OpenAISpeed != 0.9 {
		t.Errorf("Expected OpenAI speed 0.9, got %f", config.OpenAISpeed)
	}
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "nil config uses defaults without key",
			config:  nil,
			wantErr: true,
			errMsg:  "OpenAI API key is required",
		},
		{
			name: "openai provider without key",
			config: &Config{
				Provider: "openai",
			},
			wantErr: true,
			errMsg:  "OpenAI API key is required",
		},
		{
			name: "unknown provider",
			config: &Config{
				Provider: "unknown",
			},
			wantErr: true,
			errMsg:  "unknown audio provider: unknown",
		},
		{
			name: "openai provider with key",
			config: &Config{
				Provider:  "openai",
				OpenAIKey: "test-key",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewProvider() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err.Error() != tt.errMsg {
				t.Errorf("Expected error %q, got %q", tt.errMsg, err.Error())
			}
			if !tt.wantErr && provider == nil {
				t.Error("Expected a provider")
			}
		})
	}
}

func TestOpenAIProvider_IsAvailable(t *testing.T) {
	provider, err := NewOpenAIProvider(&Config{Provider: "openai", OpenAIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider failed: %v", err)
	}

	if err := provider.IsAvailable(); err != nil {
		t.Errorf("Expected provider with key to be available, got: %v", err)
	}

	if provider.Name() != "openai" {
		t.Errorf("Expected name 'openai', got %q", provider.Name())
	}
}

func TestOpenAIProvider_CachePath(t *testing.T) {
	p := &OpenAIProvider{
		config: &Config{
			OpenAIModel: "tts-1",
			OpenAIVoice: "alloy",
			OpenAISpeed: 1.0,
		},
		cacheDir: "/tmp/cache",
	}

	path1 := p.getCacheFilePath("Apfel")
	path2 := p.getCacheFilePath("Apfel")
	if path1 != path2 {
		t.Error("Cache path must be deterministic for the same input")
	}

	path3 := p.getCacheFilePath("Birne")
	if path1 == path3 {
		t.Error("Different texts must produce different cache paths")
	}

	p.config.OpenAIVoice = "nova"
	path4 := p.getCacheFilePath("Apfel")
	if path1 == path4 {
		t.Error("Different voices must produce different cache paths")
	}
}
