package config

import (
	"errors"
	"log/slog"
	"testing"
)

func TestValidate(t *testing.T) {
	valid := Config{
		GeminiAPIKey: "key",
		ChatModel:    DefaultChatModel,
		ImageModel:   DefaultImageModel,
	}

	t.Run("valid config passes", func(t *testing.T) {
		cfg := valid
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("missing API key", func(t *testing.T) {
		cfg := valid
		cfg.GeminiAPIKey = ""
		if err := cfg.Validate(); !errors.Is(err, ErrMissingAPIKey) {
			t.Errorf("Validate() error = %v, want ErrMissingAPIKey", err)
		}
	})

	t.Run("empty chat model", func(t *testing.T) {
		cfg := valid
		cfg.ChatModel = ""
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidModelName) {
			t.Errorf("Validate() error = %v, want ErrInvalidModelName", err)
		}
	})

	t.Run("empty image model", func(t *testing.T) {
		cfg := valid
		cfg.ImageModel = ""
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidModelName) {
			t.Errorf("Validate() error = %v, want ErrInvalidModelName", err)
		}
	})
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FLIPART_GEMINI_API_KEY", "env-key")
	t.Setenv("FLIPART_CHAT_MODEL", "custom-chat")
	t.Setenv("FLIPART_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.GeminiAPIKey != "env-key" {
		t.Errorf("GeminiAPIKey = %q", cfg.GeminiAPIKey)
	}
	if cfg.ChatModel != "custom-chat" {
		t.Errorf("ChatModel = %q", cfg.ChatModel)
	}
	if cfg.ImageModel != DefaultImageModel {
		t.Errorf("ImageModel = %q, want default", cfg.ImageModel)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", cfg.SlogLevel())
	}
}

func TestGeminiAPIKeyFallback(t *testing.T) {
	t.Setenv("FLIPART_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "sdk-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GeminiAPIKey != "sdk-key" {
		t.Errorf("GeminiAPIKey = %q, want GEMINI_API_KEY fallback", cfg.GeminiAPIKey)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := Config{LogLevel: tt.in}
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPaths(t *testing.T) {
	cfg := Config{DataDir: "/tmp/flipart"}
	if got := cfg.StorePath(); got != "/tmp/flipart/flipart.db" {
		t.Errorf("StorePath() = %q", got)
	}
	if got := cfg.ExportDir(); got != "/tmp/flipart/exports" {
		t.Errorf("ExportDir() = %q", got)
	}
}
