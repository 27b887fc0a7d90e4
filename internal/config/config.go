// Package config provides application configuration with multi-source
// priority.
//
// Sources (highest to lowest):
//  1. Environment variables (FLIPART_*, plus GEMINI_API_KEY)
//  2. Config file (~/.flipart/config.yaml)
//  3. Default values
//
// Sensitive values (the API key) are never logged.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

var (
	// ErrMissingAPIKey indicates no Gemini API key is configured.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrInvalidModelName indicates a model name is empty.
	ErrInvalidModelName = errors.New("invalid model name")
)

// Defaults used when neither environment nor config file provide a value.
const (
	DefaultChatModel  = "gemini-2.5-flash"
	DefaultImageModel = "gemini-2.5-flash-image"
)

// Config stores application configuration.
type Config struct {
	// GeminiAPIKey authenticates against the Google AI gateway.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	// ChatModel handles conversation and audio-analysis requests.
	ChatModel string `mapstructure:"chat_model"`

	// ImageModel handles image-synthesis requests.
	ImageModel string `mapstructure:"image_model"`

	// DataDir holds the persistence database and exports.
	DataDir string `mapstructure:"data_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// LogJSON switches log output to JSON format.
	LogJSON bool `mapstructure:"log_json"`
}

// StorePath returns the path of the persistence database.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, "flipart.db")
}

// ExportDir returns the directory image exports are written to.
func (c *Config) ExportDir() string {
	return filepath.Join(c.DataDir, "exports")
}

// Load loads configuration.
// Priority: environment variables > configuration file > defaults.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home directory: %w", err)
	}
	configDir := filepath.Join(home, ".flipart")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	setDefaults(v, configDir)
	bindEnvVariables(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is not an error; defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		slog.Debug("configuration file not found, using defaults",
			"search_paths", []string{configDir, "."})
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	// GEMINI_API_KEY is the conventional variable for the Google AI SDK;
	// honor it when the flipart-specific one is unset.
	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}

	return &cfg, nil
}

// Validate checks that the configuration can drive the gateway.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("%w: set FLIPART_GEMINI_API_KEY or GEMINI_API_KEY", ErrMissingAPIKey)
	}
	if c.ChatModel == "" {
		return fmt.Errorf("%w: chat_model is empty", ErrInvalidModelName)
	}
	if c.ImageModel == "" {
		return fmt.Errorf("%w: image_model is empty", ErrInvalidModelName)
	}
	return nil
}

// SlogLevel maps the configured level string onto slog's levels.
// Unknown values fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("chat_model", DefaultChatModel)
	v.SetDefault("image_model", DefaultImageModel)
	v.SetDefault("data_dir", configDir)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
}

func bindEnvVariables(v *viper.Viper) {
	v.SetEnvPrefix("FLIPART")
	v.AutomaticEnv()

	// Explicit binds keep the mapstructure keys stable.
	for _, key := range []string{
		"gemini_api_key",
		"chat_model",
		"image_model",
		"data_dir",
		"log_level",
		"log_json",
	} {
		_ = v.BindEnv(key)
	}
}
