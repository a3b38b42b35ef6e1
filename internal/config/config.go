// Package config loads flashdeck settings from defaults, an optional YAML
// file and FLASHDECK_* environment variables.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Study     StudyConfig     `mapstructure:"study"`
	Speech    SpeechConfig    `mapstructure:"speech"`
	Log       LogConfig       `mapstructure:"log"`
	DB        DBConfig        `mapstructure:"db"`
	Translate TranslateConfig `mapstructure:"translate"`
}

// ServerConfig points at the flashcard server.
type ServerConfig struct {
	BaseURL       string        `mapstructure:"base_url" validate:"required,url"`
	ReviewPath    string        `mapstructure:"review_path" validate:"required,startswith=/"`
	CompletePath  string        `mapstructure:"complete_path" validate:"required,startswith=/"`
	CardsPath     string        `mapstructure:"cards_path" validate:"required,startswith=/"`
	AddPath       string        `mapstructure:"add_path" validate:"required,startswith=/"`
	EditPath      string        `mapstructure:"edit_path" validate:"required,startswith=/"`
	TranslatePath string        `mapstructure:"translate_path" validate:"required,startswith=/"`
	Token         string        `mapstructure:"token"`
	CSRFToken     string        `mapstructure:"csrf_token"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// StudyConfig tunes the study session controller.
type StudyConfig struct {
	HandoffURL        string        `mapstructure:"handoff_url" validate:"required,startswith=/"`
	CompletionTimeout time.Duration `mapstructure:"completion_timeout" validate:"gt=0"`
	MinSubmitInterval time.Duration `mapstructure:"min_submit_interval" validate:"gte=0"`
	EmptyMessage      string        `mapstructure:"empty_message" validate:"required"`
	CompleteMessage   string        `mapstructure:"complete_message" validate:"required"`
}

// SpeechConfig configures text-to-speech.
type SpeechConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Command string  `mapstructure:"command"`
	Lang    string  `mapstructure:"lang" validate:"required"`
	Rate    float64 `mapstructure:"rate" validate:"gt=0,lte=4"`
	Pitch   float64 `mapstructure:"pitch" validate:"gt=0,lte=2"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
	// File receives logs while the TUI owns the terminal. Empty uses the
	// default state directory.
	File string `mapstructure:"file"`
}

// DBConfig locates the history database. Empty uses the default data
// directory.
type DBConfig struct {
	Path string `mapstructure:"path"`
}

// TranslateConfig selects the answer-suggestion backend.
type TranslateConfig struct {
	Provider   string         `mapstructure:"provider" validate:"omitempty,oneof=server anthropic openai openrouter gemini mock"`
	Target     string         `mapstructure:"target" validate:"required"`
	Timeout    time.Duration  `mapstructure:"timeout" validate:"gt=0"`
	Anthropic  ProviderConfig `mapstructure:"anthropic"`
	OpenAI     ProviderConfig `mapstructure:"openai"`
	OpenRouter ProviderConfig `mapstructure:"openrouter"`
	Gemini     ProviderConfig `mapstructure:"gemini"`
}

// ProviderConfig holds the credentials of one LLM backend.
type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}
