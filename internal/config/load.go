package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/abhisek/flashdeck/internal/remote"
	"github.com/abhisek/flashdeck/internal/speech"
	"github.com/abhisek/flashdeck/internal/study"
	"github.com/abhisek/flashdeck/internal/translate"
)

// EnvPrefix prefixes every environment variable, e.g. FLASHDECK_SERVER_BASE_URL.
const EnvPrefix = "FLASHDECK"

// Options controls where Load looks for settings.
type Options struct {
	// File is an explicit config file. Empty searches the default locations
	// and tolerates a missing file.
	File string

	// Overrides are applied last, typically from command-line flags. Empty
	// string values are ignored.
	Overrides map[string]any
}

// Load reads configuration in increasing priority: defaults, config file,
// environment, overrides. The result is validated.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindProviderKeys(v)

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.File, err)
		}
	} else {
		v.SetConfigName("flashdeck")
		v.SetConfigType("yaml")
		for _, dir := range searchPaths() {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	for key, val := range opts.Overrides {
		if s, ok := val.(string); ok && s == "" {
			continue
		}
		v.Set(key, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg and reports every invalid key.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}
	msgs := lo.Map(verrs, func(fe validator.FieldError, _ int) string {
		return fmt.Sprintf("%s (%s=%s)", fe.Namespace(), fe.Tag(), fe.Param())
	})
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, ", "))
}

func setDefaults(v *viper.Viper) {
	paths := remote.DefaultPaths()
	v.SetDefault("server.base_url", remote.DefaultBaseURL)
	v.SetDefault("server.review_path", paths.Review)
	v.SetDefault("server.complete_path", paths.Complete)
	v.SetDefault("server.cards_path", paths.Cards)
	v.SetDefault("server.add_path", paths.Add)
	v.SetDefault("server.edit_path", paths.Edit)
	v.SetDefault("server.translate_path", paths.Translate)
	v.SetDefault("server.token", "")
	v.SetDefault("server.csrf_token", "")
	v.SetDefault("server.timeout", remote.DefaultTimeout)

	v.SetDefault("study.handoff_url", study.DefaultDestination)
	v.SetDefault("study.completion_timeout", study.DefaultCompletionTimeout)
	v.SetDefault("study.min_submit_interval", study.DefaultMinSubmitInterval)
	v.SetDefault("study.empty_message", study.DefaultEmptyMessage)
	v.SetDefault("study.complete_message", study.DefaultCompleteMessage)

	v.SetDefault("speech.enabled", true)
	v.SetDefault("speech.command", "")
	v.SetDefault("speech.lang", speech.DefaultLang)
	v.SetDefault("speech.rate", speech.DefaultRate)
	v.SetDefault("speech.pitch", speech.DefaultPitch)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	v.SetDefault("db.path", "")

	td := translate.DefaultConfig()
	v.SetDefault("translate.provider", td.Provider)
	v.SetDefault("translate.target", td.Target)
	v.SetDefault("translate.timeout", td.Timeout)
	for name, pc := range map[string]translate.ProviderConfig{
		"anthropic":  td.Anthropic,
		"openai":     td.OpenAI,
		"openrouter": td.OpenRouter,
		"gemini":     td.Gemini,
	} {
		v.SetDefault("translate."+name+".api_key", pc.APIKey)
		v.SetDefault("translate."+name+".model", pc.Model)
		v.SetDefault("translate."+name+".base_url", pc.BaseURL)
	}
}

// bindProviderKeys lets the vendors' standard key variables fill in when
// the prefixed ones are unset.
func bindProviderKeys(v *viper.Viper) {
	for name, std := range map[string]string{
		"anthropic":  "ANTHROPIC_API_KEY",
		"openai":     "OPENAI_API_KEY",
		"openrouter": "OPENROUTER_API_KEY",
		"gemini":     "GEMINI_API_KEY",
	} {
		key := "translate." + name + ".api_key"
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		_ = v.BindEnv(key, prefixed, std)
	}
}

func searchPaths() []string {
	var dirs []string
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		dirs = append(dirs, filepath.Join(dir, "flashdeck"))
	} else if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "flashdeck"))
	}
	return append(dirs, ".")
}

// StudyOptions converts the study settings for the controller.
func (c *Config) StudyOptions() study.Options {
	return study.Options{
		CompletionTimeout: c.Study.CompletionTimeout,
		Destination:       c.Study.HandoffURL,
		MinInterval:       c.Study.MinSubmitInterval,
		EmptyMessage:      c.Study.EmptyMessage,
		CompleteMessage:   c.Study.CompleteMessage,
	}
}

// RemoteOptions converts the server settings for remote.NewClient.
func (c *Config) RemoteOptions() []remote.Option {
	s := c.Server
	return []remote.Option{
		remote.WithBaseURL(s.BaseURL),
		remote.WithTimeout(s.Timeout),
		remote.WithToken(s.Token),
		remote.WithCSRFToken(s.CSRFToken),
		remote.WithPaths(remote.Paths{
			Review:    s.ReviewPath,
			Complete:  s.CompletePath,
			Cards:     s.CardsPath,
			Add:       s.AddPath,
			Edit:      s.EditPath,
			Translate: s.TranslatePath,
		}),
	}
}

// SpeechConfig converts the speech settings.
func (c *Config) SpeechConfig() speech.Config {
	return speech.Config{Command: c.Speech.Command, Lang: c.Speech.Lang, Rate: c.Speech.Rate, Pitch: c.Speech.Pitch}
}

// TranslateConfig converts the translation settings.
func (c *Config) TranslateConfig() translate.Config {
	t := c.Translate
	out := translate.DefaultConfig()
	out.Provider = t.Provider
	out.Target = t.Target
	out.Timeout = t.Timeout
	out.Anthropic = translate.ProviderConfig(t.Anthropic)
	out.OpenAI = translate.ProviderConfig(t.OpenAI)
	out.OpenRouter = translate.ProviderConfig(t.OpenRouter)
	out.Gemini = translate.ProviderConfig(t.Gemini)
	return out
}

// LogFile returns the log file path, falling back to
// $XDG_STATE_HOME/flashdeck/flashdeck.log.
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	state := os.Getenv("XDG_STATE_HOME")
	if state == "" {
		if home, err := os.UserHomeDir(); err == nil {
			state = filepath.Join(home, ".local", "state")
		} else {
			state = os.TempDir()
		}
	}
	return filepath.Join(state, "flashdeck", "flashdeck.log")
}
