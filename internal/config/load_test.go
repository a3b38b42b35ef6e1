package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/flashdeck/internal/remote"
	"github.com/abhisek/flashdeck/internal/speech"
	"github.com/abhisek/flashdeck/internal/study"
)

// isolate points the search paths at an empty directory so a developer's
// own config file cannot leak into the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, remote.DefaultBaseURL, cfg.Server.BaseURL)
	assert.Equal(t, remote.DefaultPaths().Review, cfg.Server.ReviewPath)
	assert.Equal(t, remote.DefaultTimeout, cfg.Server.Timeout)
	assert.Equal(t, study.DefaultCompletionTimeout, cfg.Study.CompletionTimeout)
	assert.Equal(t, study.DefaultMinSubmitInterval, cfg.Study.MinSubmitInterval)
	assert.Equal(t, "/", cfg.Study.HandoffURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Speech.Enabled)
	assert.Equal(t, speech.DefaultPitch, cfg.SpeechConfig().Pitch)
	assert.Empty(t, cfg.Translate.Provider)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  base_url: https://cards.example.com
  timeout: 3s
study:
  min_submit_interval: 1s
speech:
  enabled: false
log:
  level: debug
`), 0o644))

	t.Setenv("FLASHDECK_SERVER_BASE_URL", "https://env.example.com")
	t.Setenv("FLASHDECK_STUDY_COMPLETION_TIMEOUT", "5s")

	cfg, err := Load(Options{File: path})
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.Server.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Server.Timeout)
	assert.Equal(t, time.Second, cfg.Study.MinSubmitInterval)
	assert.Equal(t, 5*time.Second, cfg.Study.CompletionTimeout)
	assert.False(t, cfg.Speech.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_SearchPath(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "flashdeck"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flashdeck", "flashdeck.yaml"),
		[]byte("db:\n  path: /tmp/cards.db\n"), 0o644))

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cards.db", cfg.DB.Path)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(Options{File: filepath.Join(dir, "nope.yaml")})
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	isolate(t)
	t.Setenv("FLASHDECK_LOG_LEVEL", "warn")

	cfg, err := Load(Options{Overrides: map[string]any{
		"log.level":       "error",
		"server.base_url": "",
	}})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, remote.DefaultBaseURL, cfg.Server.BaseURL)
}

func TestLoad_ProviderKeyFallback(t *testing.T) {
	isolate(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-std")

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "sk-std", cfg.Translate.Anthropic.APIKey)

	t.Setenv("FLASHDECK_TRANSLATE_ANTHROPIC_API_KEY", "sk-prefixed")
	cfg, err = Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "sk-prefixed", cfg.Translate.Anthropic.APIKey)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad level", map[string]string{"FLASHDECK_LOG_LEVEL": "loud"}, "Log.Level"},
		{"bad url", map[string]string{"FLASHDECK_SERVER_BASE_URL": "not a url"}, "Server.BaseURL"},
		{"relative path", map[string]string{"FLASHDECK_SERVER_REVIEW_PATH": "review"}, "Server.ReviewPath"},
		{"unknown provider", map[string]string{"FLASHDECK_TRANSLATE_PROVIDER": "carrier-pigeon"}, "Translate.Provider"},
		{"zero rate", map[string]string{"FLASHDECK_SPEECH_RATE": "0"}, "Speech.Rate"},
		{"pitch too high", map[string]string{"FLASHDECK_SPEECH_PITCH": "5"}, "Speech.Pitch"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(Options{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfig_Conversions(t *testing.T) {
	isolate(t)
	t.Setenv("FLASHDECK_TRANSLATE_PROVIDER", "openai")
	t.Setenv("FLASHDECK_TRANSLATE_OPENAI_API_KEY", "sk-o")
	t.Setenv("FLASHDECK_SPEECH_LANG", "pt-BR")

	cfg, err := Load(Options{})
	require.NoError(t, err)

	opts := cfg.StudyOptions()
	assert.Equal(t, study.DefaultCompleteMessage, opts.CompleteMessage)
	assert.Equal(t, "/", opts.Destination)

	tc := cfg.TranslateConfig()
	assert.Equal(t, "openai", tc.Provider)
	assert.Equal(t, "sk-o", tc.OpenAI.APIKey)
	assert.NoError(t, tc.Validate())
	assert.Positive(t, tc.Retry.MaxAttempts)

	assert.Equal(t, "pt-BR", cfg.SpeechConfig().Lang)
	assert.Len(t, cfg.RemoteOptions(), 5)
}

func TestConfig_LogFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/var/state")
	cfg := &Config{}
	assert.Equal(t, "/var/state/flashdeck/flashdeck.log", cfg.LogFile())

	cfg.Log.File = "/tmp/x.log"
	assert.Equal(t, "/tmp/x.log", cfg.LogFile())
}
