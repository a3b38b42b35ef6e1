package translate

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// NewProvider creates the LLM provider named by cfg, wrapped with retry and
// logging: caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, log *logrus.Entry) (Provider, error) {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown translate provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, log), cfg.Retry), nil
}

// New creates the Translator named by cfg. The server provider delegates to
// server, which is typically the remote client. An empty provider returns
// ErrDisabled.
func New(ctx context.Context, cfg Config, server Translator, log *logrus.Entry) (Translator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var t Translator
	switch cfg.Provider {
	case ProviderNone:
		return nil, ErrDisabled
	case ProviderServer:
		if server == nil {
			return nil, fmt.Errorf("server translation needs a server client")
		}
		t = server
	default:
		p, err := NewProvider(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		t = NewLLMTranslator(p, cfg.Target)
	}
	return withTimeout(t, cfg.Timeout), nil
}

type timeoutTranslator struct {
	inner   Translator
	timeout time.Duration
}

func withTimeout(t Translator, d time.Duration) Translator {
	if d <= 0 {
		return t
	}
	return &timeoutTranslator{inner: t, timeout: d}
}

func (t *timeoutTranslator) Translate(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Translate(ctx, text)
}
