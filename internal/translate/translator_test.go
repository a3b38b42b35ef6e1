package translate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLLMTranslator_Translate(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"translation":" cachorro "}`)})
	tr := NewLLMTranslator(mock, "")

	got, err := tr.Translate(context.Background(), "  dog ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "cachorro" {
		t.Errorf("got %q, want cachorro", got)
	}

	req := mock.Calls[0]
	if req.User != "dog" {
		t.Errorf("user prompt = %q, want trimmed text", req.User)
	}
	if req.Schema == nil || req.Schema.Name != "card-translation" {
		t.Errorf("expected translation schema, got %+v", req.Schema)
	}
	if !strings.Contains(req.System, "Brazilian Portuguese") {
		t.Errorf("system prompt should name the target language: %q", req.System)
	}
}

func TestLLMTranslator_UnknownTargetUsedVerbatim(t *testing.T) {
	mock := NewMockProvider()
	tr := NewLLMTranslator(mock, "Klingon")
	if _, err := tr.Translate(context.Background(), "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].System, "Klingon") {
		t.Errorf("system prompt = %q", mock.Calls[0].System)
	}
}

func TestLLMTranslator_EmptyText(t *testing.T) {
	mock := NewMockProvider()
	tr := NewLLMTranslator(mock, "pt")
	if _, err := tr.Translate(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty text")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times for empty text", mock.CallCount())
	}
}

func TestLLMTranslator_ProviderError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	_, err := NewLLMTranslator(mock, "pt").Translate(context.Background(), "dog")
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T (%v)", err, err)
	}
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	if _, err := New(ctx, DefaultConfig(), nil, nil); !errors.Is(err, ErrDisabled) {
		t.Errorf("empty provider err = %v, want ErrDisabled", err)
	}

	cfg := DefaultConfig()
	cfg.Provider = ProviderAnthropic
	if _, err := New(ctx, cfg, nil, nil); err == nil {
		t.Error("expected error for anthropic without API key")
	}

	cfg.Provider = "babelfish"
	if _, err := New(ctx, cfg, nil, nil); err == nil {
		t.Error("expected error for unknown provider")
	}

	cfg.Provider = ProviderServer
	if _, err := New(ctx, cfg, nil, nil); err == nil {
		t.Error("expected error for server provider without a client")
	}

	server := NewLLMTranslator(NewMockProvider(), "pt")
	tr, err := New(ctx, cfg, server, nil)
	if err != nil {
		t.Fatalf("server provider: %v", err)
	}
	got, err := tr.Translate(ctx, "dog")
	if err != nil || got != "[dog]" {
		t.Errorf("Translate = %q, %v; want [dog]", got, err)
	}

	cfg.Provider = ProviderMock
	tr, err = New(ctx, cfg, nil, nil)
	if err != nil {
		t.Fatalf("mock provider: %v", err)
	}
	if got, _ := tr.Translate(ctx, "cat"); got != "[cat]" {
		t.Errorf("mock Translate = %q, want [cat]", got)
	}
}
