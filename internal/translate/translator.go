// Package translate suggests card answers by translating the question into
// the learner's target language.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultTarget is the default target language.
const DefaultTarget = "pt"

// Translator turns text into the configured target language.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

var translationSchema = &Schema{
	Name: "card-translation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"translation": map[string]any{
				"type":        "string",
				"description": "The translated text, without quotes or commentary.",
			},
		},
		"required":             []any{"translation"},
		"additionalProperties": false,
	},
}

var languageNames = map[string]string{
	"pt": "Brazilian Portuguese",
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
}

// LLMTranslator translates through a Provider.
type LLMTranslator struct {
	provider Provider
	target   string
}

// NewLLMTranslator creates a translator into target (a language code or name).
func NewLLMTranslator(p Provider, target string) *LLMTranslator {
	if target == "" {
		target = DefaultTarget
	}
	return &LLMTranslator{provider: p, target: target}
}

func (t *LLMTranslator) Translate(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("nothing to translate")
	}

	resp, err := t.provider.Generate(ctx, Request{
		System:    systemPrompt(t.target),
		User:      text,
		Schema:    translationSchema,
		MaxTokens: 256,
	})
	if err != nil {
		return "", err
	}

	var out struct {
		Translation string `json:"translation"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", &ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return strings.TrimSpace(out.Translation), nil
}

func systemPrompt(target string) string {
	lang := target
	if name, ok := languageNames[target]; ok {
		lang = name
	}
	return fmt.Sprintf("You translate flashcard text for a language learner. "+
		"Translate the user's text into %s. Keep it short and natural, "+
		"the way it would appear on the back of a flashcard.", lang)
}
