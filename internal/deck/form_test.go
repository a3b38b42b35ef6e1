package deck

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCardForm_Validate(t *testing.T) {
	long := strings.Repeat("á", 501)
	tests := []struct {
		name     string
		form     CardForm
		wantErr  bool
		wantMsgs []string
	}{
		{"valid", CardForm{Question: "dog", Answer: "cachorro"}, false, nil},
		{"missing answer", CardForm{Question: "dog"}, true, []string{"answer is required"}},
		{"whitespace only", CardForm{Question: "  ", Answer: "\t"}, true,
			[]string{"question is required", "answer is required"}},
		{"too long", CardForm{Question: long, Answer: "x"}, true,
			[]string{"question must be at most 500 characters"}},
		{"exactly max runes", CardForm{Question: strings.Repeat("á", 500), Answer: "x"}, false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			var fe *FormError
			if !errors.As(err, &fe) {
				t.Fatalf("err = %v, want *FormError", err)
			}
			if strings.Join(fe.Messages, "|") != strings.Join(tt.wantMsgs, "|") {
				t.Errorf("messages = %v, want %v", fe.Messages, tt.wantMsgs)
			}
		})
	}
}

func TestFormResult_OK(t *testing.T) {
	if !(FormResult{Status: "success"}).OK() {
		t.Error("success must be OK")
	}
	if (FormResult{Status: "danger", Message: "nope"}).OK() {
		t.Error("danger must not be OK")
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.json")
	data := `[{"id": 1, "question": "dog", "answer": "cachorro", "level": 2}, {"id": "x", "question": "cat", "answer": "gato"}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cards, err := FileSource{Path: path}.Cards(context.Background())
	if err != nil {
		t.Fatalf("Cards: %v", err)
	}
	if len(cards) != 2 || cards[0].ID != "1" || cards[0].Level != "2" || cards[1].ID != "x" {
		t.Errorf("cards = %+v", cards)
	}

	if _, err := (FileSource{Path: filepath.Join(dir, "missing.json")}).Cards(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	_ = os.WriteFile(bad, []byte(`{"not": "an array"}`), 0o644)
	if _, err := (FileSource{Path: bad}).Cards(context.Background()); err == nil {
		t.Error("expected error for non-array file")
	}
}
