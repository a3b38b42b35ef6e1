package study

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Card is a single flashcard loaded into a session. Cards are immutable once
// the session has started.
type Card struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`

	// Level is the optional difficulty label. Empty when the source did not
	// provide one.
	Level string `json:"level,omitempty"`
}

// UnmarshalJSON accepts ids and levels as either JSON strings or numbers,
// since the server emits integer primary keys and integer levels.
func (c *Card) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       json.RawMessage `json:"id"`
		Question string          `json:"question"`
		Answer   string          `json:"answer"`
		Level    json.RawMessage `json:"level"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := scalarString(raw.ID)
	if err != nil {
		return fmt.Errorf("card id: %w", err)
	}
	if id == "" {
		return fmt.Errorf("card id is required")
	}
	level, err := scalarString(raw.Level)
	if err != nil {
		return fmt.Errorf("card %s level: %w", id, err)
	}

	*c = Card{
		ID:       id,
		Question: raw.Question,
		Answer:   raw.Answer,
		Level:    level,
	}
	return nil
}

// LevelLabel returns the level or a dash placeholder when absent.
func (c Card) LevelLabel() string {
	if c.Level == "" {
		return "—"
	}
	return c.Level
}

// scalarString renders a JSON string, number or null as a Go string.
func scalarString(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("expected string or number, got %s", raw)
	}
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10), nil
	}
	return n.String(), nil
}
