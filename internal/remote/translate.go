package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Translate asks the server's translation endpoint for text in the user's
// target language.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return "", err
	}
	data, err := c.do(ctx, http.MethodPost, c.paths.Translate, body, "application/json")
	if err != nil {
		return "", err
	}

	var out struct {
		Translation string `json:"translation"`
		Error       string `json:"error"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("decode translation: %w", err)
	}
	if out.Error != "" {
		return "", errors.New(out.Error)
	}
	if strings.TrimSpace(out.Translation) == "" {
		return "", errors.New("empty translation")
	}
	return out.Translation, nil
}
