package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/abhisek/flashdeck/internal/deck"
)

const formContentType = "application/x-www-form-urlencoded"

// AddCard creates a card. The form is validated before anything is sent.
func (c *Client) AddCard(ctx context.Context, form deck.CardForm) (deck.FormResult, error) {
	if err := form.Validate(); err != nil {
		return deck.FormResult{}, err
	}
	form = form.Normalize()
	values := url.Values{
		"question": {form.Question},
		"answer":   {form.Answer},
	}
	return c.submitForm(ctx, c.paths.Add, values)
}

// EditCard replaces the question and answer of card id.
func (c *Client) EditCard(ctx context.Context, id string, form deck.CardForm) (deck.FormResult, error) {
	if err := form.Validate(); err != nil {
		return deck.FormResult{}, err
	}
	form = form.Normalize()
	values := url.Values{
		"action":   {"edit"},
		"question": {form.Question},
		"answer":   {form.Answer},
	}
	return c.submitForm(ctx, c.editPath(id), values)
}

// DeleteCard removes card id.
func (c *Client) DeleteCard(ctx context.Context, id string) (deck.FormResult, error) {
	return c.submitForm(ctx, c.editPath(id), url.Values{"action": {"delete"}})
}

func (c *Client) editPath(id string) string {
	return c.paths.Edit + "/" + url.PathEscape(id)
}

// submitForm posts values and decodes the {status, message} answer. A non-2xx
// answer that still carries a status is returned as a result, not an error.
func (c *Client) submitForm(ctx context.Context, path string, values url.Values) (deck.FormResult, error) {
	data, err := c.do(ctx, http.MethodPost, path, []byte(values.Encode()), formContentType)

	var res deck.FormResult
	if decErr := json.Unmarshal(data, &res); decErr != nil || res.Status == "" {
		if err != nil {
			return deck.FormResult{}, err
		}
		return deck.FormResult{}, fmt.Errorf("decode form result: unexpected body %q", truncate(string(data), 80))
	}

	var se *StatusError
	if err != nil && !errors.As(err, &se) {
		return deck.FormResult{}, err
	}
	return res, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
