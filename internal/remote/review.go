package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abhisek/flashdeck/internal/study"
)

type ratingPayload struct {
	CardID    string `json:"card_id"`
	Rating    string `json:"rating"`
	StudentID string `json:"student_id,omitempty"`
}

// SubmitRating persists one rating. A 2xx answer counts as accepted when its
// body is empty or JSON; redirects and other bodies are failures.
func (c *Client) SubmitRating(ctx context.Context, req study.RatingRequest) error {
	body, err := json.Marshal(ratingPayload{
		CardID:    req.CardID,
		Rating:    req.Rating.String(),
		StudentID: req.SubjectID,
	})
	if err != nil {
		return fmt.Errorf("encode rating: %w", err)
	}
	data, err := c.do(ctx, http.MethodPost, c.paths.Review, body, "application/json")
	if err != nil {
		return err
	}
	if data = bytes.TrimSpace(data); len(data) > 0 && !json.Valid(data) {
		return fmt.Errorf("%s %s: %w", http.MethodPost, c.paths.Review, ErrUnexpectedBody)
	}
	return nil
}

// Complete signals the end of a study session. An empty or non-JSON body is
// not an error: the zero Completion tells the caller to use its defaults.
func (c *Client) Complete(ctx context.Context) (study.Completion, error) {
	data, err := c.do(ctx, http.MethodPost, c.paths.Complete, nil, "")
	if err != nil {
		return study.Completion{}, err
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return study.Completion{}, nil
	}
	var out study.Completion
	if err := json.Unmarshal(data, &out); err != nil {
		c.log.WithError(err).Debug("completion body is not JSON")
		return study.Completion{}, nil
	}
	return out, nil
}
