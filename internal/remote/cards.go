package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abhisek/flashdeck/internal/study"
)

// Cards downloads the user's card collection, retrying transient failures.
func (c *Client) Cards(ctx context.Context) ([]study.Card, error) {
	var data []byte
	err := c.withRetry(ctx, func() error {
		var err error
		data, err = c.do(ctx, http.MethodGet, c.paths.Cards, nil, "")
		return err
	})
	if err != nil {
		return nil, err
	}

	var cards []study.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("decode cards: %w", err)
	}
	return cards, nil
}
