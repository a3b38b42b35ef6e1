// Package deck holds everything about a user's card collection that lives
// outside a study session: where cards come from, how they are searched and
// how add/edit forms are validated.
package deck

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/flashdeck/internal/study"
)

// Source provides the cards a study session starts from.
type Source interface {
	Cards(ctx context.Context) ([]study.Card, error)
}

// Editor changes the card collection on the server.
type Editor interface {
	AddCard(ctx context.Context, form CardForm) (FormResult, error)
	EditCard(ctx context.Context, id string, form CardForm) (FormResult, error)
	DeleteCard(ctx context.Context, id string) (FormResult, error)
}

// FileSource reads cards from a JSON array on disk, in the same shape the
// server emits.
type FileSource struct {
	Path string
}

func (f FileSource) Cards(ctx context.Context) ([]study.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read cards: %w", err)
	}

	var cards []study.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("decode cards %s: %w", f.Path, err)
	}
	return cards, nil
}
