package store

import (
	"context"

	"github.com/abhisek/flashdeck/internal/study"
)

// Recorder adapts a HistoryRepo to the study controller's Recorder.
type Recorder struct {
	Repo HistoryRepo
}

var _ study.Recorder = Recorder{}

func (r Recorder) RecordSession(ctx context.Context, rec study.SessionRecord) error {
	return r.Repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: rec.SessionID,
		Action:    rec.Action,
		Mode:      rec.Mode.String(),
		Cards:     rec.Cards,
		Ratings:   rec.Ratings,
		Duration:  rec.Duration,
		Message:   rec.Message,
	})
}

func (r Recorder) RecordRating(ctx context.Context, rec study.RatingRecord) error {
	return r.Repo.AppendRatingEvent(ctx, RatingEventData{
		SessionID:  rec.SessionID,
		CardID:     rec.CardID,
		Rating:     int(rec.Rating),
		FromReview: rec.FromReview,
		Mode:       rec.Mode.String(),
	})
}
