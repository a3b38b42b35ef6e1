package store

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/abhisek/flashdeck/ent"
	"github.com/abhisek/flashdeck/ent/ratingevent"
	"github.com/abhisek/flashdeck/ent/sessionevent"
)

// SessionEventData is one session start or end event.
type SessionEventData struct {
	SessionID string
	Action    string // "start" or "end"
	Mode      string
	Cards     int
	Ratings   int
	Duration  time.Duration
	Message   string
}

// RatingEventData is one accepted rating.
type RatingEventData struct {
	SessionID  string
	CardID     string
	Rating     int
	FromReview bool
	Mode       string
}

// SessionSummary describes one past session.
type SessionSummary struct {
	SessionID string
	Mode      string
	StartedAt time.Time
	Cards     int
	Ratings   int
	Hard      int
	Medium    int
	Easy      int
	Duration  time.Duration
	Message   string
	Completed bool
}

// HistoryRepo appends and queries the study history.
type HistoryRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendRatingEvent(ctx context.Context, data RatingEventData) error

	// RecentSessions returns up to limit sessions, newest first. Sessions
	// that were started but never finished are included with Completed
	// false. limit <= 0 means no limit.
	RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error)
}

type historyRepo struct {
	client *ent.Client
	seq    *sequenceCounter
	now    func() time.Time
}

func (r *historyRepo) timestamp() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

// Field validation runs before a sequence number is drawn, so rejected
// events leave no gap in the timeline.
func validateSessionEvent(data SessionEventData) error {
	if err := sessionevent.ActionValidator(sessionevent.Action(data.Action)); err != nil {
		return err
	}
	if err := sessionevent.SessionIDValidator(data.SessionID); err != nil {
		return fmt.Errorf("session_id: %w", err)
	}
	if err := sessionevent.ModeValidator(data.Mode); err != nil {
		return fmt.Errorf("mode: %w", err)
	}
	return nil
}

func validateRatingEvent(data RatingEventData) error {
	if err := ratingevent.SessionIDValidator(data.SessionID); err != nil {
		return fmt.Errorf("session_id: %w", err)
	}
	if err := ratingevent.CardIDValidator(data.CardID); err != nil {
		return fmt.Errorf("card_id: %w", err)
	}
	if err := ratingevent.RatingValidator(data.Rating); err != nil {
		return fmt.Errorf("rating: %w", err)
	}
	if err := ratingevent.ModeValidator(data.Mode); err != nil {
		return fmt.Errorf("mode: %w", err)
	}
	return nil
}

func (r *historyRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	if err := validateSessionEvent(data); err != nil {
		return fmt.Errorf("invalid session event: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(r.timestamp()).
		SetSessionID(data.SessionID).
		SetAction(sessionevent.Action(data.Action)).
		SetMode(data.Mode).
		SetCards(data.Cards).
		SetRatings(data.Ratings).
		SetDurationMs(data.Duration.Milliseconds()).
		SetMessage(data.Message).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *historyRepo) AppendRatingEvent(ctx context.Context, data RatingEventData) error {
	if err := validateRatingEvent(data); err != nil {
		return fmt.Errorf("invalid rating event: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RatingEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(r.timestamp()).
		SetSessionID(data.SessionID).
		SetCardID(data.CardID).
		SetRating(data.Rating).
		SetFromReview(data.FromReview).
		SetMode(data.Mode).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save rating event: %w", err)
	}
	return nil
}

func (r *historyRepo) RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.ActionEQ(sessionevent.ActionStart)).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	starts, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	out := make([]SessionSummary, 0, len(starts))
	for _, start := range starts {
		s, err := r.summarize(ctx, start)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// summarize joins a start event with its end event, if any, and the
// ratings recorded under the same session id.
func (r *historyRepo) summarize(ctx context.Context, start *ent.SessionEvent) (SessionSummary, error) {
	s := SessionSummary{
		SessionID: start.SessionID,
		Mode:      start.Mode,
		StartedAt: start.Timestamp,
		Cards:     start.Cards,
	}

	end, err := r.client.SessionEvent.Query().
		Where(
			sessionevent.SessionID(start.SessionID),
			sessionevent.ActionEQ(sessionevent.ActionEnd),
		).
		First(ctx)
	switch {
	case ent.IsNotFound(err):
	case err != nil:
		return s, fmt.Errorf("query session end: %w", err)
	default:
		s.Completed = true
		s.Duration = time.Duration(end.DurationMs) * time.Millisecond
		s.Message = end.Message
	}

	ratings, err := r.client.RatingEvent.Query().
		Where(ratingevent.SessionID(start.SessionID)).
		All(ctx)
	if err != nil {
		return s, fmt.Errorf("query session ratings: %w", err)
	}
	s.Ratings = len(ratings)
	s.Hard = lo.CountBy(ratings, func(e *ent.RatingEvent) bool { return e.Rating == 1 })
	s.Medium = lo.CountBy(ratings, func(e *ent.RatingEvent) bool { return e.Rating == 2 })
	s.Easy = lo.CountBy(ratings, func(e *ent.RatingEvent) bool { return e.Rating == 3 })
	return s, nil
}
