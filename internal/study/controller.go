package study

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultCompletionTimeout bounds the completion signal round trip.
	DefaultCompletionTimeout = 2 * time.Second

	// DefaultDestination is where control goes after completion.
	DefaultDestination = "/"

	DefaultEmptyMessage    = "Você não tem flashcards para estudar."
	DefaultCompleteMessage = "Você estudou todos os flashcards! 🔥"
	DefaultCompleteKind    = "success"
)

// Options tunes a Controller. Zero values fall back to the defaults.
type Options struct {
	CompletionTimeout time.Duration
	Destination       string
	MinInterval       time.Duration
	EmptyMessage      string
	CompleteMessage   string

	// Now is the clock used by the submission guard.
	Now func() time.Time

	// Rand drives the initial shuffle. Nil uses the package-level source.
	Rand *rand.Rand
}

// DefaultOptions returns Options with every default applied.
func DefaultOptions() Options {
	return Options{
		CompletionTimeout: DefaultCompletionTimeout,
		Destination:       DefaultDestination,
		MinInterval:       DefaultMinSubmitInterval,
		EmptyMessage:      DefaultEmptyMessage,
		CompleteMessage:   DefaultCompleteMessage,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.CompletionTimeout <= 0 {
		o.CompletionTimeout = d.CompletionTimeout
	}
	if o.Destination == "" {
		o.Destination = d.Destination
	}
	if o.MinInterval <= 0 {
		o.MinInterval = d.MinInterval
	}
	if o.EmptyMessage == "" {
		o.EmptyMessage = d.EmptyMessage
	}
	if o.CompleteMessage == "" {
		o.CompleteMessage = d.CompleteMessage
	}
	return o
}

// Deps are the collaborators of a Controller. Speaker, Handoff, Recorder
// and Log are optional.
type Deps struct {
	Ratings    RatingSink
	Completion CompletionSink
	Surface    Surface
	Speaker    Speaker
	Handoff    Handoff
	Recorder   Recorder
	Log        *logrus.Entry
}

// Controller owns all state of one study session and drives the surface.
// Rating actions are serialized by a Guard; the mutex only protects state
// against concurrent reads from the surface.
type Controller struct {
	mu         sync.Mutex
	state      *SessionState
	deps       Deps
	opts       Options
	guard      *Guard
	log        *logrus.Entry
	busy       bool
	lastErr    string
	completion *Completion
}

// NewController creates the controller for a session over cards. A non-empty
// subjectID starts the session in reviewer mode.
func NewController(cards []Card, subjectID string, deps Deps, opts Options) *Controller {
	opts = opts.withDefaults()
	log := deps.Log
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = logrus.NewEntry(discard)
	}

	state := NewSessionState(cards, subjectID, uuid.New().String(), opts.Rand)
	return &Controller{
		state: state,
		deps:  deps,
		opts:  opts,
		guard: NewGuard(opts.MinInterval, opts.Now),
		log: log.WithFields(logrus.Fields{
			"session_id": state.SessionID,
			"mode":       state.Mode.String(),
		}),
	}
}

// SessionID returns the id of this session.
func (c *Controller) SessionID() string {
	return c.state.SessionID
}

// Start renders the first frame and records the session start.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	frame := c.frameLocked()
	phase := c.state.Phase
	c.mu.Unlock()

	c.log.WithField("cards", c.state.Total()).Info("study session started")
	if phase != PhaseEmpty {
		c.record(ctx, SessionRecord{
			SessionID: c.state.SessionID,
			Action:    "start",
			Mode:      c.state.Mode,
			Cards:     c.state.Total(),
		})
	}
	c.render(frame)
}

// Frame returns a snapshot of the current frame.
func (c *Controller) Frame() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frameLocked()
}

// Remaining returns the number of cards still awaiting a resolving rating.
func (c *Controller) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Remaining()
}

// Reveal toggles the answer of the active card in student mode.
func (c *Controller) Reveal() {
	c.mu.Lock()
	if c.state.Phase != PhaseActive || c.state.Mode != ModeStudent {
		c.mu.Unlock()
		return
	}
	c.state.Revealed = !c.state.Revealed
	frame := c.frameLocked()
	c.mu.Unlock()

	c.render(frame)
}

// Speak reads text aloud through the speaker, if any. It never changes the
// session state.
func (c *Controller) Speak(ctx context.Context, text string) {
	if c.deps.Speaker == nil || text == "" {
		return
	}
	c.deps.Speaker.Speak(ctx, text)
}

// Rate submits rating r for the card and, once the rating sink accepted it,
// applies the transition and renders the next step. When the session reaches
// its terminal condition Rate also signals completion and hands off.
//
// A failed submission leaves the state untouched so the same card can be
// rated again.
func (c *Controller) Rate(ctx context.Context, cardID string, r Rating) error {
	if !r.Valid() {
		return ErrInvalidRating
	}

	c.mu.Lock()
	sel, err := c.checkRateableLocked(cardID)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if err := c.guard.Begin(ControlKey(cardID, r)); err != nil {
		c.mu.Unlock()
		c.log.WithFields(logrus.Fields{"card_id": cardID, "rating": r.String()}).
			Debugf("rating suppressed: %v", err)
		return err
	}
	c.busy = true
	c.lastErr = ""
	busyFrame := c.frameLocked()
	c.mu.Unlock()
	c.render(busyFrame)

	req := RatingRequest{CardID: cardID, Rating: r, SubjectID: c.state.SubjectID}
	start := time.Now()
	submitErr := c.deps.Ratings.SubmitRating(ctx, req)
	entry := c.log.WithFields(logrus.Fields{
		"card_id":    cardID,
		"rating":     r.String(),
		"latency_ms": time.Since(start).Milliseconds(),
	})

	c.mu.Lock()
	c.busy = false
	c.guard.End(submitErr == nil)
	if submitErr != nil {
		c.lastErr = submitErr.Error()
		frame := c.frameLocked()
		c.mu.Unlock()
		entry.WithError(submitErr).Warn("rating rejected, state unchanged")
		c.render(frame)
		return fmt.Errorf("submit rating: %w", submitErr)
	}

	c.state.RatingsSubmitted++
	if c.state.Mode == ModeReviewer {
		c.state.Board.Resolve(cardID, r)
		if c.state.Board.Len() == 0 {
			c.state.Phase = PhaseComplete
		}
	} else {
		ApplyRating(c.state, sel, r)
		if Select(c.state).Done {
			c.state.Phase = PhaseComplete
		}
	}
	done := c.state.Phase == PhaseComplete
	rec := RatingRecord{
		SessionID:  c.state.SessionID,
		CardID:     cardID,
		Rating:     r,
		FromReview: sel.FromReview,
		Mode:       c.state.Mode,
	}
	frame := c.frameLocked()
	c.mu.Unlock()

	entry.WithField("remaining", frame.Remaining).Debug("rating accepted")
	if c.deps.Recorder != nil {
		if err := c.deps.Recorder.RecordRating(ctx, rec); err != nil {
			c.log.WithError(err).Warn("record rating history")
		}
	}

	if done {
		c.complete(ctx)
		return nil
	}
	c.render(frame)
	return nil
}

// checkRateableLocked verifies that cardID may be rated now and returns the
// selection it belongs to.
func (c *Controller) checkRateableLocked(cardID string) (Selection, error) {
	switch c.state.Phase {
	case PhaseEmpty:
		return Selection{}, ErrSessionEmpty
	case PhaseComplete:
		return Selection{}, ErrSessionComplete
	}

	if c.state.Mode == ModeReviewer {
		if !c.state.Board.Contains(cardID) {
			return Selection{}, ErrNotActive
		}
		return Selection{Card: Card{ID: cardID}}, nil
	}

	sel := Select(c.state)
	if sel.Done {
		return Selection{}, ErrSessionComplete
	}
	if sel.Card.ID != cardID {
		return Selection{}, ErrNotActive
	}
	return sel, nil
}

// complete signals the completion sink within the completion timeout, falls
// back to the default message on any failure, renders the final frame and
// hands off. A slow or failing sink only degrades the message.
func (c *Controller) complete(ctx context.Context) {
	result := Completion{Status: DefaultCompleteKind, Message: c.opts.CompleteMessage}

	if c.deps.Completion != nil {
		cctx, cancel := context.WithTimeout(ctx, c.opts.CompletionTimeout)
		got, err := c.deps.Completion.Complete(cctx)
		cancel()
		if err != nil {
			c.log.WithError(err).Warn("completion signal failed, using default message")
		} else {
			if got.Message != "" {
				result.Message = got.Message
			}
			if got.Status != "" {
				result.Status = got.Status
			}
		}
	}

	c.mu.Lock()
	c.completion = &result
	frame := c.frameLocked()
	c.mu.Unlock()

	c.record(ctx, SessionRecord{
		SessionID: c.state.SessionID,
		Action:    "end",
		Mode:      c.state.Mode,
		Cards:     c.state.Total(),
		Ratings:   c.state.RatingsSubmitted,
		Duration:  time.Since(c.state.StartTime),
		Message:   result.Message,
	})
	c.log.WithField("ratings", c.state.RatingsSubmitted).Info("study session complete")

	c.render(frame)
	if c.deps.Handoff != nil {
		c.deps.Handoff.Navigate(c.opts.Destination, result)
	}
}

func (c *Controller) record(ctx context.Context, rec SessionRecord) {
	if c.deps.Recorder == nil {
		return
	}
	if err := c.deps.Recorder.RecordSession(ctx, rec); err != nil {
		c.log.WithError(err).Warn("record session history")
	}
}

func (c *Controller) render(f Frame) {
	if c.deps.Surface != nil {
		c.deps.Surface.Render(f)
	}
}

func (c *Controller) frameLocked() Frame {
	s := c.state
	f := Frame{
		Mode:      s.Mode,
		Remaining: s.Remaining(),
		Total:     s.Total(),
		Busy:      c.busy,
		Err:       c.lastErr,
	}

	switch s.Phase {
	case PhaseEmpty:
		f.Status = StatusEmpty
		f.Message = c.opts.EmptyMessage
	case PhaseComplete:
		f.Status = StatusComplete
		f.Message = c.opts.CompleteMessage
		f.Kind = DefaultCompleteKind
		if c.completion != nil {
			f.Message = c.completion.Message
			f.Kind = c.completion.Status
		}
	default:
		if s.Mode == ModeReviewer {
			f.Status = StatusBoard
			f.Cards = s.Board.Cards()
		} else {
			sel := Select(s)
			f.Status = StatusCard
			f.Card = sel.Card
			f.FromReview = sel.FromReview
			f.Revealed = s.Revealed
		}
	}
	return f
}
