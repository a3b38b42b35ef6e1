package study

import (
	"context"
	"time"
)

// FrameStatus tells the surface what kind of frame to draw.
type FrameStatus int

const (
	StatusEmpty    FrameStatus = iota // Nothing to study
	StatusCard                        // One face-down card (student mode)
	StatusBoard                       // All cards at once (reviewer mode)
	StatusComplete                    // Session finished
)

// Frame is a value snapshot of everything the surface needs for one render.
// It shares no memory with the controller.
type Frame struct {
	Status FrameStatus
	Mode   Mode

	// Card is the active card in student mode.
	Card Card

	// FromReview is true when Card came from the review pool.
	FromReview bool

	// Revealed is true when the answer of Card should be shown.
	Revealed bool

	// Cards are the unresolved cards in reviewer mode.
	Cards []Card

	// Remaining is the counter of cards still awaiting a resolving rating.
	Remaining int

	// Total is the number of cards in the session.
	Total int

	// Busy is true while a rating submission is in flight. Rating controls
	// must be disabled.
	Busy bool

	// Message is the empty-state or completion message.
	Message string

	// Kind is the completion message kind (e.g. "success").
	Kind string

	// Err describes the last failed submission, if any.
	Err string
}

// Surface renders frames. Implementations must not block.
type Surface interface {
	Render(f Frame)
}

// Completion is the server's answer to the completion signal.
type Completion struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Handoff transfers control to an external destination once the session is
// complete. No further rendering happens after it is called.
type Handoff interface {
	Navigate(destination string, c Completion)
}

// RatingRequest is one rating submission.
type RatingRequest struct {
	CardID    string
	Rating    Rating
	SubjectID string
}

// RatingSink accepts rating submissions.
type RatingSink interface {
	SubmitRating(ctx context.Context, req RatingRequest) error
}

// CompletionSink is signalled once per finished session.
type CompletionSink interface {
	Complete(ctx context.Context) (Completion, error)
}

// Speaker reads text aloud. Calls are best effort and must not block on
// playback.
type Speaker interface {
	Speak(ctx context.Context, text string)
}

// RatingRecord is a history entry for one accepted rating.
type RatingRecord struct {
	SessionID  string
	CardID     string
	Rating     Rating
	FromReview bool
	Mode       Mode
}

// SessionRecord is a history entry for a session start or end.
type SessionRecord struct {
	SessionID string
	Action    string // "start" or "end"
	Mode      Mode
	Cards     int
	Ratings   int
	Duration  time.Duration
	Message   string
}

// Recorder keeps a local history of sessions. Failures never affect the
// session.
type Recorder interface {
	RecordSession(ctx context.Context, rec SessionRecord) error
	RecordRating(ctx context.Context, rec RatingRecord) error
}
