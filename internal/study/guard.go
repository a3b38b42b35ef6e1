package study

import (
	"sync"
	"time"
)

// DefaultMinSubmitInterval is the minimum time between two triggers of the
// same rating control.
const DefaultMinSubmitInterval = 700 * time.Millisecond

// Guard serializes rating submissions. Only one submission may be in flight
// at a time, and a control triggered again within the minimum interval of its
// previous accepted trigger is rejected. A rejected submission does not
// throttle its retry.
type Guard struct {
	mu          sync.Mutex
	minInterval time.Duration
	now         func() time.Time
	inFlight    bool
	current     string
	last        map[string]time.Time
}

// NewGuard creates a guard. A nil now uses time.Now.
func NewGuard(minInterval time.Duration, now func() time.Time) *Guard {
	if now == nil {
		now = time.Now
	}
	return &Guard{
		minInterval: minInterval,
		now:         now,
		last:        make(map[string]time.Time),
	}
}

// ControlKey identifies one rating control: a rating button of one card.
func ControlKey(cardID string, r Rating) string {
	return cardID + ":" + r.String()
}

// Begin claims the submission slot for control. It returns
// ErrSubmissionInFlight if another submission has not ended yet, and
// ErrTooSoon if control was triggered less than the minimum interval ago.
// On success the caller must call End.
func (g *Guard) Begin(control string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.inFlight {
		return ErrSubmissionInFlight
	}
	now := g.now()
	if prev, ok := g.last[control]; ok && now.Sub(prev) < g.minInterval {
		return ErrTooSoon
	}
	g.last[control] = now
	g.inFlight = true
	g.current = control
	return nil
}

// End releases the submission slot. When the submission was not accepted
// the control's interval is cleared so the user can retry at once.
func (g *Guard) End(accepted bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !accepted && g.inFlight {
		delete(g.last, g.current)
	}
	g.inFlight = false
	g.current = ""
}

// Busy reports whether a submission is in flight.
func (g *Guard) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inFlight
}
