package study

import (
	"context"
	"errors"
	"io"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	sess "github.com/abhisek/flashdeck/internal/study"
	"github.com/abhisek/flashdeck/internal/ui/layout"
)

// Deps are the collaborators of a StudyScreen. Speaker and Recorder are
// optional.
type Deps struct {
	Cards      deck.Source
	Ratings    sess.RatingSink
	Completion sess.CompletionSink
	Speaker    sess.Speaker
	Recorder   sess.Recorder
	Log        *logrus.Entry

	// SubjectID starts the session in reviewer mode when set.
	SubjectID string
	Options   sess.Options
}

// StudyScreen runs one study session. It is the render surface and the
// hand-off target of its controller.
type StudyScreen struct {
	deps     Deps
	log      *logrus.Entry
	bridge   *bridge
	ctrl     *sess.Controller
	frame    sess.Frame
	loaded   bool
	errMsg   string
	selected int // board cursor in reviewer mode

	ctx    context.Context
	cancel context.CancelFunc
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)
var _ screen.CounterProvider = (*StudyScreen)(nil)

// New creates a StudyScreen. Cards are loaded on Init.
func New(deps Deps) *StudyScreen {
	log := deps.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &StudyScreen{
		deps:   deps,
		log:    log.WithField("component", "study-screen"),
		bridge: newBridge(),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	src := s.deps.Cards
	ctx := s.ctx
	return func() tea.Msg {
		if src == nil {
			return cardsLoadedMsg{}
		}
		cards, err := src.Cards(ctx)
		return cardsLoadedMsg{Cards: cards, Err: err}
	}
}

func (s *StudyScreen) Title() string {
	if s.frame.Mode == sess.ModeReviewer {
		return "Review"
	}
	return "Study"
}

func (s *StudyScreen) Counter() *layout.Counter {
	if !s.loaded {
		return nil
	}
	switch s.frame.Status {
	case sess.StatusCard, sess.StatusBoard:
		return &layout.Counter{Remaining: s.frame.Remaining, Total: s.frame.Total}
	}
	return nil
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" || !s.loaded {
		return []layout.KeyHint{{Key: "Esc", Description: "Home"}}
	}
	switch s.frame.Status {
	case sess.StatusCard:
		return []layout.KeyHint{
			{Key: "Space", Description: "Flip"},
			{Key: "1-3", Description: "Rate"},
			{Key: "q/a", Description: "Speak"},
			{Key: "Esc", Description: "Home"},
		}
	case sess.StatusBoard:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "1-3", Description: "Rate"},
			{Key: "q/a", Description: "Speak"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Home"}}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case cardsLoadedMsg:
		return s.handleLoaded(msg)

	case frameMsg:
		s.frame = sess.Frame(msg)
		s.clampSelection()
		return s, s.bridge.listen()

	case rateDoneMsg:
		return s.handleRateDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *StudyScreen) handleLoaded(msg cardsLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.log.WithError(msg.Err).Error("load cards")
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.ctrl = sess.NewController(msg.Cards, s.deps.SubjectID, sess.Deps{
		Ratings:    s.deps.Ratings,
		Completion: s.deps.Completion,
		Surface:    s.bridge,
		Speaker:    s.deps.Speaker,
		Handoff:    s.bridge,
		Recorder:   s.deps.Recorder,
		Log:        s.log,
	}, s.deps.Options)
	s.ctrl.Start(s.ctx)
	s.frame = s.ctrl.Frame()
	s.loaded = true
	return s, s.bridge.listen()
}

func (s *StudyScreen) handleRateDone(msg rateDoneMsg) (screen.Screen, tea.Cmd) {
	switch {
	case msg.Err == nil:
	case errors.Is(msg.Err, sess.ErrTooSoon), errors.Is(msg.Err, sess.ErrSubmissionInFlight):
		// Duplicate trigger, already handled by the guard.
	default:
		s.log.WithError(msg.Err).Debug("rating not applied")
	}
	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" || !s.loaded {
		if key == "esc" || s.errMsg != "" {
			return s, s.leave()
		}
		return s, nil
	}

	if key == "esc" {
		return s, s.leave()
	}

	switch s.frame.Status {
	case sess.StatusCard:
		return s.handleCardKey(key)
	case sess.StatusBoard:
		return s.handleBoardKey(key)
	default:
		if key == "enter" {
			return s, s.leave()
		}
	}
	return s, nil
}

func (s *StudyScreen) handleCardKey(key string) (screen.Screen, tea.Cmd) {
	card := s.frame.Card
	switch key {
	case "space":
		s.ctrl.Reveal()
		s.frame = s.ctrl.Frame()
	case "q":
		s.ctrl.Speak(s.ctx, card.Question)
	case "a":
		if s.frame.Revealed {
			s.ctrl.Speak(s.ctx, card.Answer)
		}
	case "1", "2", "3":
		return s, s.rate(card.ID, key)
	}
	return s, nil
}

func (s *StudyScreen) handleBoardKey(key string) (screen.Screen, tea.Cmd) {
	if len(s.frame.Cards) == 0 {
		return s, nil
	}
	card := s.frame.Cards[s.selected]
	switch key {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.frame.Cards)-1 {
			s.selected++
		}
	case "q":
		s.ctrl.Speak(s.ctx, card.Question)
	case "a":
		s.ctrl.Speak(s.ctx, card.Answer)
	case "1", "2", "3":
		return s, s.rate(card.ID, key)
	}
	return s, nil
}

// rate submits a rating in a command so the network round trip never blocks
// the UI. Disabled buttons ignore presses; the controller's guard catches
// presses that race the busy frame.
func (s *StudyScreen) rate(cardID, key string) tea.Cmd {
	if s.frame.Busy {
		return nil
	}
	r, err := sess.ParseRating(key)
	if err != nil {
		return nil
	}
	ctrl, ctx := s.ctrl, s.ctx
	return func() tea.Msg {
		return rateDoneMsg{Err: ctrl.Rate(ctx, cardID, r)}
	}
}

func (s *StudyScreen) clampSelection() {
	if n := len(s.frame.Cards); s.selected >= n {
		s.selected = max(n-1, 0)
	}
}

// leave abandons the session and returns home. Nothing is persisted.
func (s *StudyScreen) leave() tea.Cmd {
	s.bridge.Close()
	s.cancel()
	return func() tea.Msg {
		return router.NavigateMsg{Path: router.HomePath}
	}
}
