// Package cardform is the add/edit card form.
package cardform

import (
	"context"
	"errors"
	"io"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/study"
	"github.com/abhisek/flashdeck/internal/translate"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/layout"
)

// maxFieldLength matches the validation limit of a card field.
const maxFieldLength = 500

// Deps are the collaborators of a FormScreen. A nil Translator disables the
// answer suggestion.
type Deps struct {
	Editor     deck.Editor
	Translator translate.Translator
	Log        *logrus.Entry
}

// SavedMsg is delivered to the screen below a form that was opened on top
// of it, after a successful save.
type SavedMsg struct {
	Notice router.Notice
}

type savedMsg struct {
	Result deck.FormResult
	Err    error
}

type suggestedMsg struct {
	Text string
	Err  error
}

type flashExpiredMsg struct {
	seq int
}

// FormScreen adds a new card or edits an existing one.
type FormScreen struct {
	deps     Deps
	log      *logrus.Entry
	cardID   string // empty when adding
	stacked  bool   // opened on top of another screen
	inputs   [2]components.TextInput
	focus    int
	busy     bool
	notice   router.Notice
	flashSeq int
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)
var _ screen.InputCapturer = (*FormScreen)(nil)

// New creates a form. A nil card adds a new card. A stacked form pops itself
// after a successful save; otherwise it clears for the next card.
func New(deps Deps, card *study.Card, stacked bool) *FormScreen {
	log := deps.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	f := &FormScreen{
		deps:    deps,
		log:     log.WithField("component", "card-form"),
		stacked: stacked,
		inputs: [2]components.TextInput{
			components.NewTextInput("Question", "e.g. the dog", maxFieldLength),
			components.NewTextInput("Answer", "e.g. o cachorro", maxFieldLength),
		},
	}
	if card != nil {
		f.cardID = card.ID
		f.inputs[0].SetValue(card.Question)
		f.inputs[1].SetValue(card.Answer)
	}
	return f
}

func (f *FormScreen) Init() tea.Cmd {
	return f.inputs[0].Focus()
}

func (f *FormScreen) Title() string {
	if f.cardID != "" {
		return "Edit card"
	}
	return "Add card"
}

func (f *FormScreen) CapturesInput() bool {
	return true
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
	}
	if f.deps.Translator != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+T", Description: "Suggest answer"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Form returns the current field values.
func (f *FormScreen) Form() deck.CardForm {
	return deck.CardForm{Question: f.inputs[0].Value(), Answer: f.inputs[1].Value()}
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		return f.handleSaved(msg)

	case suggestedMsg:
		f.busy = false
		if msg.Err != nil {
			f.log.WithError(msg.Err).Warn("suggest answer")
			return f, f.flash(router.Notice{Kind: deck.StatusDanger, Message: suggestError(msg.Err)})
		}
		f.inputs[1].SetValue(msg.Text)
		return f, nil

	case flashExpiredMsg:
		if msg.seq == f.flashSeq {
			f.notice = router.Notice{}
		}
		return f, nil

	case tea.KeyMsg:
		return f.handleKey(msg)
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *FormScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return f, f.back()
	case "tab", "down":
		return f, f.setFocus((f.focus + 1) % len(f.inputs))
	case "shift+tab", "up":
		return f, f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs))
	case "enter":
		return f, f.submit()
	case "ctrl+t":
		return f, f.suggest()
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *FormScreen) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[i].Focus()
}

// submit validates locally and only then calls the editor.
func (f *FormScreen) submit() tea.Cmd {
	if f.busy {
		return nil
	}
	form := f.Form().Normalize()
	if err := form.Validate(); err != nil {
		return f.flash(router.Notice{Kind: deck.StatusDanger, Message: err.Error()})
	}
	if f.deps.Editor == nil {
		return f.flash(router.Notice{Kind: deck.StatusDanger, Message: "Editing cards needs a server connection"})
	}

	f.busy = true
	editor, id := f.deps.Editor, f.cardID
	return func() tea.Msg {
		ctx := context.Background()
		var (
			res deck.FormResult
			err error
		)
		if id == "" {
			res, err = editor.AddCard(ctx, form)
		} else {
			res, err = editor.EditCard(ctx, id, form)
		}
		return savedMsg{Result: res, Err: err}
	}
}

func (f *FormScreen) handleSaved(msg savedMsg) (screen.Screen, tea.Cmd) {
	f.busy = false
	if msg.Err != nil {
		f.log.WithError(msg.Err).Warn("save card")
		return f, f.flash(router.Notice{Kind: deck.StatusDanger, Message: msg.Err.Error()})
	}

	notice := router.Notice{Kind: msg.Result.Status, Message: msg.Result.Message}
	if !msg.Result.OK() {
		return f, f.flash(notice)
	}
	if f.stacked {
		return f, func() tea.Msg {
			return router.PopScreenMsg{Result: SavedMsg{Notice: notice}}
		}
	}

	f.inputs[0].SetValue("")
	f.inputs[1].SetValue("")
	return f, tea.Batch(f.flash(notice), f.setFocus(0))
}

func (f *FormScreen) suggest() tea.Cmd {
	if f.deps.Translator == nil || f.busy {
		return nil
	}
	question := f.Form().Normalize().Question
	if question == "" {
		return f.flash(router.Notice{Kind: deck.StatusDanger, Message: "Write a question first"})
	}

	f.busy = true
	tr := f.deps.Translator
	return func() tea.Msg {
		text, err := tr.Translate(context.Background(), question)
		return suggestedMsg{Text: text, Err: err}
	}
}

// flash shows n until deck.FlashDuration has passed or another notice
// replaces it.
func (f *FormScreen) flash(n router.Notice) tea.Cmd {
	f.flashSeq++
	f.notice = n
	seq := f.flashSeq
	return tea.Tick(deck.FlashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{seq: seq}
	})
}

func (f *FormScreen) back() tea.Cmd {
	if f.stacked {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	return func() tea.Msg { return router.NavigateMsg{Path: router.HomePath} }
}

func suggestError(err error) string {
	var rateErr *translate.ErrRateLimit
	var downErr *translate.ErrProviderUnavailable
	switch {
	case errors.As(err, &rateErr):
		return "Suggestion service is busy, try again shortly"
	case errors.As(err, &downErr):
		return "Suggestion service is unavailable"
	}
	return "Could not suggest an answer"
}
