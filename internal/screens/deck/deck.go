// Package deck is the searchable card list.
package deck

import (
	"context"
	"io"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/screens/cardform"
	"github.com/abhisek/flashdeck/internal/study"
	"github.com/abhisek/flashdeck/internal/translate"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/layout"
)

// Deps are the collaborators of a DeckScreen. A nil Editor makes the deck
// read-only.
type Deps struct {
	Cards      deck.Source
	Editor     deck.Editor
	Translator translate.Translator
	Log        *logrus.Entry
}

type cardsLoadedMsg struct {
	Cards []study.Card
	Err   error
}

type deletedMsg struct {
	Result deck.FormResult
	Err    error
}

type flashExpiredMsg struct {
	seq int
}

// DeckScreen lists every card with a live search box on top.
type DeckScreen struct {
	deps     Deps
	log      *logrus.Entry
	cards    []study.Card
	fields   deck.Fields
	result   deck.SearchResult
	input    components.TextInput
	selected int
	loaded   bool
	errMsg   string
	confirm  bool // delete confirmation showing
	notice   router.Notice
	flashSeq int
}

var _ screen.Screen = (*DeckScreen)(nil)
var _ screen.KeyHintProvider = (*DeckScreen)(nil)
var _ screen.InputCapturer = (*DeckScreen)(nil)

// New creates a DeckScreen searching both fields.
func New(deps Deps) *DeckScreen {
	log := deps.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &DeckScreen{
		deps:   deps,
		log:    log.WithField("component", "deck-screen"),
		fields: deck.AllFields,
		input:  components.NewTextInput("", "Search cards...", 100),
	}
}

func (d *DeckScreen) Init() tea.Cmd {
	return tea.Batch(d.load(), d.input.Focus())
}

func (d *DeckScreen) Title() string {
	return "Deck"
}

func (d *DeckScreen) CapturesInput() bool {
	return true
}

func (d *DeckScreen) KeyHints() []layout.KeyHint {
	if d.confirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Ctrl+Q/A", Description: "Fields"},
	}
	if d.deps.Editor != nil {
		hints = append(hints,
			layout.KeyHint{Key: "Ctrl+N", Description: "Add"},
			layout.KeyHint{Key: "Ctrl+E", Description: "Edit"},
			layout.KeyHint{Key: "Ctrl+D", Description: "Delete"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Result returns the current search result.
func (d *DeckScreen) Result() deck.SearchResult {
	return d.result
}

func (d *DeckScreen) load() tea.Cmd {
	src := d.deps.Cards
	return func() tea.Msg {
		if src == nil {
			return cardsLoadedMsg{}
		}
		cards, err := src.Cards(context.Background())
		return cardsLoadedMsg{Cards: cards, Err: err}
	}
}

func (d *DeckScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case cardsLoadedMsg:
		d.loaded = true
		if msg.Err != nil {
			d.log.WithError(msg.Err).Error("load cards")
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		d.errMsg = ""
		d.cards = msg.Cards
		d.search()
		return d, nil

	case deletedMsg:
		if msg.Err != nil {
			d.log.WithError(msg.Err).Warn("delete card")
			return d, d.flash(router.Notice{Kind: deck.StatusDanger, Message: msg.Err.Error()})
		}
		cmd := d.flash(router.Notice{Kind: msg.Result.Status, Message: msg.Result.Message})
		if msg.Result.OK() {
			return d, tea.Batch(cmd, d.load())
		}
		return d, cmd

	case cardform.SavedMsg:
		return d, tea.Batch(d.flash(msg.Notice), d.load(), d.input.Focus())

	case flashExpiredMsg:
		if msg.seq == d.flashSeq {
			d.notice = router.Notice{}
		}
		return d, nil

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *DeckScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if d.confirm {
		switch key {
		case "y", "Y":
			d.confirm = false
			return d, d.deleteSelected()
		case "n", "N", "esc":
			d.confirm = false
		}
		return d, nil
	}

	switch key {
	case "esc":
		if d.input.Value() != "" {
			d.input.SetValue("")
			d.search()
			return d, nil
		}
		return d, func() tea.Msg { return router.NavigateMsg{Path: router.HomePath} }
	case "up":
		if d.selected > 0 {
			d.selected--
		}
		return d, nil
	case "down":
		if d.selected < len(d.result.Hits)-1 {
			d.selected++
		}
		return d, nil
	case "ctrl+q":
		d.fields.Question = !d.fields.Question
		d.search()
		return d, nil
	case "ctrl+a":
		d.fields.Answer = !d.fields.Answer
		d.search()
		return d, nil
	case "ctrl+r":
		return d, d.load()
	case "ctrl+n":
		return d, d.openForm(nil)
	case "ctrl+e":
		if card, ok := d.selectedCard(); ok {
			return d, d.openForm(&card)
		}
		return d, nil
	case "ctrl+d":
		if _, ok := d.selectedCard(); ok && d.deps.Editor != nil {
			d.confirm = true
		}
		return d, nil
	}

	before := d.input.Value()
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	if d.input.Value() != before {
		d.search()
	}
	return d, cmd
}

// search reruns the query and moves the selection to the first hit.
func (d *DeckScreen) search() {
	d.result = deck.Search(d.cards, d.input.Value(), d.fields)
	d.selected = 0
}

func (d *DeckScreen) selectedCard() (study.Card, bool) {
	if d.selected < 0 || d.selected >= len(d.result.Hits) {
		return study.Card{}, false
	}
	return d.result.Hits[d.selected].Card, true
}

func (d *DeckScreen) openForm(card *study.Card) tea.Cmd {
	if d.deps.Editor == nil {
		return nil
	}
	form := cardform.New(cardform.Deps{
		Editor:     d.deps.Editor,
		Translator: d.deps.Translator,
		Log:        d.deps.Log,
	}, card, true)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: form}
	}
}

func (d *DeckScreen) deleteSelected() tea.Cmd {
	card, ok := d.selectedCard()
	if !ok || d.deps.Editor == nil {
		return nil
	}
	editor := d.deps.Editor
	return func() tea.Msg {
		res, err := editor.DeleteCard(context.Background(), card.ID)
		return deletedMsg{Result: res, Err: err}
	}
}

func (d *DeckScreen) flash(n router.Notice) tea.Cmd {
	d.flashSeq++
	d.notice = n
	seq := d.flashSeq
	return tea.Tick(deck.FlashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{seq: seq}
	})
}
