package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/screens/cardform"
	deckscreen "github.com/abhisek/flashdeck/internal/screens/deck"
	"github.com/abhisek/flashdeck/internal/screens/history"
	"github.com/abhisek/flashdeck/internal/screens/home"
	studyscreen "github.com/abhisek/flashdeck/internal/screens/study"
	"github.com/abhisek/flashdeck/internal/store"
	"github.com/abhisek/flashdeck/internal/study"
	"github.com/abhisek/flashdeck/internal/translate"
	"github.com/abhisek/flashdeck/internal/ui/layout"
)

// Options wires the application. Editor, Translator, Speaker, Recorder and
// History are optional; the screens that need them degrade without.
type Options struct {
	Cards      deck.Source
	Editor     deck.Editor
	Ratings    study.RatingSink
	Completion study.CompletionSink
	Speaker    study.Speaker
	Recorder   study.Recorder
	History    store.HistoryRepo
	Translator translate.Translator
	Log        *logrus.Entry

	// Study tunes every study session.
	Study study.Options

	// SubjectID starts study sessions in reviewer mode.
	SubjectID string

	// StartPath is the first route shown. Empty starts at home.
	StartPath string
}

// Route paths.
const (
	PathStudy   = "/study"
	PathDeck    = "/deck"
	PathAdd     = "/add"
	PathHistory = "/history"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel showing opts.StartPath.
func newAppModel(opts Options) AppModel {
	routes := buildRoutes(opts)
	start, ok := routes[opts.StartPath]
	if !ok {
		start = routes[router.HomePath]
	}

	r := router.New(start(router.Notice{}))
	for path, f := range routes {
		r.Handle(path, f)
	}
	return AppModel{router: r}
}

func buildRoutes(opts Options) map[string]router.Factory {
	entries := home.DefaultEntries()
	for i := range entries {
		if entries[i].Path == PathAdd && opts.Editor == nil {
			entries[i].Disabled = true
		}
	}
	formDeps := cardform.Deps{
		Editor:     opts.Editor,
		Translator: opts.Translator,
		Log:        opts.Log,
	}

	return map[string]router.Factory{
		router.HomePath: func(n router.Notice) screen.Screen {
			return home.New(n, entries)
		},
		PathStudy: func(router.Notice) screen.Screen {
			return studyscreen.New(studyscreen.Deps{
				Cards:      opts.Cards,
				Ratings:    opts.Ratings,
				Completion: opts.Completion,
				Speaker:    opts.Speaker,
				Recorder:   opts.Recorder,
				Log:        opts.Log,
				SubjectID:  opts.SubjectID,
				Options:    opts.Study,
			})
		},
		PathDeck: func(router.Notice) screen.Screen {
			return deckscreen.New(deckscreen.Deps{
				Cards:      opts.Cards,
				Editor:     opts.Editor,
				Translator: opts.Translator,
				Log:        opts.Log,
			})
		},
		PathAdd: func(router.Notice) screen.Screen {
			return cardform.New(formDeps, nil, false)
		},
		PathHistory: func(router.Notice) screen.Screen {
			return history.New(opts.History)
		},
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturesInput() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	var counter *layout.Counter
	if active != nil {
		title = active.Title()
	}
	if cp, ok := active.(screen.CounterProvider); ok {
		counter = cp.Counter()
	}

	header := layout.RenderHeader(title, counter, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
