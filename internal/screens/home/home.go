package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/layout"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// Entry is one menu destination. An empty Path quits the program.
type Entry struct {
	Label    string
	Hint     string
	Path     string
	Disabled bool
}

// DefaultEntries is the standard home menu.
func DefaultEntries() []Entry {
	return []Entry{
		{Label: "STUDY", Hint: "review your cards", Path: "/study"},
		{Label: "DECK", Hint: "search, edit and delete cards", Path: "/deck"},
		{Label: "ADD CARD", Hint: "write a new card", Path: "/add"},
		{Label: "HISTORY", Hint: "past sessions", Path: "/history"},
		{Label: "QUIT"},
	}
}

// HomeScreen is the main menu. It also shows the notice a navigation
// carried, e.g. the completion message of a study session.
type HomeScreen struct {
	menu   components.Menu
	notice router.Notice
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen with the given menu entries.
func New(notice router.Notice, entries []Entry) *HomeScreen {
	items := make([]components.MenuItem, len(entries))
	for i, e := range entries {
		items[i] = components.MenuItem{
			Label:    e.Label,
			Hint:     e.Hint,
			Disabled: e.Disabled,
			Action:   navigate(e.Path),
		}
	}
	return &HomeScreen{
		menu:   components.NewMenu(items),
		notice: notice,
	}
}

func navigate(path string) func() tea.Cmd {
	return func() tea.Cmd {
		if path == "" {
			return tea.Quit
		}
		return func() tea.Msg {
			return router.NavigateMsg{Path: path}
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("F L A S H D E C K"))
	if !h.notice.Empty() {
		sections = append(sections, theme.Notice(h.notice.Kind).
			Width(width).
			Align(lipgloss.Center).
			Render(h.notice.Message))
	}

	menu := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 4).
		Render(h.menu.View())
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	return layout.Center(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Notice returns the notice the screen was opened with.
func (h *HomeScreen) Notice() router.Notice {
	return h.notice
}
