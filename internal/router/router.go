package router

import (
	"github.com/abhisek/flashdeck/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// HomePath is the route every unknown path falls back to.
const HomePath = "/"

// Notice is a one-shot message for the screen a navigation lands on.
type Notice struct {
	Kind    string
	Message string
}

// Empty reports whether the notice carries no message.
func (n Notice) Empty() bool {
	return n.Message == ""
}

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
// A non-nil Result is delivered to the screen revealed by the pop.
type PopScreenMsg struct {
	Result tea.Msg
}

// ReplaceScreenMsg requests the router to replace the current screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// NavigateMsg transfers control to the screen registered for Path. The
// stack is discarded, so nothing from the previous screen is rendered again.
type NavigateMsg struct {
	Path   string
	Notice Notice
}

// Factory builds the screen of a route.
type Factory func(n Notice) screen.Screen

// Router manages a stack of screens and a table of named routes.
type Router struct {
	stack  []screen.Screen
	routes map[string]Factory
}

// New creates a new Router with the given initial screen.
func New(initial screen.Screen) *Router {
	return &Router{
		stack:  []screen.Screen{initial},
		routes: make(map[string]Factory),
	}
}

// Handle registers the factory for path.
func (r *Router) Handle(path string, f Factory) {
	r.routes[path] = f
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Replace swaps the top screen and calls the new screen's Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Navigate resets the stack to the screen of path. Unknown paths land on
// HomePath; without a home route the stack is unwound to its root.
func (r *Router) Navigate(path string, n Notice) tea.Cmd {
	f, ok := r.routes[path]
	if !ok {
		f, ok = r.routes[HomePath]
	}
	if !ok {
		r.stack = r.stack[:1]
		return nil
	}
	s := f(n)
	r.stack = []screen.Screen{s}
	return s.Init()
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		cmd := r.Pop()
		if msg.Result == nil {
			return cmd
		}
		return tea.Batch(cmd, r.Update(msg.Result))
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case NavigateMsg:
		return r.Navigate(msg.Path, msg.Notice)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
