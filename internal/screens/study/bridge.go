package study

import (
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/router"
	sess "github.com/abhisek/flashdeck/internal/study"
)

// bridge turns controller callbacks into tea messages. The controller calls
// Render and Navigate from command goroutines, so both only record the value
// and wake the single outstanding listen command.
type bridge struct {
	mu    sync.Mutex
	frame sess.Frame
	nav   *router.NavigateMsg
	wake  chan struct{}
	done  chan struct{}
	close sync.Once
}

var (
	_ sess.Surface = (*bridge)(nil)
	_ sess.Handoff = (*bridge)(nil)
)

func newBridge() *bridge {
	return &bridge{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

func (b *bridge) Render(f sess.Frame) {
	b.mu.Lock()
	b.frame = f
	b.mu.Unlock()
	b.signal()
}

func (b *bridge) Navigate(destination string, c sess.Completion) {
	b.mu.Lock()
	b.nav = &router.NavigateMsg{
		Path:   destination,
		Notice: router.Notice{Kind: c.Status, Message: c.Message},
	}
	b.mu.Unlock()
	b.signal()
}

func (b *bridge) signal() {
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// listen waits for the next callback. Frames rendered in between are
// coalesced into the latest one; a pending hand-off wins over any frame.
func (b *bridge) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.wake:
		case <-b.done:
			return nil
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.nav != nil {
			return *b.nav
		}
		return frameMsg(b.frame)
	}
}

// Close releases the outstanding listen command.
func (b *bridge) Close() {
	b.close.Do(func() { close(b.done) })
}
