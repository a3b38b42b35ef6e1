package speech

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"
)

type fakeRunner struct {
	mu      sync.Mutex
	calls   [][]string
	started chan context.Context
}

func (f *fakeRunner) run(ctx context.Context, name string, args []string) error {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string{name}, args...))
	f.mu.Unlock()
	f.started <- ctx
	<-ctx.Done()
	return ctx.Err()
}

func newTestSpeaker(cfg Config) (*CommandSpeaker, *fakeRunner) {
	fr := &fakeRunner{started: make(chan context.Context, 4)}
	s := NewCommandSpeaker(cfg, nil)
	s.run = fr.run
	return s, fr
}

func TestCommandSpeaker_Args(t *testing.T) {
	s, _ := newTestSpeaker(Config{Command: "espeak-ng"})
	got := s.args("hello")
	want := []string{"-v", "en-GB", "-s", "140", "-p", "55", "hello"}
	if !slices.Equal(got, want) {
		t.Errorf("espeak args = %v, want %v", got, want)
	}

	s, _ = newTestSpeaker(Config{Command: "espeak-ng", Pitch: 3})
	got = s.args("loud")
	want = []string{"-v", "en-GB", "-s", "140", "-p", "99", "loud"}
	if !slices.Equal(got, want) {
		t.Errorf("clamped pitch args = %v, want %v", got, want)
	}

	s, _ = newTestSpeaker(Config{Command: "say", Rate: 1})
	got = s.args("hi")
	want = []string{"-r", "175", "hi"}
	if !slices.Equal(got, want) {
		t.Errorf("say args = %v, want %v", got, want)
	}
}

func TestCommandSpeaker_NewUtteranceCancelsPrevious(t *testing.T) {
	s, fr := newTestSpeaker(Config{Command: "espeak-ng"})
	defer s.Stop()

	s.Speak(context.Background(), "first")
	first := <-fr.started

	s.Speak(context.Background(), "second")
	second := <-fr.started

	select {
	case <-first.Done():
	case <-time.After(time.Second):
		t.Fatal("first utterance was not cancelled")
	}
	if second.Err() != nil {
		t.Error("second utterance must still be playing")
	}
}

func TestCommandSpeaker_IgnoresEmptyText(t *testing.T) {
	s, fr := newTestSpeaker(Config{})
	s.Speak(context.Background(), "")
	s.Stop()
	if len(fr.calls) != 0 {
		t.Errorf("calls = %v, want none", fr.calls)
	}
}

func TestCommandSpeaker_StopsWithCallerContext(t *testing.T) {
	s, fr := newTestSpeaker(Config{})
	defer s.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	s.Speak(ctx, "word")
	uctx := <-fr.started
	cancel()

	select {
	case <-uctx.Done():
	case <-time.After(time.Second):
		t.Error("utterance kept playing after the caller's context was cancelled")
	}
}
