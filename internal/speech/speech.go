// Package speech reads card text aloud through an external TTS command.
package speech

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	DefaultLang  = "en-GB"
	DefaultRate  = 0.8
	DefaultPitch = 1.1

	// baseWPM is the normal speaking rate of espeak-ng and say.
	baseWPM = 175
	// basePitch is espeak-ng's default on its 0-99 pitch scale.
	basePitch = 50
)

// Nop is a speaker that says nothing.
type Nop struct{}

func (Nop) Speak(context.Context, string) {}

// Config configures a CommandSpeaker.
type Config struct {
	// Command is the TTS binary. Empty picks "say" on macOS and "espeak-ng"
	// elsewhere.
	Command string
	Lang    string
	Rate    float64
	// Pitch scales the voice pitch, 1 being normal. say has no pitch
	// option and ignores it.
	Pitch float64
}

type runFunc func(ctx context.Context, name string, args []string) error

// CommandSpeaker speaks through a TTS command. Starting a new utterance
// cancels the one still playing.
type CommandSpeaker struct {
	command string
	lang    string
	rate    float64
	pitch   float64
	log     *logrus.Entry
	run     runFunc

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCommandSpeaker creates a CommandSpeaker. A nil log discards output.
func NewCommandSpeaker(cfg Config, log *logrus.Entry) *CommandSpeaker {
	if cfg.Command == "" {
		cfg.Command = "espeak-ng"
		if runtime.GOOS == "darwin" {
			cfg.Command = "say"
		}
	}
	if cfg.Lang == "" {
		cfg.Lang = DefaultLang
	}
	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRate
	}
	if cfg.Pitch <= 0 {
		cfg.Pitch = DefaultPitch
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &CommandSpeaker{
		command: cfg.Command,
		lang:    cfg.Lang,
		rate:    cfg.Rate,
		pitch:   cfg.Pitch,
		log:     log.WithField("component", "speech"),
		run:     execRun,
	}
}

// Available reports whether the TTS command can be found on PATH.
func (s *CommandSpeaker) Available() bool {
	_, err := exec.LookPath(s.command)
	return err == nil
}

// Speak starts reading text and returns immediately. The utterance stops
// when ctx is cancelled. Failures are logged.
func (s *CommandSpeaker) Speak(ctx context.Context, text string) {
	if text == "" {
		return
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	uctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	args := s.args(text)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		if err := s.run(uctx, s.command, args); err != nil && uctx.Err() == nil {
			s.log.WithError(err).Warn("speak failed")
		}
	}()
}

// Stop cancels the current utterance and waits for it to end.
func (s *CommandSpeaker) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *CommandSpeaker) args(text string) []string {
	wpm := strconv.Itoa(int(float64(baseWPM) * s.rate))
	switch s.command {
	case "say":
		return []string{"-r", wpm, text}
	default:
		pitch := min(int(float64(basePitch)*s.pitch), 99)
		return []string{"-v", s.lang, "-s", wpm, "-p", strconv.Itoa(pitch), text}
	}
}

func execRun(ctx context.Context, name string, args []string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, out)
	}
	return nil
}
