package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/flashdeck/internal/app"
	"github.com/abhisek/flashdeck/internal/config"
	"github.com/abhisek/flashdeck/internal/logging"
	"github.com/abhisek/flashdeck/internal/remote"
	"github.com/abhisek/flashdeck/internal/speech"
	"github.com/abhisek/flashdeck/internal/store"
	"github.com/abhisek/flashdeck/internal/translate"
)

// runApp loads configuration, builds dependencies and launches the TUI at
// startPath. configure may adjust the options before the program starts.
func runApp(cmd *cobra.Command, startPath string, configure func(*app.Options) error) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logFile, err := logging.OpenFile(cfg.LogFile())
	if err != nil {
		return err
	}
	defer logFile.Close()
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, logFile)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	client := newClient(cfg, log)
	history := st.HistoryRepo()
	opts := app.Options{
		Cards:      client,
		Editor:     client,
		Ratings:    client,
		Completion: client,
		Speaker:    speech.Nop{},
		Recorder:   store.Recorder{Repo: history},
		History:    history,
		Log:        logging.Component(log, "app"),
		Study:      cfg.StudyOptions(),
		StartPath:  startPath,
	}

	if cfg.Speech.Enabled {
		sp := speech.NewCommandSpeaker(cfg.SpeechConfig(), logging.Component(log, "speech"))
		defer sp.Stop()
		if sp.Available() {
			opts.Speaker = sp
		} else {
			log.Warn("speech enabled but no TTS command found")
		}
	}

	tr, err := translate.New(ctx, cfg.TranslateConfig(), client, logging.Component(log, "translate"))
	switch {
	case errors.Is(err, translate.ErrDisabled):
	case err != nil:
		fmt.Fprintln(os.Stderr, "Translation not configured:", err)
		fmt.Fprintln(os.Stderr, "Answer suggestions will be unavailable.")
	default:
		opts.Translator = tr
	}

	if configure != nil {
		if err := configure(&opts); err != nil {
			return err
		}
	}

	log.WithField("server", client.BaseURL()).Info("starting")
	return app.Run(opts)
}

// newClient builds the server client from cfg.
func newClient(cfg *config.Config, log *logrus.Logger) *remote.Client {
	opts := append(cfg.RemoteOptions(), remote.WithLogger(logging.Component(log, "remote")))
	return remote.NewClient(opts...)
}

// cliEnv is what the non-interactive commands share: config, a logger on
// stderr and the server client.
type cliEnv struct {
	cfg    *config.Config
	log    *logrus.Logger
	client *remote.Client
}

func newCLIEnv(cmd *cobra.Command) (*cliEnv, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return &cliEnv{cfg: cfg, log: log, client: newClient(cfg, log)}, nil
}
