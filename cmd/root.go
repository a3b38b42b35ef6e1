package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/flashdeck/internal/config"
	"github.com/abhisek/flashdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "flashdeck",
	Short: "Study flashcards in the terminal",
	Long: "Flashdeck is a terminal client for a flashcard server: study a deck, " +
		"rate each card and manage the collection.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "", nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a config file (default searches $XDG_CONFIG_HOME/flashdeck)")
	pf.String("db", "", "Path to SQLite history database (overrides FLASHDECK_DB env var)")
	pf.String("server", "", "Flashcard server base URL")
	pf.String("log-level", "", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(deckCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the configuration with the persistent flags applied on
// top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flag := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return config.Load(config.Options{
		File: flag("config"),
		Overrides: map[string]any{
			"server.base_url": flag("server"),
			"log.level":       flag("log-level"),
			"db.path":         flag("db"),
		},
	})
}

// resolveDBPath returns the database path using --db or db.path (highest
// priority), then FLASHDECK_DB env var, then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if p := cfg.DB.Path; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
