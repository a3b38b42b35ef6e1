package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashdeck/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent study sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		ctx := cmd.Context()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		sessions, err := s.HistoryRepo().RecentSessions(ctx, limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(sessions) == 0 {
			fmt.Fprintln(out, "No sessions recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "%-19s  %-8s  %6s  %5s  %7s  %4s  %6s  %4s  %s\n",
			"Started", "Mode", "Time", "Cards", "Ratings", "Hard", "Medium", "Easy", "Status")
		fmt.Fprintln(out, strings.Repeat("─", 84))
		for _, sum := range sessions {
			secs := int(sum.Duration.Seconds())
			status := "done"
			if !sum.Completed {
				status = "left early"
			}
			fmt.Fprintf(out, "%-19s  %-8s  %3d:%02d  %5d  %7d  %4d  %6d  %4d  %s\n",
				sum.StartedAt.Local().Format("2006-01-02 15:04:05"),
				sum.Mode,
				secs/60, secs%60,
				sum.Cards,
				sum.Ratings,
				sum.Hard, sum.Medium, sum.Easy,
				status,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of sessions to list")
}
