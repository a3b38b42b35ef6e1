package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/flashdeck/internal/app"
	"github.com/abhisek/flashdeck/internal/deck"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Start a study session",
	Long: "Start a study session over the server's deck, or over a JSON card file " +
		"with --cards. With --subject the session reviews another student's cards.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cardsFile, _ := cmd.Flags().GetString("cards")
		subject, _ := cmd.Flags().GetString("subject")

		return runApp(cmd, app.PathStudy, func(opts *app.Options) error {
			if cardsFile != "" {
				opts.Cards = deck.FileSource{Path: cardsFile}
			}
			opts.SubjectID = subject
			return nil
		})
	},
}

func init() {
	studyCmd.Flags().String("cards", "", "Read cards from a JSON file instead of the server")
	studyCmd.Flags().String("subject", "", "Student ID to review; enables reviewer mode")
}
