package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/abhisek/flashdeck/internal/app"
	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/study"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Browse and manage the card collection",
	Long:  "Without a subcommand, opens the deck browser.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.PathDeck, nil)
	},
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every card",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newCLIEnv(cmd)
		if err != nil {
			return err
		}
		cards, err := env.client.Cards(cmd.Context())
		if err != nil {
			return fmt.Errorf("load cards: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(cards) == 0 {
			fmt.Fprintln(out, "No cards yet.")
			return nil
		}
		printCards(out, cards)
		return nil
	},
}

var deckSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "List cards whose question or answer contains the query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := searchFields(cmd)

		env, err := newCLIEnv(cmd)
		if err != nil {
			return err
		}
		cards, err := env.client.Cards(cmd.Context())
		if err != nil {
			return fmt.Errorf("load cards: %w", err)
		}

		res := deck.Search(cards, strings.Join(args, " "), fields)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, res.Label)
		if res.Count == 0 {
			return nil
		}
		matched := lo.FilterMap(res.Hits, func(h deck.Hit, _ int) (study.Card, bool) {
			return h.Card, h.Match
		})
		printCards(out, matched)
		return nil
	},
}

var deckAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a card",
	RunE: func(cmd *cobra.Command, args []string) error {
		form := formFromFlags(cmd)
		if err := form.Validate(); err != nil {
			return err
		}

		env, err := newCLIEnv(cmd)
		if err != nil {
			return err
		}
		res, err := env.client.AddCard(cmd.Context(), form)
		return reportForm(cmd, res, err)
	},
}

var deckEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Replace the question and answer of a card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form := formFromFlags(cmd)
		if err := form.Validate(); err != nil {
			return err
		}

		env, err := newCLIEnv(cmd)
		if err != nil {
			return err
		}
		res, err := env.client.EditCard(cmd.Context(), args[0], form)
		return reportForm(cmd, res, err)
	},
}

var deckDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newCLIEnv(cmd)
		if err != nil {
			return err
		}
		res, err := env.client.DeleteCard(cmd.Context(), args[0])
		return reportForm(cmd, res, err)
	},
}

func init() {
	deckSearchCmd.Flags().Bool("question", false, "Search questions")
	deckSearchCmd.Flags().Bool("answer", false, "Search answers")

	for _, c := range []*cobra.Command{deckAddCmd, deckEditCmd} {
		c.Flags().StringP("question", "q", "", "Card question")
		c.Flags().StringP("answer", "a", "", "Card answer")
	}

	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSearchCmd)
	deckCmd.AddCommand(deckAddCmd)
	deckCmd.AddCommand(deckEditCmd)
	deckCmd.AddCommand(deckDeleteCmd)
}

// searchFields reads --question and --answer. Neither flag searches both.
func searchFields(cmd *cobra.Command) deck.Fields {
	q, _ := cmd.Flags().GetBool("question")
	a, _ := cmd.Flags().GetBool("answer")
	if !q && !a {
		return deck.AllFields
	}
	return deck.Fields{Question: q, Answer: a}
}

func formFromFlags(cmd *cobra.Command) deck.CardForm {
	q, _ := cmd.Flags().GetString("question")
	a, _ := cmd.Flags().GetString("answer")
	return deck.CardForm{Question: q, Answer: a}
}

// reportForm prints the server's message. A rejected submission is an error.
func reportForm(cmd *cobra.Command, res deck.FormResult, err error) error {
	if err != nil {
		return err
	}
	if !res.OK() {
		return fmt.Errorf("server rejected the change: %s", res.Message)
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	return nil
}

func printCards(out io.Writer, cards []study.Card) {
	fmt.Fprintf(out, "%-8s  %-32s  %-32s  %s\n", "ID", "Question", "Answer", "Level")
	fmt.Fprintln(out, strings.Repeat("─", 84))
	for _, c := range cards {
		fmt.Fprintf(out, "%-8s  %-32s  %-32s  %s\n",
			c.ID, clip(c.Question, 32), clip(c.Answer, 32), c.LevelLabel())
	}
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
