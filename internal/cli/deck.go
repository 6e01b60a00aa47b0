package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eduventuring-commits/word-trainer/internal/deck"
	"github.com/eduventuring-commits/word-trainer/internal/model"
	"github.com/eduventuring-commits/word-trainer/internal/progress"
)

func init() {
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Pick and shuffle cards for a practice session",
		Long: "Select cards by grade band and focus, widening the selection when fewer than " +
			"ten cards match, then shuffle them. The deck size is saved as the session total.",
		Args: cobra.NoArgs,
		Run:  runDeck,
	}

	cmd.Flags().StringP("grade", "g", "", "Grade band: 3-4, 5-6, 7-8 or All (default from config)")
	cmd.Flags().String("focus", "", "Focus: Roots, Prefixes, Suffixes or Mixed (default from config)")
	cmd.Flags().Int64("seed", 0, "Shuffle seed (0: random)")
	cmd.Flags().Bool("no-save", false, "Do not update the session total")

	RootCmd.AddCommand(cmd)
}

// DeckResult is the deck command output.
type DeckResult struct {
	Cards []model.WordCard `json:"cards" yaml:"cards"`
	Total int              `json:"total" yaml:"total"`
}

func runDeck(cmd *cobra.Command, args []string) {
	grade, _ := cmd.Flags().GetString("grade")
	focus, _ := cmd.Flags().GetString("focus")
	seed, _ := cmd.Flags().GetInt64("seed")
	noSave, _ := cmd.Flags().GetBool("no-save")

	if grade == "" {
		grade = cfg.Session.GradeBand
	}
	if focus == "" {
		focus = cfg.Session.Focus
	}
	if !model.ValidGradeBands[model.GradeBand(grade)] {
		exitErr("deck", fmt.Errorf("invalid grade band %q (valid: 3-4, 5-6, 7-8, All)", grade))
	}
	if !model.ValidFocuses[model.Focus(focus)] {
		exitErr("deck", fmt.Errorf("invalid focus %q (valid: Roots, Prefixes, Suffixes, Mixed)", focus))
	}

	selected := deck.Select(loadCards(cmd), model.GradeBand(grade), model.Focus(focus))
	cards := deck.Shuffle(selected, newRand(seed))
	res := DeckResult{Cards: cards, Total: len(cards)}

	if !noSave {
		s, err := openStore()
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()
		ctx := cmd.Context()
		p, err := s.Progress(ctx)
		if err != nil {
			exitErr("read progress", err)
		}
		if err := s.SaveProgress(ctx, progress.WithSessionTotal(p, res.Total)); err != nil {
			exitErr("save progress", err)
		}
	}

	render(cmd, res, func(w io.Writer) {
		for i, c := range res.Cards {
			fmt.Fprintf(w, "%2d. %-16s %-4s %s\n", i+1, c.Word, c.GradeBand, c.Meaning)
		}
		fmt.Fprintf(w, "%d cards\n", res.Total)
	})
}
