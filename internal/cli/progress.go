package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eduventuring-commits/word-trainer/internal/model"
	"github.com/eduventuring-commits/word-trainer/internal/progress"
)

func init() {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show or update learner progress",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the progress tally",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			updateProgress(cmd, nil)
		},
	}

	practiced := &cobra.Command{
		Use:   "practiced",
		Short: "Count one practiced word",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			correct, _ := cmd.Flags().GetBool("correct")
			updateProgress(cmd, func(p model.Progress) model.Progress {
				return progress.MarkPracticed(p, correct)
			})
		},
	}
	practiced.Flags().Bool("correct", false, "The meaning check was answered correctly")

	tricky := &cobra.Command{
		Use:   "tricky [word|id]",
		Short: "Flag or unflag a card as tricky",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			card := findCard(loadCards(cmd), args[0])
			updateProgress(cmd, func(p model.Progress) model.Progress {
				return progress.ToggleTricky(p, card.ID)
			})
		},
	}

	total := &cobra.Command{
		Use:   "total [n]",
		Short: "Set the session total",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				exitErr("total", fmt.Errorf("invalid total %q", args[0]))
			}
			updateProgress(cmd, func(p model.Progress) model.Progress {
				return progress.WithSessionTotal(p, n)
			})
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Clear progress and the tricky list",
		Args:  cobra.NoArgs,
		Run:   runReset,
	}
	reset.Flags().Bool("all", false, "Also clear the attempt log")

	cmd.AddCommand(show, practiced, tricky, total, reset)
	RootCmd.AddCommand(cmd)
}

// updateProgress loads progress, applies fn when non-nil, saves, and prints.
func updateProgress(cmd *cobra.Command, fn func(model.Progress) model.Progress) {
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
	if fn != nil {
		p = fn(p)
		if err := s.SaveProgress(ctx, p); err != nil {
			exitErr("save progress", err)
		}
	}
	printProgress(cmd, p)
}

func runReset(cmd *cobra.Command, args []string) {
	all, _ := cmd.Flags().GetBool("all")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.Reset(cmd.Context(), all); err != nil {
		exitErr("reset", err)
	}
	printProgress(cmd, progress.Default())
}

func printProgress(cmd *cobra.Command, p model.Progress) {
	render(cmd, p, func(w io.Writer) {
		fmt.Fprintf(w, "practiced:      %d", p.Practiced)
		if p.SessionTotal > 0 {
			fmt.Fprintf(w, " of %d", p.SessionTotal)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "correct checks: %d\n", p.CorrectMeaningChecks)
		if msg, ok := progress.Milestone(p.CorrectMeaningChecks); ok {
			fmt.Fprintf(w, "                %s\n", msg)
		}
		fmt.Fprintf(w, "tricky words:   %d\n", len(p.TrickyIDs))
		for _, id := range p.TrickyIDs {
			fmt.Fprintf(w, "  - %s\n", id)
		}
	})
}
