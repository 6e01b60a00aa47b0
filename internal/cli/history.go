package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eduventuring-commits/word-trainer/internal/model"
	"github.com/eduventuring-commits/word-trainer/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history [word]",
		Short: "List logged attempts",
		Long:  "List logged listen and quiz attempts, newest first. An optional word filters by substring.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runHistory,
	}

	cmd.Flags().String("card", "", "Filter by card id")
	cmd.Flags().String("kind", "", "Filter by kind: listen or quiz")
	cmd.Flags().Bool("missed", false, "Only incorrect attempts")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	cardID, _ := cmd.Flags().GetString("card")
	kind, _ := cmd.Flags().GetString("kind")
	missed, _ := cmd.Flags().GetBool("missed")
	limit, _ := cmd.Flags().GetInt("limit")

	f := store.AttemptFilter{
		CardID: cardID,
		Kind:   model.AttemptKind(kind),
		Missed: missed,
		Limit:  limit,
	}
	if len(args) > 0 {
		f.Word = args[0]
	}
	if kind != "" && !model.ValidAttemptKinds[f.Kind] {
		exitErr("history", fmt.Errorf("invalid kind %q (valid: listen, quiz)", kind))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	attempts, err := s.Attempts(cmd.Context(), f)
	if err != nil {
		exitErr("history", err)
	}
	if attempts == nil {
		attempts = []model.Attempt{}
	}

	render(cmd, attempts, func(w io.Writer) {
		for _, a := range attempts {
			mark := "x"
			if a.Correct {
				mark = "ok"
			}
			detail := a.Transcript
			if a.Kind == model.AttemptQuiz {
				detail = a.Answer
			}
			fmt.Fprintf(w, "%s  %-6s %-2s %-16s %s\n",
				a.CreatedAt.Local().Format("2006-01-02 15:04"), a.Kind, mark, a.Word, detail)
		}
	})
}
