package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eduventuring-commits/word-trainer/internal/dataset"
	"github.com/eduventuring-commits/word-trainer/internal/model"
	"github.com/eduventuring-commits/word-trainer/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "List words worth practicing again",
		Long:  "Rank missed and tricky words by miss rate, tricky flag and recency.",
		Args:  cobra.NoArgs,
		Run:   runReview,
	}

	cmd.Flags().String("kind", "", "Only count attempts of this kind: listen or quiz")
	cmd.Flags().IntP("limit", "l", 10, "Max words")

	RootCmd.AddCommand(cmd)
}

func runReview(cmd *cobra.Command, args []string) {
	kind, _ := cmd.Flags().GetString("kind")
	limit, _ := cmd.Flags().GetInt("limit")
	if kind != "" && !model.ValidAttemptKinds[model.AttemptKind(kind)] {
		exitErr("review", fmt.Errorf("invalid kind %q (valid: listen, quiz)", kind))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	result, err := s.Review(cmd.Context(), store.ReviewParams{
		Kind:  model.AttemptKind(kind),
		Limit: limit,
	})
	if err != nil {
		exitErr("review", err)
	}

	// Tricky-only cards have no attempts to take a word from.
	cards := loadCards(cmd)
	for i, w := range result.Words {
		if w.Word == "" {
			if c, ok := dataset.Find(cards, w.CardID); ok {
				result.Words[i].Word = c.Word
			}
		}
	}

	render(cmd, result, func(w io.Writer) {
		for i, rw := range result.Words {
			flag := ""
			if rw.Tricky {
				flag = " (tricky)"
			}
			fmt.Fprintf(w, "%2d. %-16s missed %d/%d  score %.2f%s\n",
				i+1, rw.Word, rw.Misses, rw.Attempts, rw.Score, flag)
		}
	})
}
