package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eduventuring-commits/word-trainer/internal/model"
	"github.com/eduventuring-commits/word-trainer/internal/progress"
	"github.com/eduventuring-commits/word-trainer/internal/quiz"
	"github.com/eduventuring-commits/word-trainer/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "quiz [word|id]",
		Short: "Check the meaning of a word",
		Long: "Show up to four shuffled meanings for a card. Pass --answer with the option number " +
			"to grade it; graded answers update progress and the attempt log.",
		Args: cobra.ExactArgs(1),
		Run:  runQuiz,
	}

	cmd.Flags().IntP("answer", "a", 0, "Option number chosen (1-based); 0 only shows the options")
	cmd.Flags().Int64("seed", 0, "Shuffle seed (0: random); reuse the same seed to grade the options you saw")

	RootCmd.AddCommand(cmd)
}

// QuizResult is the quiz command output.
type QuizResult struct {
	CardID    string             `json:"card_id" yaml:"card_id"`
	Word      string             `json:"word" yaml:"word"`
	Options   []model.QuizOption `json:"options" yaml:"options"`
	Available bool               `json:"available" yaml:"available"`
	Answer    int                `json:"answer,omitempty" yaml:"answer,omitempty"`
	Correct   *bool              `json:"correct,omitempty" yaml:"correct,omitempty"`
	Milestone string             `json:"milestone,omitempty" yaml:"milestone,omitempty"`
	Progress  *model.Progress    `json:"progress,omitempty" yaml:"progress,omitempty"`
}

func runQuiz(cmd *cobra.Command, args []string) {
	answer, _ := cmd.Flags().GetInt("answer")
	seed, _ := cmd.Flags().GetInt64("seed")

	cards := loadCards(cmd)
	card := findCard(cards, args[0])
	opts := quiz.BuildOptions(card, cards, newRand(seed))

	res := QuizResult{
		CardID:    card.ID,
		Word:      card.Word,
		Options:   opts,
		Available: quiz.Available(opts),
	}

	if answer != 0 {
		if answer < 1 || answer > len(opts) {
			exitErr("quiz", fmt.Errorf("answer %d out of range 1..%d", answer, len(opts)))
		}
		chosen := opts[answer-1]
		res.Answer = answer
		res.Correct = &chosen.IsCorrect

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
		p = progress.MarkPracticed(p, chosen.IsCorrect)
		if err := s.SaveProgress(ctx, p); err != nil {
			exitErr("save progress", err)
		}
		if _, err := s.RecordAttempt(ctx, store.AttemptParams{
			CardID:  card.ID,
			Word:    card.Word,
			Kind:    model.AttemptQuiz,
			Correct: chosen.IsCorrect,
			Answer:  chosen.Text,
		}); err != nil {
			exitErr("record attempt", err)
		}
		if chosen.IsCorrect {
			res.Milestone, _ = progress.Milestone(p.CorrectMeaningChecks)
		}
		res.Progress = &p
	}

	render(cmd, res, func(w io.Writer) {
		fmt.Fprintf(w, "What does %q mean?\n", res.Word)
		if !res.Available {
			fmt.Fprintln(w, "  (no other meanings to choose from)")
		}
		for i, o := range res.Options {
			fmt.Fprintf(w, "  %d. %s\n", i+1, o.Text)
		}
		if res.Correct == nil {
			return
		}
		if *res.Correct {
			fmt.Fprintln(w, "Correct!")
			if res.Milestone != "" {
				fmt.Fprintln(w, res.Milestone)
			}
		} else {
			fmt.Fprintf(w, "Not quite. The answer is %d.\n", quiz.Correct(res.Options)+1)
		}
		fmt.Fprintf(w, "Practiced %d, correct %d\n", res.Progress.Practiced, res.Progress.CorrectMeaningChecks)
	})
}
