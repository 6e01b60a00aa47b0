package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/eduventuring-commits/word-trainer/internal/dataset"
	"github.com/eduventuring-commits/word-trainer/internal/model"
	"github.com/eduventuring-commits/word-trainer/internal/speech"
	"github.com/eduventuring-commits/word-trainer/internal/speech/jsonl"
	"github.com/eduventuring-commits/word-trainer/internal/store"
	"github.com/eduventuring-commits/word-trainer/internal/voicematch"
)

func init() {
	cmd := &cobra.Command{
		Use:   "listen [word]",
		Short: "Check a spoken word against recognizer output",
		Long: "Read recognizer hypotheses as JSON lines ({\"alternatives\":[...],\"final\":bool}) " +
			"from stdin or --input and report whether the learner said the word. " +
			"Small slips are accepted: up to a quarter of the word's letters may differ.",
		Args: cobra.ExactArgs(1),
		Run:  runListen,
	}

	cmd.Flags().StringP("input", "i", "-", "Recognizer JSON-lines input file (- for stdin)")
	cmd.Flags().IntP("attempts", "n", 1, "Listening attempts before giving up")
	cmd.Flags().BoolP("verbose", "v", false, "Print hypotheses as they arrive")
	cmd.Flags().Bool("no-record", false, "Do not log the attempt")

	RootCmd.AddCommand(cmd)
}

// ListenResult is the listen command output.
type ListenResult struct {
	voicematch.Outcome `yaml:",inline"`
	Word               string `json:"word" yaml:"word"`
	CardID             string `json:"card_id,omitempty" yaml:"card_id,omitempty"`
	Attempts           int    `json:"attempts" yaml:"attempts"`
	AttemptID          string `json:"attempt_id,omitempty" yaml:"attempt_id,omitempty"`
}

func runListen(cmd *cobra.Command, args []string) {
	input, _ := cmd.Flags().GetString("input")
	attempts, _ := cmd.Flags().GetInt("attempts")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noRecord, _ := cmd.Flags().GetBool("no-record")
	if attempts < 1 {
		attempts = 1
	}

	res := ListenResult{Word: strings.TrimSpace(args[0])}
	if c, ok := dataset.Find(loadCards(cmd), res.Word); ok {
		res.Word = c.Word
		res.CardID = c.ID
	}

	var in io.Reader = cmd.InOrStdin()
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			exitErr("open input", err)
		}
		defer f.Close()
		in = f
	}

	rcfg := speech.DefaultRecognitionConfig()
	rcfg.Language = cfg.Speech.Language
	rcfg.MaxAlternatives = cfg.Speech.MaxAlts

	updates := make(chan voicematch.Outcome, 32)
	l := voicematch.NewListener(jsonl.New(in, slog.Default()),
		voicematch.WithConfig(rcfg),
		voicematch.WithOnChange(func(o voicematch.Outcome) {
			select {
			case updates <- o:
			default:
			}
		}),
	)
	l.SetTarget(res.Word)

	quit := make(chan struct{})
	g, ctx := errgroup.WithContext(cmd.Context())

	g.Go(func() error {
		defer close(quit)
		defer l.Stop()
		for res.Attempts < attempts {
			res.Attempts++
			if err := l.Start(ctx); err != nil {
				return err
			}
			o, err := l.Wait(ctx)
			if err != nil {
				return err
			}
			res.Outcome = o
			if o.State != voicematch.StateRetry {
				break
			}
		}
		return nil
	})

	g.Go(func() error {
		errOut := cmd.ErrOrStderr()
		for {
			select {
			case o := <-updates:
				if verbose && o.State == voicematch.StateListening && o.Transcript != "" {
					fmt.Fprintf(errOut, "heard: %s\n", o.Transcript)
				}
				if verbose && o.State == voicematch.StateRetry {
					fmt.Fprintln(errOut, "not quite, try again")
				}
			case <-quit:
				return nil
			}
		}
	})

	if err := g.Wait(); err != nil {
		exitErr("listen", err)
	}

	if !noRecord && res.State != voicematch.StateIdle {
		s, err := openStore()
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()
		a, err := s.RecordAttempt(cmd.Context(), store.AttemptParams{
			CardID:     res.CardID,
			Word:       res.Word,
			Kind:       model.AttemptListen,
			Correct:    res.State == voicematch.StateSuccess,
			Transcript: res.Transcript,
		})
		if err != nil {
			exitErr("record attempt", err)
		}
		res.AttemptID = a.ID
	}

	render(cmd, res, func(w io.Writer) {
		switch res.State {
		case voicematch.StateSuccess:
			fmt.Fprintf(w, "matched %q (heard %q)\n", res.Word, res.Transcript)
		case voicematch.StateRetry:
			fmt.Fprintf(w, "no match for %q (heard %q)\n", res.Word, res.Transcript)
			if c := res.Closest; c != nil {
				hint := ""
				if c.SoundsLike {
					hint = ", sounds close"
				}
				fmt.Fprintf(w, "closest: %q, %d edits away, %d allowed%s\n",
					c.Token, c.Distance, voicematch.Threshold(res.Word), hint)
			}
		default:
			fmt.Fprintln(w, "recognition stopped before a result")
		}
	})
}
