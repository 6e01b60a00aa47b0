package cli

import (
	"github.com/spf13/cobra"

	"github.com/eduventuring-commits/word-trainer/internal/speech"
	"github.com/eduventuring-commits/word-trainer/internal/speech/command"
)

func init() {
	cmd := &cobra.Command{
		Use:   "say [chunk...]",
		Short: "Read chunks aloud",
		Long: "Read each chunk aloud through the configured synthesizer, respelling chunks " +
			"that sound wrong in isolation (tion is read as shun).",
		Args: cobra.MinimumNArgs(1),
		Run:  runSay,
	}

	cmd.Flags().Bool("slow", false, "Speak at the slow rate")
	cmd.Flags().Bool("raw", false, "Speak the text as given, without respelling")

	RootCmd.AddCommand(cmd)
}

func runSay(cmd *cobra.Command, args []string) {
	slow, _ := cmd.Flags().GetBool("slow")
	raw, _ := cmd.Flags().GetBool("raw")

	synth, err := command.New(cfg.Speech.Synth)
	if err != nil {
		exitErr("speech", err)
	}
	sp := speech.NewSpeaker(synth,
		speech.WithLanguage(cfg.Speech.Language),
		speech.WithSlow(slow || cfg.Speech.Slow),
	)

	ctx := cmd.Context()
	for _, chunk := range args {
		if raw {
			err = sp.Speak(ctx, chunk)
		} else {
			err = sp.SpeakChunk(ctx, chunk)
		}
		if err != nil {
			exitErr("speak", err)
		}
		if err := sp.Wait(ctx); err != nil {
			exitErr("speak", err)
		}
	}
}
