package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show progress and attempt statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), getDBPath())
	if err != nil {
		exitErr("stats", err)
	}

	render(cmd, stats, func(w io.Writer) {
		fmt.Fprintf(w, "database:  %s (%d bytes)\n", stats.DBPath, stats.DBSizeBytes)
		fmt.Fprintf(w, "practiced: %d, correct: %d, session: %d, tricky: %d\n",
			stats.Practiced, stats.Correct, stats.SessionTotal, stats.TrickyWords)
		fmt.Fprintf(w, "attempts:  %d\n", stats.TotalAttempts)
		for _, k := range stats.Kinds {
			fmt.Fprintf(w, "  %-7s %3d attempts, %3d correct (%.0f%%), %d words\n",
				k.Kind, k.Count, k.Correct, k.Rate*100, k.Words)
		}
	})
}
