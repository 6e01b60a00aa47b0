package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eduventuring-commits/word-trainer/internal/lexicon"
)

func init() {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Inspect the built-in word lexicon",
	}

	check := &cobra.Command{
		Use:   "check",
		Short: "Validate every lexicon entry",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := lexicon.Validate(); err != nil {
				exitErr("lexicon", err)
			}
			n := len(lexicon.Words())
			render(cmd, map[string]any{"ok": true, "entries": n}, func(w io.Writer) {
				fmt.Fprintf(w, "%d entries ok\n", n)
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the curated words",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			words := lexicon.Words()
			render(cmd, words, func(w io.Writer) {
				for _, word := range words {
					e, _ := lexicon.Lookup(word)
					fmt.Fprintf(w, "%-16s %-24s %s\n", word,
						strings.Join(e.Syllables, "-"), strings.Join(e.Morphemes, " + "))
				}
			})
		},
	}

	cmd.AddCommand(check, list)
	RootCmd.AddCommand(cmd)
}
