// Package cli implements the word-trainer CLI commands.
package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/eduventuring-commits/word-trainer/internal/app"
	"github.com/eduventuring-commits/word-trainer/internal/config"
	"github.com/eduventuring-commits/word-trainer/internal/dataset"
	"github.com/eduventuring-commits/word-trainer/internal/model"
	"github.com/eduventuring-commits/word-trainer/internal/store"
)

var (
	configPath string
	dbPath     string
	datasetSrc string
	formatFlag string

	cfg *config.Config
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "word-trainer",
	Short: "Word-study trainer for roots, prefixes and suffixes",
	Long: "Break words into syllables and morphemes, hear chunks read aloud, " +
		"check pronunciation against a speech recognizer and quiz word meanings.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = c
		app.NewLogger(cfg.Log)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $WORD_TRAINER_CONFIG or ./word-trainer.yaml)")
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $WORD_TRAINER_DB or ~/.word-trainer/progress.db)")
	RootCmd.PersistentFlags().StringVar(&datasetSrc, "dataset", "", "Dataset file or URL (default: bundled sample)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text, json or yaml")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.Store.Path
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

func loadCards(cmd *cobra.Command) []model.WordCard {
	src := datasetSrc
	if src == "" {
		src = cfg.Dataset.Source
	}
	d, err := dataset.NewLoader().Load(cmd.Context(), src)
	if err != nil {
		exitErr("load dataset", err)
	}
	return d.WordCards
}

func findCard(cards []model.WordCard, key string) model.WordCard {
	c, err := dataset.Lookup(cards, key)
	if err != nil {
		exitErr("find card", err)
	}
	return c
}

// newRand returns a generator seeded from seed, or from the clock when
// seed is zero.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
