package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eduventuring-commits/word-trainer/internal/chunker"
	"github.com/eduventuring-commits/word-trainer/internal/dataset"
	"github.com/eduventuring-commits/word-trainer/internal/model"
	"github.com/eduventuring-commits/word-trainer/internal/phonetic"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chunks [word]",
		Short: "Split a word into syllables or morphemes",
		Long: "Split a word into sound chunks (syllables) or meaning chunks (prefix, root, suffix). " +
			"Curated words use the built-in lexicon; other words fall back to the dataset card's hints.",
		Args: cobra.ExactArgs(1),
		Run:  runChunks,
	}

	cmd.Flags().StringP("axis", "a", "both", "Axis: sound, morpheme or both")
	cmd.Flags().Bool("speech", false, "Include the text sent to the synthesizer for each chunk")

	RootCmd.AddCommand(cmd)
}

// ChunkView is one displayed chunk.
type ChunkView struct {
	model.Segment `yaml:",inline"`
	Meaning       string `json:"meaning,omitempty" yaml:"meaning,omitempty"`
	Speech        string `json:"speech,omitempty" yaml:"speech,omitempty"`
}

// ChunksResult is the chunks command output.
type ChunksResult struct {
	Word     string      `json:"word" yaml:"word"`
	CardID   string      `json:"card_id,omitempty" yaml:"card_id,omitempty"`
	Sound    []ChunkView `json:"sound,omitempty" yaml:"sound,omitempty"`
	Morpheme []ChunkView `json:"morpheme,omitempty" yaml:"morpheme,omitempty"`
}

func runChunks(cmd *cobra.Command, args []string) {
	axis, _ := cmd.Flags().GetString("axis")
	withSpeech, _ := cmd.Flags().GetBool("speech")
	word := strings.TrimSpace(args[0])

	var axes []model.Axis
	switch axis {
	case "both":
		axes = []model.Axis{model.AxisSound, model.AxisMorpheme}
	case string(model.AxisSound), string(model.AxisMorpheme):
		axes = []model.Axis{model.Axis(axis)}
	default:
		exitErr("chunks", fmt.Errorf("invalid axis %q (valid: sound, morpheme, both)", axis))
	}

	res := ChunksResult{Word: word}
	var card *model.WordCard
	if c, ok := dataset.Find(loadCards(cmd), word); ok {
		card = &c
		res.Word = c.Word
		res.CardID = c.ID
	}

	for _, a := range axes {
		views := viewChunks(chunker.Chunk(res.Word, a, card), withSpeech)
		if a == model.AxisSound {
			res.Sound = views
		} else {
			res.Morpheme = views
		}
	}

	render(cmd, res, func(w io.Writer) {
		if res.Sound != nil {
			fmt.Fprintf(w, "sound:    %s\n", joinViews(res.Sound))
		}
		if res.Morpheme != nil {
			fmt.Fprintf(w, "morpheme: %s\n", joinViews(res.Morpheme))
			for _, v := range res.Morpheme {
				if v.Meaning != "" {
					fmt.Fprintf(w, "  %-8s %s = %s\n", v.Role, v.Text, v.Meaning)
				}
			}
		}
	})
}

func viewChunks(segs []model.Segment, withSpeech bool) []ChunkView {
	views := make([]ChunkView, len(segs))
	for i, s := range segs {
		v := ChunkView{Segment: s}
		if s.Role != model.RoleSyllable {
			v.Meaning, _ = phonetic.Meaning(s.Text)
		}
		if withSpeech {
			v.Speech = phonetic.ToSpeechText(s.Text)
		}
		views[i] = v
	}
	return views
}

func joinViews(views []ChunkView) string {
	parts := make([]string, len(views))
	for i, v := range views {
		parts[i] = v.Text
		if v.Speech != "" && v.Speech != v.Text {
			parts[i] += " (" + v.Speech + ")"
		}
	}
	return strings.Join(parts, " · ")
}
