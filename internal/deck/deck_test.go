package deck

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduventuring-commits/word-trainer/internal/model"
)

func strp(s string) *string { return &s }

// makeCards builds n cards in band; every card has a root, and the first
// withPrefix cards also have a prefix.
func makeCards(prefix string, n, withPrefix int, band model.GradeBand) []model.WordCard {
	out := make([]model.WordCard, n)
	for i := range out {
		out[i] = model.WordCard{
			ID:        fmt.Sprintf("%s-%d", prefix, i),
			Word:      fmt.Sprintf("word%d", i),
			Root:      strp("port"),
			GradeBand: band,
		}
		if i < withPrefix {
			out[i].Prefix = strp("re-")
		}
	}
	return out
}

func ids(cards []model.WordCard) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func TestSelect_GradeAndFocus(t *testing.T) {
	all := append(makeCards("a", 12, 12, model.Grade34), makeCards("b", 12, 0, model.Grade56)...)

	got := Select(all, model.Grade34, model.FocusPrefixes)
	assert.Len(t, got, 12)
	for _, c := range got {
		assert.Equal(t, model.Grade34, c.GradeBand)
	}
}

func TestSelect_AllGradesKeepsEverything(t *testing.T) {
	all := append(makeCards("a", 6, 0, model.Grade34), makeCards("b", 6, 0, model.Grade78)...)
	got := Select(all, model.GradeAll, model.FocusMixed)
	assert.Equal(t, ids(all), ids(got))
}

func TestSelect_DropsGradeBeforeFocus(t *testing.T) {
	// 4 prefixed cards in 3-4, 8 prefixed cards in 5-6: grade+focus gives 4,
	// focus alone gives 12.
	all := append(makeCards("a", 10, 4, model.Grade34), makeCards("b", 10, 8, model.Grade56)...)

	got := Select(all, model.Grade34, model.FocusPrefixes)
	require.Len(t, got, 12)
	for _, c := range got {
		assert.True(t, c.HasPrefix())
	}
}

func TestSelect_FallsBackToEverything(t *testing.T) {
	all := append(makeCards("a", 10, 2, model.Grade34), makeCards("b", 10, 3, model.Grade56)...)

	got := Select(all, model.Grade34, model.FocusPrefixes)
	assert.Equal(t, ids(all), ids(got))
}

func TestSelect_SuffixFocus(t *testing.T) {
	all := makeCards("a", 20, 0, model.Grade78)
	for i := 0; i < 11; i++ {
		all[i].Suffix = strp("-able")
	}
	got := Select(all, model.Grade78, model.FocusSuffixes)
	assert.Len(t, got, 11)
}

func TestSelect_NeverBelowMinimum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bands := []model.GradeBand{model.Grade34, model.Grade56, model.Grade78}
	focuses := []model.Focus{model.FocusRoots, model.FocusPrefixes, model.FocusSuffixes, model.FocusMixed}

	for trial := 0; trial < 50; trial++ {
		n := MinCards + rng.Intn(20)
		all := make([]model.WordCard, n)
		for i := range all {
			all[i] = model.WordCard{ID: fmt.Sprint(i), GradeBand: bands[rng.Intn(3)]}
			if rng.Intn(2) == 0 {
				all[i].Prefix = strp("un")
			}
			if rng.Intn(3) == 0 {
				all[i].Suffix = strp("ful")
			}
		}
		for _, b := range append(bands, model.GradeAll) {
			for _, f := range focuses {
				assert.GreaterOrEqual(t, len(Select(all, b, f)), MinCards)
			}
		}
	}
}

func TestShuffle(t *testing.T) {
	all := makeCards("a", 15, 0, model.Grade34)
	got := Shuffle(all, rand.New(rand.NewSource(1)))

	assert.ElementsMatch(t, ids(all), ids(got))
	assert.Equal(t, "a-0", all[0].ID, "input order must be preserved")
}
