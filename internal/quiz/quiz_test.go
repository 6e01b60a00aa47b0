package quiz

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduventuring-commits/word-trainer/internal/model"
)

func newRand() *rand.Rand { return rand.New(rand.NewSource(42)) }

func texts(opts []model.QuizOption) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Text
	}
	return out
}

func assertWellFormed(t *testing.T, opts []model.QuizOption) {
	t.Helper()
	correct := 0
	seen := map[string]bool{}
	for _, o := range opts {
		if o.IsCorrect {
			correct++
		}
		assert.False(t, seen[o.Text], "duplicate option %q", o.Text)
		seen[o.Text] = true
	}
	assert.Equal(t, 1, correct)
	assert.LessOrEqual(t, len(opts), MaxDistractors+1)
}

func TestBuildOptions_OwnDistractors(t *testing.T) {
	card := model.WordCard{
		ID:                 "transport",
		Meaning:            "to carry across",
		DistractorMeanings: []string{"to see clearly", "to break apart", "to write down", "to hear"},
	}
	opts := BuildOptions(card, []model.WordCard{card}, newRand())

	require.Len(t, opts, 4)
	assertWellFormed(t, opts)
	assert.ElementsMatch(t, []string{"to carry across", "to see clearly", "to break apart", "to write down"}, texts(opts))
}

func TestBuildOptions_DuplicateOfCorrectNoOtherSupply(t *testing.T) {
	card := model.WordCard{
		ID:                 "c1",
		Meaning:            "to carry across",
		DistractorMeanings: []string{"to carry across", "to see clearly"},
	}
	other := model.WordCard{ID: "c2", Meaning: "to see", DistractorMeanings: []string{"to see clearly"}}

	opts := BuildOptions(card, []model.WordCard{card, other}, newRand())

	assertWellFormed(t, opts)
	assert.ElementsMatch(t, []string{"to carry across", "to see clearly"}, texts(opts))
}

func TestBuildOptions_DuplicateOfCorrectFilledFromOthers(t *testing.T) {
	card := model.WordCard{
		ID:                 "c1",
		Meaning:            "to carry across",
		DistractorMeanings: []string{"to carry across", "to see clearly"},
	}
	others := []model.WordCard{
		card,
		{ID: "c2", DistractorMeanings: []string{"to see clearly", "to break"}},
		{ID: "c3", DistractorMeanings: []string{"to write", "to hear"}},
	}

	opts := BuildOptions(card, others, newRand())

	require.Len(t, opts, 4)
	assertWellFormed(t, opts)
	assert.ElementsMatch(t, []string{"to carry across", "to see clearly", "to break", "to write"}, texts(opts))
}

func TestBuildOptions_SkipsOwnCardInFill(t *testing.T) {
	card := model.WordCard{ID: "c1", Meaning: "m", DistractorMeanings: []string{"own"}}
	// A second entry with the same id must not contribute.
	twin := model.WordCard{ID: "c1", DistractorMeanings: []string{"twin"}}
	other := model.WordCard{ID: "c2", DistractorMeanings: []string{"x", "y", "z"}}

	opts := BuildOptions(card, []model.WordCard{twin, other}, newRand())

	assert.ElementsMatch(t, []string{"m", "own", "x", "y"}, texts(opts))
}

func TestBuildOptions_Degenerate(t *testing.T) {
	card := model.WordCard{ID: "c1", Meaning: "only"}
	opts := BuildOptions(card, []model.WordCard{card}, newRand())

	require.Len(t, opts, 1)
	assert.True(t, opts[0].IsCorrect)
	assert.False(t, Available(opts))
	assert.Equal(t, 0, Correct(opts))
}

func TestBuildOptions_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pool := []string{"a", "b", "c", "d", "e", "f"}
	for trial := 0; trial < 100; trial++ {
		cards := make([]model.WordCard, 1+rng.Intn(5))
		for i := range cards {
			cards[i].ID = fmt.Sprint(i)
			cards[i].Meaning = pool[rng.Intn(len(pool))]
			for k := rng.Intn(5); k > 0; k-- {
				cards[i].DistractorMeanings = append(cards[i].DistractorMeanings, pool[rng.Intn(len(pool))])
			}
		}
		for _, c := range cards {
			assertWellFormed(t, BuildOptions(c, cards, rng))
		}
	}
}

func TestBuildOptions_ShuffleIsUniform(t *testing.T) {
	card := model.WordCard{ID: "c1", Meaning: "right", DistractorMeanings: []string{"w1", "w2", "w3"}}
	rng := newRand()
	counts := make([]int, 4)
	const trials = 4000
	for i := 0; i < trials; i++ {
		counts[Correct(BuildOptions(card, nil, rng))]++
	}
	for pos, n := range counts {
		assert.InDelta(t, trials/4, n, 200, "correct answer at position %d", pos)
	}
}
