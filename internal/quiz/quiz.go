// Package quiz builds multiple-choice meaning checks for word cards.
package quiz

import (
	"math/rand"

	"github.com/eduventuring-commits/word-trainer/internal/model"
)

// MaxDistractors is the number of wrong answers offered alongside the
// correct one.
const MaxDistractors = 3

// BuildOptions returns the correct meaning of card plus up to MaxDistractors
// distinct distractors, shuffled. The card's own distractors are used first;
// the rest come from the other cards, in order. No two options share text.
func BuildOptions(card model.WordCard, all []model.WordCard, rng *rand.Rand) []model.QuizOption {
	seen := map[string]bool{card.Meaning: true}
	var distractors []string

	take := func(d string) {
		if seen[d] {
			return
		}
		seen[d] = true
		distractors = append(distractors, d)
	}

	for _, d := range card.DistractorMeanings {
		take(d)
	}

	if len(distractors) < MaxDistractors {
	fill:
		for _, other := range all {
			if other.ID == card.ID {
				continue
			}
			for _, d := range other.DistractorMeanings {
				take(d)
				if len(distractors) >= MaxDistractors {
					break fill
				}
			}
		}
	}

	if len(distractors) > MaxDistractors {
		distractors = distractors[:MaxDistractors]
	}

	options := make([]model.QuizOption, 0, len(distractors)+1)
	options = append(options, model.QuizOption{Text: card.Meaning, IsCorrect: true})
	for _, d := range distractors {
		options = append(options, model.QuizOption{Text: d})
	}
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	return options
}

// Available reports whether options make a usable quiz: a correct answer and
// at least one distractor.
func Available(options []model.QuizOption) bool {
	return len(options) > 1
}

// Correct returns the index of the correct option, or -1.
func Correct(options []model.QuizOption) int {
	for i, o := range options {
		if o.IsCorrect {
			return i
		}
	}
	return -1
}
