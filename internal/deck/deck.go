// Package deck chooses which word cards a practice session uses.
package deck

import (
	"math/rand"
	"slices"

	"github.com/eduventuring-commits/word-trainer/internal/model"
)

// MinCards is the smallest deck Select will settle for before widening the
// filter.
const MinCards = 10

// Select filters cards by grade band and focus. If fewer than MinCards
// remain it drops the grade band, and if that is still too few it returns
// every card.
func Select(cards []model.WordCard, grade model.GradeBand, focus model.Focus) []model.WordCard {
	byGrade := cards
	if grade != model.GradeAll {
		byGrade = filter(cards, func(c model.WordCard) bool { return c.GradeBand == grade })
	}

	if byFocus := applyFocus(byGrade, focus); len(byFocus) >= MinCards {
		return byFocus
	}
	if byFocus := applyFocus(cards, focus); len(byFocus) >= MinCards {
		return byFocus
	}
	return cards
}

func applyFocus(cards []model.WordCard, focus model.Focus) []model.WordCard {
	switch focus {
	case model.FocusRoots:
		return filter(cards, model.WordCard.HasRoot)
	case model.FocusPrefixes:
		return filter(cards, model.WordCard.HasPrefix)
	case model.FocusSuffixes:
		return filter(cards, model.WordCard.HasSuffix)
	default:
		return cards
	}
}

func filter(cards []model.WordCard, keep func(model.WordCard) bool) []model.WordCard {
	out := make([]model.WordCard, 0, len(cards))
	for _, c := range cards {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// Shuffle returns a uniformly shuffled copy of cards.
func Shuffle(cards []model.WordCard, rng *rand.Rand) []model.WordCard {
	out := slices.Clone(cards)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
