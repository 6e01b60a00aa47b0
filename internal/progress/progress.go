// Package progress computes the next learner tally for each practice event.
// All functions are pure: they never mutate their input and persistence is
// left to the caller.
package progress

import (
	"slices"

	"github.com/eduventuring-commits/word-trainer/internal/model"
)

// Default returns an empty tally.
func Default() model.Progress {
	return model.Progress{TrickyIDs: []string{}}
}

// MarkPracticed counts one practiced card, and one correct meaning check
// when correct is true.
func MarkPracticed(p model.Progress, correct bool) model.Progress {
	next := clone(p)
	next.Practiced++
	if correct {
		next.CorrectMeaningChecks++
	}
	return next
}

// ToggleTricky adds cardID to the tricky set, or removes it if present.
func ToggleTricky(p model.Progress, cardID string) model.Progress {
	next := clone(p)
	if i := slices.Index(next.TrickyIDs, cardID); i >= 0 {
		next.TrickyIDs = slices.Delete(next.TrickyIDs, i, i+1)
		return next
	}
	next.TrickyIDs = append(next.TrickyIDs, cardID)
	return next
}

// IsTricky reports whether cardID is marked tricky.
func IsTricky(p model.Progress, cardID string) bool {
	return slices.Contains(p.TrickyIDs, cardID)
}

// WithSessionTotal records the size of the current deck.
func WithSessionTotal(p model.Progress, total int) model.Progress {
	next := clone(p)
	next.SessionTotal = total
	return next
}

func clone(p model.Progress) model.Progress {
	p.TrickyIDs = slices.Clone(p.TrickyIDs)
	if p.TrickyIDs == nil {
		p.TrickyIDs = []string{}
	}
	return p
}

type milestone struct {
	at      int
	message string
}

var milestones = []milestone{
	{1, "Your brain is getting stronger!"},
	{3, "You solved 3 words! Keep going!"},
	{5, "You are training your reading muscles!"},
	{7, "7 words! You are on fire!"},
	{10, "10 words! You are a word champion!"},
	{15, "15 words! Super reader in the making!"},
	{20, "20 words! Your reading superpowers are REAL!"},
}

// Milestone returns the message for the highest milestone reached by
// correctCount, or false when none has been reached.
func Milestone(correctCount int) (string, bool) {
	for i := len(milestones) - 1; i >= 0; i-- {
		if correctCount >= milestones[i].at {
			return milestones[i].message, true
		}
	}
	return "", false
}
