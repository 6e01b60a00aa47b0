// Package lexicon holds the curated reference decompositions for the words in
// the dataset. Lookups are read-only and safe for concurrent use.
package lexicon

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eduventuring-commits/word-trainer/internal/model"
)

// Entry is a pre-authored decomposition of one word. The syllable slices are
// parallel, as are the three morpheme slices.
type Entry struct {
	Syllables  []string     `json:"syllables"`
	SoundCues  []string     `json:"sound_cues"`
	Morphemes  []string     `json:"morphemes"`
	MorphCues  []string     `json:"morph_cues"`
	MorphRoles []model.Role `json:"morph_roles"`
}

// Lookup returns the entry for word, ignoring case.
func Lookup(word string) (Entry, bool) {
	e, ok := entries[strings.ToLower(strings.TrimSpace(word))]
	return e, ok
}

// Words returns every word in the table, sorted.
func Words() []string {
	out := make([]string, 0, len(entries))
	for w := range entries {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Segments converts the entry into segments along the requested axis.
func (e Entry) Segments(axis model.Axis) []model.Segment {
	if axis == model.AxisMorpheme {
		segs := make([]model.Segment, len(e.Morphemes))
		for i, m := range e.Morphemes {
			segs[i] = model.Segment{Text: m, Role: e.MorphRoles[i], Cue: e.MorphCues[i]}
		}
		return segs
	}
	segs := make([]model.Segment, len(e.Syllables))
	for i, s := range e.Syllables {
		segs[i] = model.Segment{Text: s, Role: model.RoleSyllable, Cue: e.SoundCues[i]}
	}
	return segs
}

// Validate checks the invariants of a single entry against its word.
func (e Entry) Validate(word string) error {
	if len(e.Syllables) == 0 || len(e.Morphemes) == 0 {
		return fmt.Errorf("%s: empty decomposition", word)
	}
	if len(e.Syllables) != len(e.SoundCues) {
		return fmt.Errorf("%s: %d syllables but %d sound cues", word, len(e.Syllables), len(e.SoundCues))
	}
	if len(e.Morphemes) != len(e.MorphCues) || len(e.Morphemes) != len(e.MorphRoles) {
		return fmt.Errorf("%s: %d morphemes, %d cues, %d roles", word, len(e.Morphemes), len(e.MorphCues), len(e.MorphRoles))
	}
	if got := strings.Join(e.Syllables, ""); !strings.EqualFold(got, word) {
		return fmt.Errorf("%s: syllables join to %q", word, got)
	}
	if got := strings.Join(e.Morphemes, ""); !strings.EqualFold(got, word) {
		return fmt.Errorf("%s: morphemes join to %q", word, got)
	}
	for i, r := range e.MorphRoles {
		if !model.ValidMorphRoles[r] {
			return fmt.Errorf("%s: morpheme %d has invalid role %q", word, i, r)
		}
	}
	return nil
}

// Validate checks every entry in the table and returns the first problem.
func Validate() error {
	for _, w := range Words() {
		if err := entries[w].Validate(w); err != nil {
			return err
		}
	}
	return nil
}
