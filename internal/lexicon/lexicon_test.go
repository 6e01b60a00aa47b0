package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduventuring-commits/word-trainer/internal/model"
)

func TestTableInvariants(t *testing.T) {
	require.NoError(t, Validate())

	for _, w := range Words() {
		e := entries[w]
		assert.Equal(t, w, strings.ToLower(w), "keys must be lowercase")
		assert.Len(t, e.SoundCues, len(e.Syllables), w)
		assert.Len(t, e.MorphCues, len(e.Morphemes), w)
		assert.Len(t, e.MorphRoles, len(e.Morphemes), w)
	}
}

func TestLookupIgnoresCase(t *testing.T) {
	e, ok := Lookup("  TransPort ")
	require.True(t, ok)
	assert.Equal(t, []string{"trans", "port"}, e.Syllables)

	_, ok = Lookup("speculative")
	assert.False(t, ok)
}

func TestSegmentsMorpheme(t *testing.T) {
	e, ok := Lookup("transport")
	require.True(t, ok)

	got := e.Segments(model.AxisMorpheme)
	want := []model.Segment{
		{Text: "trans", Role: model.RolePrefix, Cue: "/tranz/"},
		{Text: "port", Role: model.RoleRoot, Cue: "/port/"},
	}
	assert.Equal(t, want, got)
}

func TestSegmentsSound(t *testing.T) {
	e, ok := Lookup("portable")
	require.True(t, ok)

	got := e.Segments(model.AxisSound)
	require.Len(t, got, 3)
	for _, s := range got {
		assert.Equal(t, model.RoleSyllable, s.Role)
	}
	assert.Equal(t, "portable", model.JoinSegments(got))
	assert.Equal(t, "/buhl/", got[2].Cue)
}

func TestEntryValidateRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
	}{
		{
			name: "syllables do not join to word",
			entry: Entry{
				Syllables: []string{"tran", "port"}, SoundCues: []string{"a", "b"},
				Morphemes: []string{"trans", "port"}, MorphCues: []string{"a", "b"},
				MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
			},
		},
		{
			name: "cue count mismatch",
			entry: Entry{
				Syllables: []string{"trans", "port"}, SoundCues: []string{"a"},
				Morphemes: []string{"trans", "port"}, MorphCues: []string{"a", "b"},
				MorphRoles: []model.Role{model.RolePrefix, model.RoleRoot},
			},
		},
		{
			name: "bad role",
			entry: Entry{
				Syllables: []string{"trans", "port"}, SoundCues: []string{"a", "b"},
				Morphemes: []string{"trans", "port"}, MorphCues: []string{"a", "b"},
				MorphRoles: []model.Role{model.RolePrefix, model.RoleSyllable},
			},
		},
		{
			name:  "empty",
			entry: Entry{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.entry.Validate("transport"))
		})
	}
}
