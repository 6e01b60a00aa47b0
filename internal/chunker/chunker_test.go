package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduventuring-commits/word-trainer/internal/model"
)

func strp(s string) *string { return &s }

func TestChunk_EmptyWord(t *testing.T) {
	assert.Nil(t, Chunk("", model.AxisSound, nil))
}

func TestChunk_LexiconMorpheme(t *testing.T) {
	got := Chunk("transport", model.AxisMorpheme, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "trans", got[0].Text)
	assert.Equal(t, model.RolePrefix, got[0].Role)
	assert.Equal(t, "port", got[1].Text)
	assert.Equal(t, model.RoleRoot, got[1].Role)
}

func TestChunk_LexiconPreferredOverCard(t *testing.T) {
	// The card's hint and fragments disagree with the lexicon; the lexicon wins.
	card := &model.WordCard{
		Word:          "interrupt",
		Prefix:        strp("in-"),
		Root:          strp("terrupt"),
		DecodingNotes: "int | er | rupt",
	}
	sound := Chunk("interrupt", model.AxisSound, card)
	want := []string{"in", "ter", "rupt"}
	require.Len(t, sound, len(want))
	for i, s := range sound {
		assert.Equal(t, want[i], s.Text)
		assert.NotEmpty(t, s.Cue, "syllable %d has no cue", i)
	}
	morph := Chunk("interrupt", model.AxisMorpheme, card)
	require.NotEmpty(t, morph)
	assert.Equal(t, "inter", morph[0].Text, "lexicon morpheme split")
}

func TestChunk_SoundFromHint(t *testing.T) {
	card := &model.WordCard{Word: "Gravity", DecodingNotes: "Syllables: grav | i | ty. Stress the first."}
	got := Chunk(card.Word, model.AxisSound, card)
	want := []model.Segment{
		{Text: "Grav", Role: model.RoleSyllable},
		{Text: "i", Role: model.RoleSyllable},
		{Text: "ty", Role: model.RoleSyllable},
	}
	assert.Equal(t, want, got)
}

func TestChunk_SoundBadHintFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		notes string
	}{
		{"no notes", ""},
		{"no pipes", "say it slowly"},
		{"wrong letters", "grav | a | ty"},
		{"missing letters", "grav | ty"},
		{"extra letters", "grav | i | tys"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := &model.WordCard{Word: "gravity", DecodingNotes: tt.notes}
			got := Chunk("gravity", model.AxisSound, card)
			assert.Equal(t, []model.Segment{{Text: "gravity", Role: model.RoleSyllable}}, got)
		})
	}
}

func TestParseSyllableHint(t *testing.T) {
	parts, ok := ParseSyllableHint("Break it: MAG | net | ic", "magnetic")
	require.True(t, ok)
	assert.Equal(t, []string{"mag", "net", "ic"}, parts)

	_, ok = ParseSyllableHint("mag|netic", "")
	assert.False(t, ok, "empty word must not parse")
	_, ok = ParseSyllableHint("magnetic", "magnetic")
	assert.False(t, ok, "a single syllable is not a hint")
}

func TestChunk_MorphemeFallback(t *testing.T) {
	tests := []struct {
		name string
		card model.WordCard
		want []model.Segment
	}{
		{
			name: "prefix root suffix",
			card: model.WordCard{Word: "unbreakable", Prefix: strp("un-"), Root: strp("break"), Suffix: strp("-able")},
			want: []model.Segment{
				{Text: "un", Role: model.RolePrefix},
				{Text: "break", Role: model.RoleRoot},
				{Text: "able", Role: model.RoleSuffix},
			},
		},
		{
			name: "leading leftover is root",
			card: model.WordCard{Word: "bicycle", Root: strp("cycle")},
			want: []model.Segment{
				{Text: "bi", Role: model.RoleRoot},
				{Text: "cycle", Role: model.RoleRoot},
			},
		},
		{
			name: "trailing leftover is suffix",
			card: model.WordCard{Word: "Rebuilding", Prefix: strp("re-"), Root: strp("build")},
			want: []model.Segment{
				{Text: "Re", Role: model.RolePrefix},
				{Text: "build", Role: model.RoleRoot},
				{Text: "ing", Role: model.RoleSuffix},
			},
		},
		{
			name: "root alternates use the first",
			card: model.WordCard{Word: "respectful", Prefix: strp("re-"), Root: strp("spect/spec"), Suffix: strp("-ful")},
			want: []model.Segment{
				{Text: "re", Role: model.RolePrefix},
				{Text: "spect", Role: model.RoleRoot},
				{Text: "ful", Role: model.RoleSuffix},
			},
		},
		{
			name: "no fragments",
			card: model.WordCard{Word: "gravity"},
			want: []model.Segment{{Text: "gravity", Role: model.RoleRoot}},
		},
		{
			name: "speculative gap falls back",
			card: model.WordCard{Word: "speculative", Root: strp("spec"), Suffix: strp("-ive")},
			want: []model.Segment{{Text: "speculative", Role: model.RoleRoot}},
		},
		{
			name: "fragment missing",
			card: model.WordCard{Word: "happiness", Root: strp("happy"), Suffix: strp("-ness")},
			want: []model.Segment{{Text: "happiness", Role: model.RoleRoot}},
		},
		{
			name: "empty fragment",
			card: model.WordCard{Word: "unkind", Prefix: strp("-"), Root: strp("kind")},
			want: []model.Segment{{Text: "unkind", Role: model.RoleRoot}},
		},
		{
			name: "out of order",
			card: model.WordCard{Word: "breakable", Prefix: strp("able"), Root: strp("break")},
			want: []model.Segment{{Text: "breakable", Role: model.RoleRoot}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Chunk(tt.card.Word, model.AxisMorpheme, &tt.card))
		})
	}
}

func TestChunk_MorphemeNilCard(t *testing.T) {
	got := Chunk("zebra", model.AxisMorpheme, nil)
	assert.Equal(t, []model.Segment{{Text: "zebra", Role: model.RoleRoot}}, got)
}

func TestChunk_ConcatenationInvariant(t *testing.T) {
	cards := []model.WordCard{
		{Word: "transport", Prefix: strp("trans-"), Root: strp("port")},
		{Word: "Speculative", Root: strp("spec"), Suffix: strp("-ive")},
		{Word: "unbreakable", Prefix: strp("un-"), Root: strp("break"), Suffix: strp("-able"), DecodingNotes: "un | break | a | ble"},
		{Word: "gravity", DecodingNotes: "grav|i|ty"},
		{Word: "Misread", Prefix: strp("mis"), Root: strp("read")},
		{Word: "bicycle", Root: strp("cycle"), DecodingNotes: "bi | cy | cle"},
		{Word: "inspector", Prefix: strp("in-"), Root: strp("spect/spec"), Suffix: strp("-or")},
	}
	for _, c := range cards {
		for _, axis := range []model.Axis{model.AxisSound, model.AxisMorpheme} {
			got := model.JoinSegments(Chunk(c.Word, axis, &c))
			assert.True(t, strings.EqualFold(got, c.Word), "%s/%s joins to %q", c.Word, axis, got)
		}
	}
}
