// Package model defines the core word-study data types.
package model

import "strings"

// GradeBand is a coarse difficulty tier for word cards.
type GradeBand string

const (
	Grade34 GradeBand = "3-4"
	Grade56 GradeBand = "5-6"
	Grade78 GradeBand = "7-8"

	// GradeAll is the selection wildcard; no card carries it.
	GradeAll GradeBand = "All"
)

// Focus is the morphological category a practice session emphasizes.
type Focus string

const (
	FocusRoots    Focus = "Roots"
	FocusPrefixes Focus = "Prefixes"
	FocusSuffixes Focus = "Suffixes"
	FocusMixed    Focus = "Mixed"
)

// ValidGradeBands are the grade bands accepted for selection.
var ValidGradeBands = map[GradeBand]bool{
	Grade34:  true,
	Grade56:  true,
	Grade78:  true,
	GradeAll: true,
}

// ValidFocuses are the allowed session focuses.
var ValidFocuses = map[Focus]bool{
	FocusRoots:    true,
	FocusPrefixes: true,
	FocusSuffixes: true,
	FocusMixed:    true,
}

// WordCard is a single word in the dataset. Cards are immutable once loaded.
type WordCard struct {
	ID                 string    `json:"id" yaml:"id" validate:"required"`
	Word               string    `json:"word" yaml:"word" validate:"required"`
	Prefix             *string   `json:"prefix" yaml:"prefix"`
	Root               *string   `json:"root" yaml:"root"`
	Suffix             *string   `json:"suffix" yaml:"suffix"`
	Meaning            string    `json:"student_friendly_meaning" yaml:"student_friendly_meaning" validate:"required"`
	PartOfSpeech       string    `json:"part_of_speech" yaml:"part_of_speech"`
	GradeBand          GradeBand `json:"grade_band" yaml:"grade_band" validate:"required,oneof=3-4 5-6 7-8"`
	DecodingNotes      string    `json:"decoding_notes" yaml:"decoding_notes"`
	ExampleSentence    string    `json:"example_sentence" yaml:"example_sentence"`
	DistractorMeanings []string  `json:"distractor_meanings" yaml:"distractor_meanings"`
}

// HasPrefix reports whether the card declares a prefix.
func (c WordCard) HasPrefix() bool { return c.Prefix != nil }

// HasRoot reports whether the card declares a root.
func (c WordCard) HasRoot() bool { return c.Root != nil }

// HasSuffix reports whether the card declares a suffix.
func (c WordCard) HasSuffix() bool { return c.Suffix != nil }

// Axis selects how a word is split.
type Axis string

const (
	AxisSound    Axis = "sound"
	AxisMorpheme Axis = "morpheme"
)

// Role tags a segment.
type Role string

const (
	RoleSyllable Role = "syllable"
	RolePrefix   Role = "prefix"
	RoleRoot     Role = "root"
	RoleSuffix   Role = "suffix"
)

// ValidMorphRoles are the roles a morpheme segment may carry.
var ValidMorphRoles = map[Role]bool{
	RolePrefix: true,
	RoleRoot:   true,
	RoleSuffix: true,
}

// Segment is one chunk of a decomposed word.
type Segment struct {
	Text string `json:"text" yaml:"text"`
	Role Role   `json:"role" yaml:"role"`
	Cue  string `json:"cue,omitempty" yaml:"cue,omitempty"`
}

// JoinSegments concatenates segment texts.
func JoinSegments(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

// QuizOption is one answer in a meaning check.
type QuizOption struct {
	Text      string `json:"text" yaml:"text"`
	IsCorrect bool   `json:"is_correct" yaml:"is_correct"`
}
