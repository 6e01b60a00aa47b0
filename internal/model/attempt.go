package model

import "time"

// AttemptKind names the exercise an attempt belongs to.
type AttemptKind string

const (
	AttemptListen AttemptKind = "listen"
	AttemptQuiz   AttemptKind = "quiz"
)

// ValidAttemptKinds are the allowed attempt kinds.
var ValidAttemptKinds = map[AttemptKind]bool{
	AttemptListen: true,
	AttemptQuiz:   true,
}

// Attempt is one recorded practice result.
type Attempt struct {
	ID         string      `json:"id" yaml:"id"`
	CardID     string      `json:"card_id" yaml:"card_id"`
	Word       string      `json:"word" yaml:"word"`
	Kind       AttemptKind `json:"kind" yaml:"kind"`
	Correct    bool        `json:"correct" yaml:"correct"`
	Transcript string      `json:"transcript,omitempty" yaml:"transcript,omitempty"`
	Answer     string      `json:"answer,omitempty" yaml:"answer,omitempty"`
	CreatedAt  time.Time   `json:"created_at" yaml:"created_at"`
}
