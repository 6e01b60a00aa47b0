// Package voicematch decides whether a learner said a target word, given the
// noisy transcript hypotheses a speech recognizer produces.
//
// Matcher is the pure state machine. Listener couples it to a
// speech.Recognizer and owns the recognition session.
package voicematch

import (
	"strings"
	"unicode/utf8"

	"github.com/antzucaro/matchr"
)

// State is the matcher's position in an attempt.
type State string

const (
	StateIdle      State = "idle"
	StateListening State = "listening"
	StateSuccess   State = "success"
	StateRetry     State = "retry"
)

// Threshold is the largest edit distance a token may have from target and
// still count as the word: a quarter of the target's length, at least 1.
func Threshold(target string) int {
	return max(1, utf8.RuneCountInString(target)/4)
}

// Distance is the Levenshtein edit distance between a and b.
func Distance(a, b string) int {
	return matchr.Levenshtein(a, b)
}

// IsMatch reports whether any token of transcript is within Threshold of
// target, ignoring case.
func IsMatch(target, transcript string) bool {
	target = strings.ToLower(strings.TrimSpace(target))
	limit := Threshold(target)
	for _, tok := range strings.Fields(strings.ToLower(transcript)) {
		if Distance(tok, target) <= limit {
			return true
		}
	}
	return false
}

// SoundsLike reports whether a and b share a Double Metaphone code.
func SoundsLike(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	ap, as := matchr.DoubleMetaphone(a)
	bp, bs := matchr.DoubleMetaphone(b)
	for _, x := range []string{ap, as} {
		if x == "" {
			continue
		}
		if x == bp || x == bs {
			return true
		}
	}
	return false
}

// Closest is the transcript token nearest the target seen in an attempt.
type Closest struct {
	Token      string `json:"token" yaml:"token"`
	Distance   int    `json:"distance" yaml:"distance"`
	SoundsLike bool   `json:"sounds_like" yaml:"sounds_like"`
}

// Outcome is a snapshot of the matcher.
type Outcome struct {
	Target     string   `json:"target" yaml:"target"`
	State      State    `json:"state" yaml:"state"`
	Transcript string   `json:"transcript" yaml:"transcript"`
	Closest    *Closest `json:"closest,omitempty" yaml:"closest,omitempty"`
}

// Matcher tracks one target word through repeated listening attempts. It is
// not safe for concurrent use.
type Matcher struct {
	target     string
	threshold  int
	state      State
	transcript string
	matched    bool
	closest    *Closest
}

// NewMatcher returns an idle matcher for target.
func NewMatcher(target string) *Matcher {
	m := &Matcher{}
	m.Reset(target)
	return m
}

// Reset switches to a new target and returns to idle.
func (m *Matcher) Reset(target string) {
	m.target = strings.ToLower(strings.TrimSpace(target))
	m.threshold = Threshold(m.target)
	m.state = StateIdle
	m.transcript = ""
	m.matched = false
	m.closest = nil
}

// Start begins an attempt. It is allowed from any state.
func (m *Matcher) Start() {
	m.state = StateListening
	m.transcript = ""
	m.matched = false
	m.closest = nil
}

// Stop abandons a listening attempt. Terminal states are left alone.
func (m *Matcher) Stop() {
	if m.state == StateListening {
		m.state = StateIdle
	}
}

// Batch applies one hypothesis batch and reports whether the target was
// matched by it, in which case the caller must stop the recognizer.
// Batches outside a listening attempt are ignored.
func (m *Matcher) Batch(alternatives []string, final bool) bool {
	if m.state != StateListening || m.matched {
		return false
	}
	if len(alternatives) > 0 {
		m.transcript = alternatives[0]
	}
	for _, alt := range alternatives {
		for _, tok := range strings.Fields(strings.ToLower(alt)) {
			d := Distance(tok, m.target)
			if m.closest == nil || d < m.closest.Distance {
				m.closest = &Closest{Token: tok, Distance: d}
			}
			if d <= m.threshold {
				m.matched = true
				m.state = StateSuccess
				return true
			}
		}
	}
	if final {
		m.state = StateRetry
	}
	return false
}

// End records that the recognizer stopped on its own.
func (m *Matcher) End() {
	if m.state == StateListening {
		m.state = StateRetry
	}
}

// Fail records a recognizer error.
func (m *Matcher) Fail() {
	if m.state == StateListening {
		m.state = StateIdle
	}
}

// State returns the current state.
func (m *Matcher) State() State { return m.state }

// Outcome returns a snapshot.
func (m *Matcher) Outcome() Outcome {
	o := Outcome{Target: m.target, State: m.state, Transcript: m.transcript}
	if m.closest != nil {
		c := *m.closest
		c.SoundsLike = SoundsLike(c.Token, m.target)
		o.Closest = &c
	}
	return o
}
