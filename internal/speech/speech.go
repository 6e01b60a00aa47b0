// Package speech defines the capabilities the trainer needs from a platform
// speech engine: a Synthesizer that reads text aloud and a Recognizer that
// turns the learner's voice into transcript hypotheses.
//
// Both are injected interfaces so that tests and alternative front ends can
// substitute their own engines. See the mock package for test doubles.
package speech

import (
	"context"
	"errors"
	"strings"
)

// ErrUnavailable is returned when no engine is configured or the engine
// reports that it cannot run on this platform.
var ErrUnavailable = errors.New("speech: unavailable")

// Speaking rates.
const (
	RateNormal = 1.0
	RateSlow   = 0.75
)

// DefaultLanguage is the BCP-47 tag used for synthesis and recognition.
const DefaultLanguage = "en-US"

// Voice describes one synthesizer voice.
type Voice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language"`
}

// Utterance is a single request to speak.
type Utterance struct {
	Text     string
	Rate     float64
	Language string

	// Voice is the voice to use; nil selects the engine default.
	Voice *Voice
}

// Synthesizer reads text aloud.
//
// Speak blocks until the utterance finishes, fails, or ctx is cancelled.
// Cancel stops any utterance in progress and is safe to call at any time.
type Synthesizer interface {
	Speak(ctx context.Context, u Utterance) error
	Cancel() error
	Voices(ctx context.Context) ([]Voice, error)
}

// PickVoice returns the voice whose language is exactly lang, else the
// first voice sharing its primary subtag ("en"), else nil.
func PickVoice(voices []Voice, lang string) *Voice {
	for i := range voices {
		if strings.EqualFold(voices[i].Language, lang) {
			return &voices[i]
		}
	}
	primary, _, _ := strings.Cut(lang, "-")
	for i := range voices {
		if strings.HasPrefix(strings.ToLower(voices[i].Language), strings.ToLower(primary)) {
			return &voices[i]
		}
	}
	return nil
}

// RecognitionConfig configures a recognition session.
type RecognitionConfig struct {
	Language        string
	Interim         bool
	Continuous      bool
	MaxAlternatives int
}

// DefaultRecognitionConfig listens continuously in English with interim
// results and up to three alternatives per hypothesis.
func DefaultRecognitionConfig() RecognitionConfig {
	return RecognitionConfig{
		Language:        DefaultLanguage,
		Interim:         true,
		Continuous:      true,
		MaxAlternatives: 3,
	}
}

// EventKind distinguishes recognition events.
type EventKind int

const (
	// EventResult carries a hypothesis batch.
	EventResult EventKind = iota
	// EventError reports an engine failure.
	EventError
	// EventEnd reports that the session is over.
	EventEnd
)

func (k EventKind) String() string {
	switch k {
	case EventResult:
		return "result"
	case EventError:
		return "error"
	case EventEnd:
		return "end"
	}
	return "unknown"
}

// Event is one message from a recognition session.
type Event struct {
	Kind EventKind

	// Alternatives holds the candidate transcripts, best first. Set for
	// EventResult only.
	Alternatives []string

	// Final is false for interim hypotheses that may still change.
	Final bool

	// Err is set for EventError.
	Err error
}

// RecognitionSession is one open listening attempt.
//
// Events is closed after the session ends. Stop ends the session early and
// may be called any number of times.
type RecognitionSession interface {
	Events() <-chan Event
	Stop() error
}

// Recognizer starts recognition sessions.
type Recognizer interface {
	Start(ctx context.Context, cfg RecognitionConfig) (RecognitionSession, error)
}
