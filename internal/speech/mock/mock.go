// Package mock provides test doubles for the speech package interfaces.
//
// Use Recognizer to hand out scripted Sessions and inspect the
// RecognitionConfig the caller used. Use Session.Emit to push events to the
// consumer. Use Synthesizer to record utterances.
//
// Example:
//
//	rec := &mock.Recognizer{}
//	l := voicematch.NewListener(rec)
//	l.SetTarget("interrupt")
//	_ = l.Start(ctx)
//	rec.Last().Emit(speech.Event{Kind: speech.EventResult, Alternatives: []string{"interupt"}})
package mock

import (
	"context"
	"sync"

	"github.com/eduventuring-commits/word-trainer/internal/speech"
)

// StartCall records a single invocation of Recognizer.Start.
type StartCall struct {
	Ctx context.Context
	Cfg speech.RecognitionConfig
}

// Recognizer is a mock implementation of speech.Recognizer.
type Recognizer struct {
	mu sync.Mutex

	// Queue holds sessions to return from Start, in order. When empty, Start
	// returns a fresh Session.
	Queue []*Session

	// StartErr, if non-nil, is returned as the error from Start.
	StartErr error

	// StartCalls records every call to Start.
	StartCalls []StartCall

	// Sessions records every session handed out by Start.
	Sessions []*Session
}

// Start records the call and returns the next queued session.
func (r *Recognizer) Start(ctx context.Context, cfg speech.RecognitionConfig) (speech.RecognitionSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.StartCalls = append(r.StartCalls, StartCall{Ctx: ctx, Cfg: cfg})
	if r.StartErr != nil {
		return nil, r.StartErr
	}
	var s *Session
	if len(r.Queue) > 0 {
		s, r.Queue = r.Queue[0], r.Queue[1:]
	} else {
		s = NewSession()
	}
	r.Sessions = append(r.Sessions, s)
	return s, nil
}

// Last returns the most recently started session, or nil. Thread-safe.
func (r *Recognizer) Last() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Sessions) == 0 {
		return nil
	}
	return r.Sessions[len(r.Sessions)-1]
}

// StartCallCount returns the number of Start calls. Thread-safe.
func (r *Recognizer) StartCallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.StartCalls)
}

var _ speech.Recognizer = (*Recognizer)(nil)

// Session is a mock implementation of speech.RecognitionSession. The events
// channel is buffered; tests push events with Emit.
type Session struct {
	mu     sync.Mutex
	events chan speech.Event
	closed bool

	// StopErr, if non-nil, is returned by Stop.
	StopErr error

	// StopCallCount is the number of times Stop was called.
	StopCallCount int
}

// NewSession returns a session with a 64-event buffer.
func NewSession() *Session {
	return &Session{events: make(chan speech.Event, 64)}
}

// Events returns the event channel.
func (s *Session) Events() <-chan speech.Event {
	return s.events
}

// Emit delivers ev to the consumer. It reports false if the session has
// already ended or the buffer is full.
func (s *Session) Emit(ev speech.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.events <- ev:
		return true
	default:
		return false
	}
}

// Batch is shorthand for emitting a result event.
func (s *Session) Batch(final bool, alternatives ...string) bool {
	return s.Emit(speech.Event{Kind: speech.EventResult, Alternatives: alternatives, Final: final})
}

// End emits an end event and closes the channel, as an engine does when it
// stops on its own.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endLocked()
}

// Stop records the call, then ends the session if still open.
func (s *Session) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.StopCallCount++
	s.endLocked()
	return s.StopErr
}

// Stopped reports whether Stop has been called. Thread-safe.
func (s *Session) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.StopCallCount > 0
}

func (s *Session) endLocked() {
	if s.closed {
		return
	}
	s.closed = true
	select {
	case s.events <- speech.Event{Kind: speech.EventEnd}:
	default:
	}
	close(s.events)
}

var _ speech.RecognitionSession = (*Session)(nil)

// Synthesizer is a mock implementation of speech.Synthesizer.
type Synthesizer struct {
	mu sync.Mutex

	// VoiceList is returned by Voices.
	VoiceList []speech.Voice

	// VoicesErr, if non-nil, is returned by Voices.
	VoicesErr error

	// SpeakErr, if non-nil, is returned by Speak.
	SpeakErr error

	// Block makes Speak wait for ctx cancellation before returning.
	Block bool

	// CancelErr, if non-nil, is returned by Cancel.
	CancelErr error

	// --- Call records ---

	// Utterances records every call to Speak in order.
	Utterances []speech.Utterance

	// CancelCallCount is the number of times Cancel was called.
	CancelCallCount int

	// VoicesCallCount is the number of times Voices was called.
	VoicesCallCount int
}

// Speak records the utterance and returns SpeakErr, or ctx.Err() when Block
// is set.
func (m *Synthesizer) Speak(ctx context.Context, u speech.Utterance) error {
	m.mu.Lock()
	m.Utterances = append(m.Utterances, u)
	block, err := m.Block, m.SpeakErr
	m.mu.Unlock()
	if block {
		<-ctx.Done()
		return ctx.Err()
	}
	return err
}

// Cancel records the call and returns CancelErr.
func (m *Synthesizer) Cancel() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CancelCallCount++
	return m.CancelErr
}

// Voices records the call and returns VoiceList, VoicesErr.
func (m *Synthesizer) Voices(_ context.Context) ([]speech.Voice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.VoicesCallCount++
	return m.VoiceList, m.VoicesErr
}

// Spoken returns a copy of the recorded utterances. Thread-safe.
func (m *Synthesizer) Spoken() []speech.Utterance {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]speech.Utterance, len(m.Utterances))
	copy(out, m.Utterances)
	return out
}

var _ speech.Synthesizer = (*Synthesizer)(nil)
