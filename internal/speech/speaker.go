package speech

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/eduventuring-commits/word-trainer/internal/phonetic"
)

// Speaker owns a Synthesizer and guarantees that at most one utterance is
// audible: every Speak cancels the one before it.
type Speaker struct {
	synth Synthesizer
	lang  string
	log   *slog.Logger

	mu       sync.Mutex
	slow     bool
	voice    *Voice
	resolved bool
	cancel   context.CancelFunc
	done     chan struct{}
	lastErr  error
}

// SpeakerOption configures a Speaker.
type SpeakerOption func(*Speaker)

// WithLanguage sets the preferred voice language. Default: en-US.
func WithLanguage(lang string) SpeakerOption {
	return func(s *Speaker) { s.lang = lang }
}

// WithSlow starts the speaker in slow mode.
func WithSlow(slow bool) SpeakerOption {
	return func(s *Speaker) { s.slow = slow }
}

// WithSpeakerLogger sets the logger. Default: slog.Default().
func WithSpeakerLogger(l *slog.Logger) SpeakerOption {
	return func(s *Speaker) { s.log = l }
}

// NewSpeaker wraps synth. A nil synth yields a Speaker whose Speak always
// returns ErrUnavailable.
func NewSpeaker(synth Synthesizer, opts ...SpeakerOption) *Speaker {
	s := &Speaker{synth: synth, lang: DefaultLanguage, log: slog.Default()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Available reports whether a synthesizer is configured.
func (s *Speaker) Available() bool { return s.synth != nil }

// SetSlow toggles slow mode for subsequent utterances.
func (s *Speaker) SetSlow(slow bool) {
	s.mu.Lock()
	s.slow = slow
	s.mu.Unlock()
}

// Slow reports whether slow mode is on.
func (s *Speaker) Slow() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slow
}

// Speaking reports whether an utterance is in progress.
func (s *Speaker) Speaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == nil {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

// SpeakChunk speaks an isolated spelling chunk using its phonetic respelling.
func (s *Speaker) SpeakChunk(ctx context.Context, chunk string) error {
	return s.Speak(ctx, phonetic.ToSpeechText(chunk))
}

// Speak cancels any utterance in progress and starts text in the
// background. It returns once the new utterance has been handed off.
func (s *Speaker) Speak(ctx context.Context, text string) error {
	if s.synth == nil {
		return ErrUnavailable
	}
	s.Cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.resolved {
		s.resolved = true
		voices, err := s.synth.Voices(ctx)
		if err != nil {
			s.log.Warn("listing voices failed, using engine default", "err", err)
		}
		s.voice = PickVoice(voices, s.lang)
	}

	rate := RateNormal
	if s.slow {
		rate = RateSlow
	}
	u := Utterance{Text: text, Rate: rate, Language: s.lang, Voice: s.voice}

	uctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done
	s.lastErr = nil

	go func() {
		defer close(done)
		err := s.synth.Speak(uctx, u)
		if err != nil && !errors.Is(err, context.Canceled) {
			s.log.Warn("speech synthesis failed", "text", text, "err", err)
			s.mu.Lock()
			if s.done == done {
				s.lastErr = err
			}
			s.mu.Unlock()
		}
	}()
	return nil
}

// Cancel stops the utterance in progress, if any, and waits for it to wind
// down.
func (s *Speaker) Cancel() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	if err := s.synth.Cancel(); err != nil {
		s.log.Debug("synthesizer cancel", "err", err)
	}
	<-done
}

// Wait blocks until the current utterance finishes and returns its error.
func (s *Speaker) Wait(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
