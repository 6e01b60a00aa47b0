package voicematch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/eduventuring-commits/word-trainer/internal/speech"
)

// Listener runs listening attempts for one target at a time. It owns at
// most one recognition session; each Start tears down the previous one.
type Listener struct {
	rec      speech.Recognizer
	cfg      speech.RecognitionConfig
	log      *slog.Logger
	onChange func(Outcome)

	mu      sync.Mutex
	m       *Matcher
	gen     uint64
	session speech.RecognitionSession
	cancel  context.CancelFunc
	settled chan struct{}
}

// Option configures a Listener.
type Option func(*Listener)

// WithConfig overrides the recognition config.
func WithConfig(cfg speech.RecognitionConfig) Option {
	return func(l *Listener) { l.cfg = cfg }
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(l *Listener) { l.log = log }
}

// WithOnChange registers fn to receive every state change. fn runs on the
// listener's event goroutine and must not call back into the Listener.
func WithOnChange(fn func(Outcome)) Option {
	return func(l *Listener) { l.onChange = fn }
}

// NewListener returns an idle listener with no target.
func NewListener(rec speech.Recognizer, opts ...Option) *Listener {
	l := &Listener{
		rec: rec,
		cfg: speech.DefaultRecognitionConfig(),
		log: slog.Default(),
		m:   NewMatcher(""),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// SetTarget switches to a new word: any running attempt is stopped and the
// matcher returns to idle.
func (l *Listener) SetTarget(word string) {
	l.mu.Lock()
	sess, cancel := l.detachLocked()
	l.m.Reset(word)
	o := l.m.Outcome()
	l.mu.Unlock()

	release(sess, cancel, l.log)
	l.notify(o)
}

// Start begins a listening attempt for the current target.
func (l *Listener) Start(ctx context.Context) error {
	if l.rec == nil {
		return speech.ErrUnavailable
	}

	l.mu.Lock()
	prev, prevCancel := l.detachLocked()
	l.mu.Unlock()
	release(prev, prevCancel, l.log)

	sctx, cancel := context.WithCancel(ctx)
	sess, err := l.rec.Start(sctx, l.cfg)
	if err != nil {
		cancel()
		l.mu.Lock()
		l.m.Fail()
		l.mu.Unlock()
		return fmt.Errorf("start recognition: %w", err)
	}

	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.session = sess
	l.cancel = cancel
	l.settled = make(chan struct{})
	l.m.Start()
	o := l.m.Outcome()
	l.mu.Unlock()

	l.notify(o)
	go l.consume(gen, sess)
	return nil
}

// Stop abandons the running attempt, if any, and releases the recognizer.
// It is safe to call repeatedly.
func (l *Listener) Stop() {
	l.mu.Lock()
	sess, cancel := l.detachLocked()
	l.m.Stop()
	o := l.m.Outcome()
	l.mu.Unlock()

	if sess != nil {
		release(sess, cancel, l.log)
		l.notify(o)
	}
}

// Outcome returns a snapshot of the current attempt.
func (l *Listener) Outcome() Outcome {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Outcome()
}

// Wait blocks until the current attempt is decided, that is until the
// matcher leaves the listening state, and returns the outcome.
func (l *Listener) Wait(ctx context.Context) (Outcome, error) {
	l.mu.Lock()
	settled := l.settled
	l.mu.Unlock()
	if settled != nil {
		select {
		case <-settled:
		case <-ctx.Done():
			return l.Outcome(), ctx.Err()
		}
	}
	return l.Outcome(), nil
}

// detachLocked forgets the current session so its late events are ignored.
func (l *Listener) detachLocked() (speech.RecognitionSession, context.CancelFunc) {
	sess, cancel := l.session, l.cancel
	l.session, l.cancel = nil, nil
	l.gen++
	if l.settled != nil {
		close(l.settled)
		l.settled = nil
	}
	return sess, cancel
}

func release(sess speech.RecognitionSession, cancel context.CancelFunc, log *slog.Logger) {
	if sess != nil {
		if err := sess.Stop(); err != nil {
			log.Debug("stopping recognition session", "err", err)
		}
	}
	if cancel != nil {
		cancel()
	}
}

// consume feeds session events to the matcher until the attempt is decided.
// It then stops the session and reads no further events, so input the
// session has not delivered stays with the recognizer for the next attempt.
// Waiters are woken only after the session has stopped.
func (l *Listener) consume(gen uint64, sess speech.RecognitionSession) {
	for ev := range sess.Events() {
		l.mu.Lock()
		if l.gen != gen {
			l.mu.Unlock()
			return
		}
		switch ev.Kind {
		case speech.EventResult:
			l.m.Batch(ev.Alternatives, ev.Final)
		case speech.EventError:
			l.log.Warn("recognition error", "err", ev.Err)
			l.m.Fail()
		case speech.EventEnd:
			l.m.End()
		}
		o := l.m.Outcome()
		if o.State == StateListening {
			l.mu.Unlock()
			l.notify(o)
			continue
		}
		settled, cancel := l.settled, l.cancel
		l.session, l.cancel = nil, nil
		l.mu.Unlock()

		release(sess, cancel, l.log)
		l.log.Debug("listening attempt decided", "target", o.Target, "state", o.State)
		l.notify(o)
		l.wake(settled)
		return
	}

	l.mu.Lock()
	if l.gen != gen {
		l.mu.Unlock()
		return
	}
	l.m.End()
	o := l.m.Outcome()
	settled, cancel := l.settled, l.cancel
	l.session, l.cancel = nil, nil
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	l.log.Debug("recognition session ended", "target", o.Target, "state", o.State)
	l.notify(o)
	l.wake(settled)
}

// wake closes settled unless a newer attempt has already replaced it.
func (l *Listener) wake(settled chan struct{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if settled != nil && l.settled == settled {
		close(settled)
		l.settled = nil
	}
}

func (l *Listener) notify(o Outcome) {
	if l.onChange != nil {
		l.onChange(o)
	}
}
