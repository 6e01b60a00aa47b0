// Package jsonl implements speech.Recognizer over a stream of JSON lines, so
// that any external recognition engine can feed the trainer by writing one
// hypothesis batch per line:
//
//	{"alternatives": ["inter upt", "interrupt"], "final": false}
//	{"alternatives": ["interrupt"], "final": true}
//	{"error": "microphone unavailable"}
//	{"end": true}
//
// End of input ends the current session.
package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/eduventuring-commits/word-trainer/internal/speech"
)

// Message is one input line.
type Message struct {
	Alternatives []string `json:"alternatives,omitempty"`
	Final        bool     `json:"final,omitempty"`
	Error        string   `json:"error,omitempty"`
	End          bool     `json:"end,omitempty"`
}

// Recognizer reads messages from a single reader shared by all sessions.
// Lines not consumed by one session remain for the next: a session hands
// over one event at a time, and a line it read but could not deliver before
// being stopped is returned to the recognizer.
type Recognizer struct {
	r   io.Reader
	log *slog.Logger

	once  sync.Once
	lines chan []byte

	mu      sync.Mutex
	pending [][]byte
}

// New returns a Recognizer reading from r.
func New(r io.Reader, log *slog.Logger) *Recognizer {
	if log == nil {
		log = slog.Default()
	}
	return &Recognizer{r: r, log: log}
}

func (rc *Recognizer) feed() {
	rc.lines = make(chan []byte)
	go func() {
		defer close(rc.lines)
		sc := bufio.NewScanner(rc.r)
		for sc.Scan() {
			line := append([]byte(nil), sc.Bytes()...)
			if len(line) == 0 {
				continue
			}
			rc.lines <- line
		}
		if err := sc.Err(); err != nil {
			rc.log.Warn("reading recognition input", "err", err)
		}
	}()
}

// unread puts raw back at the head of the input.
func (rc *Recognizer) unread(raw []byte) {
	rc.mu.Lock()
	rc.pending = append([][]byte{raw}, rc.pending...)
	rc.mu.Unlock()
}

func (rc *Recognizer) popPending() ([]byte, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if len(rc.pending) == 0 {
		return nil, false
	}
	raw := rc.pending[0]
	rc.pending = rc.pending[1:]
	return raw, true
}

// Start opens a session that consumes lines until end, error, Stop or ctx
// cancellation. A session that ends on its own sends a final end event; a
// stopped one just closes.
func (rc *Recognizer) Start(ctx context.Context, cfg speech.RecognitionConfig) (speech.RecognitionSession, error) {
	if rc.r == nil {
		return nil, speech.ErrUnavailable
	}
	rc.once.Do(rc.feed)
	s := &session{
		rc:     rc,
		events: make(chan speech.Event),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go s.run(ctx, cfg)
	return s, nil
}

type session struct {
	rc       *Recognizer
	events   chan speech.Event
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func (s *session) Events() <-chan speech.Event { return s.events }

// Stop ends the session and returns once it has released the input.
func (s *session) Stop() error {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
	return nil
}

func (s *session) send(ctx context.Context, ev speech.Event) bool {
	select {
	case <-s.stop:
		return false
	case <-ctx.Done():
		return false
	default:
	}
	select {
	case s.events <- ev:
		return true
	case <-s.stop:
		return false
	case <-ctx.Done():
		return false
	}
}

// next returns the next input line, pending lines first. It reports false
// once the session is stopped or the input is exhausted.
func (s *session) next(ctx context.Context) ([]byte, bool) {
	select {
	case <-s.stop:
		return nil, false
	case <-ctx.Done():
		return nil, false
	default:
	}
	if raw, ok := s.rc.popPending(); ok {
		return raw, true
	}
	select {
	case <-s.stop:
		return nil, false
	case <-ctx.Done():
		return nil, false
	case raw, ok := <-s.rc.lines:
		return raw, ok
	}
}

func (s *session) stopped(ctx context.Context) bool {
	select {
	case <-s.stop:
		return true
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func (s *session) run(ctx context.Context, cfg speech.RecognitionConfig) {
	defer close(s.done)
	defer close(s.events)

	end := speech.Event{Kind: speech.EventEnd}
	for {
		raw, ok := s.next(ctx)
		if !ok {
			if !s.stopped(ctx) {
				s.send(ctx, end)
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			s.rc.log.Debug("skipping malformed recognition line", "line", string(raw), "err", err)
			continue
		}
		switch {
		case msg.Error != "":
			if !s.send(ctx, speech.Event{Kind: speech.EventError, Err: errors.New(msg.Error)}) {
				s.rc.unread(raw)
				return
			}
			s.send(ctx, end)
			return
		case msg.End:
			if !s.send(ctx, end) {
				s.rc.unread(raw)
			}
			return
		}
		if !msg.Final && !cfg.Interim {
			continue
		}
		alts := msg.Alternatives
		if cfg.MaxAlternatives > 0 && len(alts) > cfg.MaxAlternatives {
			alts = alts[:cfg.MaxAlternatives]
		}
		if !s.send(ctx, speech.Event{Kind: speech.EventResult, Alternatives: alts, Final: msg.Final}) {
			s.rc.unread(raw)
			return
		}
		if msg.Final && !cfg.Continuous {
			s.send(ctx, end)
			return
		}
	}
}
