// Package command implements speech.Synthesizer by running an espeak-ng
// compatible text-to-speech program.
package command

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/eduventuring-commits/word-trainer/internal/speech"
)

// BaseWordsPerMinute is the program's speed at rate 1.0.
const BaseWordsPerMinute = 175

// Synthesizer runs Program once per utterance.
type Synthesizer struct {
	// Program is the executable name or path, e.g. "espeak-ng".
	Program string

	mu  sync.Mutex
	cmd *exec.Cmd
}

// New returns a Synthesizer for program. It returns speech.ErrUnavailable if
// the program cannot be found on PATH.
func New(program string) (*Synthesizer, error) {
	if program == "" {
		return nil, speech.ErrUnavailable
	}
	if _, err := exec.LookPath(program); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", speech.ErrUnavailable, program, err)
	}
	return &Synthesizer{Program: program}, nil
}

// Speak runs the program and waits for it to exit.
func (s *Synthesizer) Speak(ctx context.Context, u speech.Utterance) error {
	cmd := exec.CommandContext(ctx, s.Program, Args(u)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	s.mu.Lock()
	if err := cmd.Start(); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("start %s: %w", s.Program, err)
	}
	s.cmd = cmd
	s.mu.Unlock()

	err := cmd.Wait()

	s.mu.Lock()
	if s.cmd == cmd {
		s.cmd = nil
	}
	s.mu.Unlock()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("%s: %w: %s", s.Program, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// Cancel kills the running program, if any.
func (s *Synthesizer) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd == nil || s.cmd.Process == nil {
		return nil
	}
	err := s.cmd.Process.Kill()
	s.cmd = nil
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}

// Voices lists the program's installed voices.
func (s *Synthesizer) Voices(ctx context.Context) ([]speech.Voice, error) {
	out, err := exec.CommandContext(ctx, s.Program, "--voices").Output()
	if err != nil {
		return nil, fmt.Errorf("list voices: %w", err)
	}
	return ParseVoices(out), nil
}

// Args builds the argument list for u.
func Args(u speech.Utterance) []string {
	rate := u.Rate
	if rate <= 0 {
		rate = speech.RateNormal
	}
	args := []string{"-s", strconv.Itoa(int(BaseWordsPerMinute * rate))}
	switch {
	case u.Voice != nil && u.Voice.ID != "":
		args = append(args, "-v", u.Voice.ID)
	case u.Language != "":
		args = append(args, "-v", strings.ToLower(u.Language))
	}
	return append(args, "--", u.Text)
}

// ParseVoices reads the table printed by "espeak-ng --voices". The language
// column doubles as the voice ID since -v accepts it.
//
//
//	Pty Language       Age/Gender VoiceName          File                 Other Languages
//	 5  en-us           --/M      English_(America)  gmw/en-US            (en 3)
func ParseVoices(out []byte) []speech.Voice {
	var voices []speech.Voice
	sc := bufio.NewScanner(bytes.NewReader(out))
	header := true
	for sc.Scan() {
		if header {
			header = false
			continue
		}
		f := strings.Fields(sc.Text())
		if len(f) < 5 {
			continue
		}
		voices = append(voices, speech.Voice{
			ID:       f[1],
			Name:     strings.ReplaceAll(f[3], "_", " "),
			Language: f[1],
		})
	}
	return voices
}

var _ speech.Synthesizer = (*Synthesizer)(nil)
