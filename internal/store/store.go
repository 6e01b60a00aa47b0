// Package store persists learner progress and the practice attempt log.
package store

import (
	"context"
	"errors"

	"github.com/eduventuring-commits/word-trainer/internal/model"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("store: not found")

// AttemptParams holds parameters for recording an attempt.
type AttemptParams struct {
	CardID     string
	Word       string
	Kind       model.AttemptKind
	Correct    bool
	Transcript string
	Answer     string
}

// AttemptFilter narrows an attempt history query.
type AttemptFilter struct {
	CardID string
	Word   string // substring match
	Kind   model.AttemptKind
	Missed bool // only incorrect attempts
	Limit  int
}

// Store defines the progress storage interface.
type Store interface {
	// Progress returns the saved tally, or progress.Default() if none.
	Progress(ctx context.Context) (model.Progress, error)

	// SaveProgress replaces the saved tally.
	SaveProgress(ctx context.Context, p model.Progress) error

	// RecordAttempt appends one attempt to the log.
	RecordAttempt(ctx context.Context, p AttemptParams) (*model.Attempt, error)

	// Attempts lists logged attempts, newest first.
	Attempts(ctx context.Context, f AttemptFilter) ([]model.Attempt, error)

	// Reset clears the tally and tricky list. The attempt log is kept
	// unless all is set.
	Reset(ctx context.Context, all bool) error

	// Close closes the store.
	Close() error
}
