package store

import (
	"context"
	"fmt"
	"time"

	"github.com/eduventuring-commits/word-trainer/internal/model"
)

// Export is a full snapshot of the store.
type Export struct {
	Progress model.Progress  `json:"progress" yaml:"progress"`
	Attempts []model.Attempt `json:"attempts" yaml:"attempts"`
}

// ExportAll returns the progress tally and the whole attempt log, oldest
// attempt first.
func (s *SQLiteStore) ExportAll(ctx context.Context) (*Export, error) {
	p, err := s.Progress(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, card_id, word, kind, correct, transcript, answer, created_at
		 FROM attempts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := &Export{Progress: p, Attempts: []model.Attempt{}}
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		out.Attempts = append(out.Attempts, a)
	}
	return out, rows.Err()
}

// Import replaces the progress tally with e.Progress and appends attempts
// not already present (same ID). Returns the number of attempts added.
func (s *SQLiteStore) Import(ctx context.Context, e *Export) (int, error) {
	if err := s.SaveProgress(ctx, e.Progress); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	imported := 0
	for _, a := range e.Attempts {
		if !model.ValidAttemptKinds[a.Kind] {
			return 0, fmt.Errorf("attempt %s: invalid kind %q", a.ID, a.Kind)
		}
		id := a.ID
		if id == "" {
			id = s.newID(a.CreatedAt)
		}
		res, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO attempts (id, card_id, word, kind, correct, transcript, answer, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, a.CardID, a.Word, string(a.Kind), a.Correct,
			nullable(a.Transcript), nullable(a.Answer), a.CreatedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return 0, fmt.Errorf("import attempt %s: %w", id, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			imported++
		}
	}
	return imported, tx.Commit()
}
