package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/eduventuring-commits/word-trainer/internal/model"
)

// Attempts lists logged attempts matching f, newest first.
func (s *SQLiteStore) Attempts(ctx context.Context, f AttemptFilter) ([]model.Attempt, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}

	where := []string{"1 = 1"}
	args := []interface{}{}

	if f.CardID != "" {
		where = append(where, "card_id = ?")
		args = append(args, f.CardID)
	}
	if f.Word != "" {
		where = append(where, "word LIKE ?")
		args = append(args, "%"+f.Word+"%")
	}
	if f.Kind != "" {
		where = append(where, "kind = ?")
		args = append(args, string(f.Kind))
	}
	if f.Missed {
		where = append(where, "correct = 0")
	}

	query := fmt.Sprintf(`
		SELECT id, card_id, word, kind, correct, transcript, answer, created_at
		FROM attempts
		WHERE %s
		ORDER BY id DESC
		LIMIT ?`, strings.Join(where, " AND "))
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []model.Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// Attempt returns one attempt by ID.
func (s *SQLiteStore) Attempt(ctx context.Context, id string) (*model.Attempt, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, card_id, word, kind, correct, transcript, answer, created_at
		 FROM attempts WHERE id = ?`, id)
	a, err := scanAttempt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("attempt %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
