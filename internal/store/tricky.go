package store

import (
	"context"
	"fmt"
	"time"
)

// TrickyWord is a card the learner flagged for extra practice.
type TrickyWord struct {
	CardID  string    `json:"card_id" yaml:"card_id"`
	AddedAt time.Time `json:"added_at" yaml:"added_at"`
}

// Tricky returns the flagged cards in the order they were flagged.
func (s *SQLiteStore) Tricky(ctx context.Context) ([]TrickyWord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT card_id, added_at FROM tricky ORDER BY seq, card_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []TrickyWord
	for rows.Next() {
		var w TrickyWord
		var addedAt string
		if err := rows.Scan(&w.CardID, &addedAt); err != nil {
			return nil, err
		}
		w.AddedAt, _ = time.Parse(time.RFC3339, addedAt)
		words = append(words, w)
	}
	return words, rows.Err()
}

func (s *SQLiteStore) trickyIDs(ctx context.Context) ([]string, error) {
	words, err := s.Tricky(ctx)
	if err != nil {
		return nil, fmt.Errorf("read tricky: %w", err)
	}
	ids := make([]string, len(words))
	for i, w := range words {
		ids[i] = w.CardID
	}
	return ids, nil
}
