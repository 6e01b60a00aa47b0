package store

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/eduventuring-commits/word-trainer/internal/model"
)

// ReviewParams holds parameters for review assembly.
type ReviewParams struct {
	Kind  model.AttemptKind // empty means all kinds
	Limit int
}

// ReviewWord is a scored card for the review list.
type ReviewWord struct {
	CardID   string     `json:"card_id" yaml:"card_id"`
	Word     string     `json:"word,omitempty" yaml:"word,omitempty"`
	Attempts int        `json:"attempts" yaml:"attempts"`
	Misses   int        `json:"misses" yaml:"misses"`
	Tricky   bool       `json:"tricky" yaml:"tricky"`
	LastSeen *time.Time `json:"last_seen,omitempty" yaml:"last_seen,omitempty"`
	Score    float64    `json:"score" yaml:"score"`
}

// ReviewResult is the assembled review list.
type ReviewResult struct {
	Limit int          `json:"limit" yaml:"limit"`
	Words []ReviewWord `json:"words" yaml:"words"`
}

// Review ranks cards the learner missed or flagged as tricky. A card's
// score mixes its miss rate, the tricky flag and how recently it was seen.
// Attempts without a card are grouped by word.
func (s *SQLiteStore) Review(ctx context.Context, p ReviewParams) (*ReviewResult, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT card_id, MAX(word), COUNT(*),
		       SUM(CASE WHEN correct = 0 THEN 1 ELSE 0 END), MAX(created_at)
		FROM attempts`
	args := []interface{}{}
	if p.Kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(p.Kind))
	}
	query += ` GROUP BY CASE WHEN card_id = '' THEN 'word:' || LOWER(word) ELSE card_id END`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byCard := map[string]*ReviewWord{}
	for rows.Next() {
		var w ReviewWord
		var last string
		if err := rows.Scan(&w.CardID, &w.Word, &w.Attempts, &w.Misses, &last); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, last); err == nil {
			w.LastSeen = &t
		}
		byCard[reviewKey(w.CardID, w.Word)] = &w
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tricky, err := s.trickyIDs(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range tricky {
		w, ok := byCard[id]
		if !ok {
			w = &ReviewWord{CardID: id}
			byCard[id] = w
		}
		w.Tricky = true
	}

	now := time.Now()
	var candidates []ReviewWord
	for _, w := range byCard {
		if w.Misses == 0 && !w.Tricky {
			continue
		}
		missRate := 0.0
		if w.Attempts > 0 {
			missRate = float64(w.Misses) / float64(w.Attempts)
		}
		flag := 0.0
		if w.Tricky {
			flag = 1
		}
		// Recency: exponential decay over days since last attempt.
		recency := 0.0
		if w.LastSeen != nil {
			age := now.Sub(*w.LastSeen).Hours() / 24.0
			recency = math.Exp(-0.1 * age)
		}
		score := missRate*0.5 + flag*0.3 + recency*0.2
		w.Score = math.Round(score*100) / 100
		candidates = append(candidates, *w)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		if candidates[i].CardID != candidates[j].CardID {
			return candidates[i].CardID < candidates[j].CardID
		}
		return candidates[i].Word < candidates[j].Word
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return &ReviewResult{Limit: limit, Words: append([]ReviewWord{}, candidates...)}, nil
}

func reviewKey(cardID, word string) string {
	if cardID == "" {
		return "word:" + strings.ToLower(word)
	}
	return cardID
}
