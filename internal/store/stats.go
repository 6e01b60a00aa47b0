package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath        string      `json:"db_path" yaml:"db_path"`
	DBSizeBytes   int64       `json:"db_size_bytes" yaml:"db_size_bytes"`
	Practiced     int         `json:"practiced" yaml:"practiced"`
	Correct       int         `json:"correct_meaning_checks" yaml:"correct_meaning_checks"`
	SessionTotal  int         `json:"session_total" yaml:"session_total"`
	TrickyWords   int         `json:"tricky_words" yaml:"tricky_words"`
	TotalAttempts int         `json:"total_attempts" yaml:"total_attempts"`
	Kinds         []KindStats `json:"kinds" yaml:"kinds"`
}

// KindStats holds per-exercise counts.
type KindStats struct {
	Kind    string  `json:"kind" yaml:"kind"`
	Count   int     `json:"count" yaml:"count"`
	Correct int     `json:"correct" yaml:"correct"`
	Words   int     `json:"words" yaml:"words"`
	Rate    float64 `json:"rate" yaml:"rate"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath, Kinds: []KindStats{}}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	p, err := s.Progress(ctx)
	if err != nil {
		return st, err
	}
	st.Practiced = p.Practiced
	st.Correct = p.CorrectMeaningChecks
	st.SessionTotal = p.SessionTotal
	st.TrickyWords = len(p.TrickyIDs)

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM attempts`).Scan(&st.TotalAttempts); err != nil {
		return st, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, COUNT(*) AS cnt, SUM(correct), COUNT(DISTINCT card_id)
		FROM attempts
		GROUP BY kind ORDER BY cnt DESC, kind`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var k KindStats
		if err := rows.Scan(&k.Kind, &k.Count, &k.Correct, &k.Words); err != nil {
			return st, err
		}
		if k.Count > 0 {
			k.Rate = float64(k.Correct) / float64(k.Count)
		}
		st.Kinds = append(st.Kinds, k)
	}

	return st, rows.Err()
}
