package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/eduventuring-commits/word-trainer/internal/model"
	"github.com/eduventuring-commits/word-trainer/internal/progress"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS progress (
		id                     INTEGER PRIMARY KEY CHECK (id = 1),
		practiced              INTEGER NOT NULL DEFAULT 0,
		correct_meaning_checks INTEGER NOT NULL DEFAULT 0,
		session_total          INTEGER NOT NULL DEFAULT 0,
		updated_at             TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tricky (
		card_id  TEXT PRIMARY KEY,
		seq      INTEGER NOT NULL,
		added_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS attempts (
		id         TEXT PRIMARY KEY,
		card_id    TEXT NOT NULL,
		word       TEXT NOT NULL,
		kind       TEXT NOT NULL,
		correct    INTEGER NOT NULL,
		transcript TEXT,
		answer     TEXT,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_attempts_card ON attempts(card_id);
	CREATE INDEX IF NOT EXISTS idx_attempts_kind ON attempts(kind);
	CREATE INDEX IF NOT EXISTS idx_attempts_created ON attempts(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Progress(ctx context.Context) (model.Progress, error) {
	p := progress.Default()
	err := s.db.QueryRowContext(ctx,
		`SELECT practiced, correct_meaning_checks, session_total FROM progress WHERE id = 1`).
		Scan(&p.Practiced, &p.CorrectMeaningChecks, &p.SessionTotal)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return p, fmt.Errorf("read progress: %w", err)
	}

	ids, err := s.trickyIDs(ctx)
	if err != nil {
		return p, err
	}
	p.TrickyIDs = ids
	return p, nil
}

func (s *SQLiteStore) SaveProgress(ctx context.Context, p model.Progress) error {
	if p.Practiced < 0 || p.CorrectMeaningChecks < 0 || p.SessionTotal < 0 {
		return fmt.Errorf("save progress: negative count in %+v", p)
	}
	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO progress (id, practiced, correct_meaning_checks, session_total, updated_at)
		 VALUES (1, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   practiced = excluded.practiced,
		   correct_meaning_checks = excluded.correct_meaning_checks,
		   session_total = excluded.session_total,
		   updated_at = excluded.updated_at`,
		p.Practiced, p.CorrectMeaningChecks, p.SessionTotal, now)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}

	ids := uniq(p.TrickyIDs)
	for i, id := range ids {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO tricky (card_id, seq, added_at) VALUES (?, ?, ?)
			 ON CONFLICT(card_id) DO UPDATE SET seq = excluded.seq`,
			id, i, now)
		if err != nil {
			return fmt.Errorf("save tricky %s: %w", id, err)
		}
	}

	del := `DELETE FROM tricky`
	args := make([]interface{}, len(ids))
	if len(ids) > 0 {
		del += ` WHERE card_id NOT IN (` + strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",") + `)`
		for i, id := range ids {
			args[i] = id
		}
	}
	if _, err = tx.ExecContext(ctx, del, args...); err != nil {
		return fmt.Errorf("prune tricky: %w", err)
	}

	return tx.Commit()
}

func (s *SQLiteStore) RecordAttempt(ctx context.Context, p AttemptParams) (*model.Attempt, error) {
	if !model.ValidAttemptKinds[p.Kind] {
		return nil, fmt.Errorf("invalid attempt kind %q (valid: listen, quiz)", p.Kind)
	}
	if p.CardID == "" && p.Word == "" {
		return nil, fmt.Errorf("attempt needs a card id or word")
	}

	now := time.Now().UTC()
	a := &model.Attempt{
		ID:         s.newID(now),
		CardID:     p.CardID,
		Word:       p.Word,
		Kind:       p.Kind,
		Correct:    p.Correct,
		Transcript: p.Transcript,
		Answer:     p.Answer,
		CreatedAt:  now.Truncate(time.Second),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (id, card_id, word, kind, correct, transcript, answer, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.CardID, a.Word, string(a.Kind), a.Correct,
		nullable(a.Transcript), nullable(a.Answer), now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert attempt: %w", err)
	}
	return a, nil
}

func (s *SQLiteStore) Reset(ctx context.Context, all bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []string{`DELETE FROM progress`, `DELETE FROM tricky`}
	if all {
		stmts = append(stmts, `DELETE FROM attempts`)
	}
	for _, q := range stmts {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAttempt(row scanner) (model.Attempt, error) {
	var a model.Attempt
	var kind, createdAt string
	var transcript, answer sql.NullString

	err := row.Scan(&a.ID, &a.CardID, &a.Word, &kind, &a.Correct, &transcript, &answer, &createdAt)
	if err != nil {
		return a, err
	}
	a.Kind = model.AttemptKind(kind)
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	a.Transcript = transcript.String
	a.Answer = answer.String
	return a, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func uniq(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
