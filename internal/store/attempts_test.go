package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduventuring-commits/word-trainer/internal/model"
)

func seedAttempts(t *testing.T, s *SQLiteStore) []*model.Attempt {
	t.Helper()
	ctx := context.Background()
	params := []AttemptParams{
		{CardID: "wc-001", Word: "transport", Kind: model.AttemptQuiz, Correct: true, Answer: "to carry something from one place to another"},
		{CardID: "wc-007", Word: "interrupt", Kind: model.AttemptListen, Correct: false, Transcript: "enter up"},
		{CardID: "wc-007", Word: "interrupt", Kind: model.AttemptListen, Correct: true, Transcript: "interupt"},
		{CardID: "wc-011", Word: "invisible", Kind: model.AttemptQuiz, Correct: false, Answer: "able to be seen"},
	}
	var out []*model.Attempt
	for _, p := range params {
		a, err := s.RecordAttempt(ctx, p)
		require.NoError(t, err, "record")
		out = append(out, a)
	}
	return out
}

func TestAttemptsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	seeded := seedAttempts(t, s)

	got, err := s.Attempts(context.Background(), AttemptFilter{})
	require.NoError(t, err)
	require.Len(t, got, len(seeded))
	for i := range got {
		assert.Equal(t, seeded[len(seeded)-1-i].ID, got[i].ID, "position %d", i)
	}
}

func TestAttemptsFilters(t *testing.T) {
	s := newTestStore(t)
	seedAttempts(t, s)
	ctx := context.Background()

	tests := []struct {
		name string
		f    AttemptFilter
		want int
	}{
		{"by card", AttemptFilter{CardID: "wc-007"}, 2},
		{"by word substring", AttemptFilter{Word: "vis"}, 1},
		{"by kind", AttemptFilter{Kind: model.AttemptQuiz}, 2},
		{"missed only", AttemptFilter{Missed: true}, 2},
		{"missed listen", AttemptFilter{Kind: model.AttemptListen, Missed: true}, 1},
		{"limit", AttemptFilter{Limit: 3}, 3},
		{"no match", AttemptFilter{Word: "zebra"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Attempts(ctx, tt.f)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestStats(t *testing.T) {
	s := newTestStore(t)
	seedAttempts(t, s)
	ctx := context.Background()
	require.NoError(t, s.SaveProgress(ctx, model.Progress{Practiced: 4, CorrectMeaningChecks: 2, SessionTotal: 10, TrickyIDs: []string{"wc-011"}}))

	st, err := s.Stats(ctx, "test.db")
	require.NoError(t, err)
	assert.Equal(t, 4, st.TotalAttempts)
	assert.Equal(t, 4, st.Practiced)
	assert.Equal(t, 2, st.Correct)
	assert.Equal(t, 1, st.TrickyWords)
	require.Len(t, st.Kinds, 2)
	for _, k := range st.Kinds {
		assert.Equal(t, 2, k.Count, k.Kind)
		assert.Equal(t, 1, k.Correct, k.Kind)
		assert.Equal(t, 0.5, k.Rate, k.Kind)
	}
}

func TestExportImport(t *testing.T) {
	src := newTestStore(t)
	seedAttempts(t, src)
	ctx := context.Background()
	require.NoError(t, src.SaveProgress(ctx, model.Progress{Practiced: 4, CorrectMeaningChecks: 2, TrickyIDs: []string{"wc-007"}}))

	exp, err := src.ExportAll(ctx)
	require.NoError(t, err)
	require.Len(t, exp.Attempts, 4)
	assert.Equal(t, "transport", exp.Attempts[0].Word)

	dst := newTestStore(t)
	n, err := dst.Import(ctx, exp)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = dst.Import(ctx, exp)
	require.NoError(t, err)
	assert.Zero(t, n, "importing again adds nothing")

	p, err := dst.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Practiced)
	assert.Len(t, p.TrickyIDs, 1)
	got, err := dst.Attempts(ctx, AttemptFilter{CardID: "wc-007"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
