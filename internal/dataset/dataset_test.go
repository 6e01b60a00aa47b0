package dataset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduventuring-commits/word-trainer/internal/chunker"
	"github.com/eduventuring-commits/word-trainer/internal/model"
)

const tinyJSON = `{
  "roots": [], "prefixes": [], "suffixes": [],
  "wordCards": [
    {"id": "a", "word": "export", "prefix": "ex-", "root": "port", "suffix": null,
     "student_friendly_meaning": "to send out", "part_of_speech": "verb", "grade_band": "5-6",
     "decoding_notes": "", "example_sentence": "", "distractor_meanings": ["to bring in"]}
  ]
}`

func TestLoadBundled(t *testing.T) {
	d, err := NewLoader().Load(context.Background(), "")
	require.NoError(t, err)
	require.NotEmpty(t, d.WordCards)
	assert.NotEmpty(t, d.Roots)

	for _, c := range d.WordCards {
		for _, axis := range []model.Axis{model.AxisSound, model.AxisMorpheme} {
			got := model.JoinSegments(chunker.Chunk(c.Word, axis, &c))
			assert.True(t, strings.EqualFold(got, c.Word), "%s/%s: %q", c.ID, axis, got)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ds.json")
	require.NoError(t, os.WriteFile(path, []byte(tinyJSON), 0o644))

	d, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, d.WordCards, 1)
	c := d.WordCards[0]
	assert.Equal(t, "export", c.Word)
	require.NotNil(t, c.Prefix)
	assert.Equal(t, "ex-", *c.Prefix)
	assert.Nil(t, c.Suffix)
	assert.Equal(t, model.Grade56, c.GradeBand)

	_, err = NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(tinyJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	l := &Loader{Client: srv.Client()}
	d, err := l.Load(context.Background(), srv.URL+"/ok")
	require.NoError(t, err)
	assert.Len(t, d.WordCards, 1)

	_, err = l.Load(context.Background(), srv.URL+"/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestValidate(t *testing.T) {
	valid := model.WordCard{ID: "a", Word: "w", Meaning: "m", GradeBand: model.Grade34}
	tests := []struct {
		name  string
		cards []model.WordCard
		check func(t *testing.T, err error)
	}{
		{
			name:  "empty",
			cards: nil,
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrEmpty) },
		},
		{
			name:  "valid",
			cards: []model.WordCard{valid},
			check: func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name: "bad grade band",
			cards: []model.WordCard{
				{ID: "a", Word: "w", Meaning: "m", GradeBand: model.GradeAll},
			},
			check: func(t *testing.T, err error) {
				var verrs validator.ValidationErrors
				require.True(t, errors.As(err, &verrs), "got %v", err)
				assert.Equal(t, "GradeBand", verrs[0].Field())
			},
		},
		{
			name:  "missing meaning",
			cards: []model.WordCard{{ID: "a", Word: "w", GradeBand: model.Grade34}},
			check: func(t *testing.T, err error) { assert.Error(t, err) },
		},
		{
			name:  "duplicate id",
			cards: []model.WordCard{valid, valid},
			check: func(t *testing.T, err error) { assert.ErrorContains(t, err, "duplicate card id") },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Validate(&model.Dataset{WordCards: tt.cards}))
		})
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("{not json"))
	assert.ErrorContains(t, err, "decode dataset")

	_, err = Decode(strings.NewReader(`{"wordCards": []}`))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestFind(t *testing.T) {
	cards := []model.WordCard{
		{ID: "wc-1", Word: "Export"},
		{ID: "export", Word: "import"},
	}
	c, ok := Find(cards, "export")
	require.True(t, ok)
	assert.Equal(t, "import", c.Word, "id match wins over word match")

	c, ok = Find(cards, " EXPORT ")
	require.True(t, ok)
	assert.Equal(t, "wc-1", c.ID)

	_, ok = Find(cards, "vision")
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	cards := []model.WordCard{{ID: "wc-1", Word: "export"}}

	c, err := Lookup(cards, "wc-1")
	require.NoError(t, err)
	assert.Equal(t, "export", c.Word)

	_, err = Lookup(cards, " vision ")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, `"vision": dataset: card not found`)
}
