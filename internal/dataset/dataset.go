// Package dataset loads and validates the morphology dataset the trainer
// draws its word cards from.
package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/eduventuring-commits/word-trainer/internal/model"
)

// ErrEmpty is returned when a dataset holds no word cards.
var ErrEmpty = errors.New("dataset: no word cards")

// ErrNotFound is returned by Lookup when no card matches.
var ErrNotFound = errors.New("dataset: card not found")

// MaxBytes caps how much of a remote dataset is read.
const MaxBytes = 16 << 20

//go:embed data/morphology_dataset.json
var bundled []byte

var validate = validator.New()

// Loader reads datasets from files or HTTP(S) URLs.
type Loader struct {
	Client *http.Client
}

// NewLoader returns a Loader with a bounded HTTP client.
func NewLoader() *Loader {
	return &Loader{Client: &http.Client{Timeout: 30 * time.Second}}
}

// Load reads the dataset at source. An empty source selects the bundled
// sample dataset.
func (l *Loader) Load(ctx context.Context, source string) (*model.Dataset, error) {
	switch {
	case source == "":
		return Decode(bytes.NewReader(bundled))
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return l.fetch(ctx, source)
	default:
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open dataset: %w", err)
		}
		defer f.Close()
		d, err := Decode(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		return d, nil
	}
}

func (l *Loader) fetch(ctx context.Context, url string) (*model.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dataset: %s: status %d", url, resp.StatusCode)
	}
	d, err := Decode(io.LimitReader(resp.Body, MaxBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	return d, nil
}

// Decode parses and validates a dataset.
func Decode(r io.Reader) (*model.Dataset, error) {
	var d model.Dataset
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if err := Validate(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks that d has at least one card, that every card carries its
// required fields, and that card IDs are unique.
func Validate(d *model.Dataset) error {
	if len(d.WordCards) == 0 {
		return ErrEmpty
	}
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("validate dataset: %w", err)
	}
	seen := make(map[string]bool, len(d.WordCards))
	for _, c := range d.WordCards {
		if seen[c.ID] {
			return fmt.Errorf("validate dataset: duplicate card id %q", c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}

// Find returns the card whose ID or word matches key, ignoring case.
func Find(cards []model.WordCard, key string) (model.WordCard, bool) {
	key = strings.TrimSpace(key)
	for _, c := range cards {
		if c.ID == key {
			return c, true
		}
	}
	for _, c := range cards {
		if strings.EqualFold(c.Word, key) {
			return c, true
		}
	}
	return model.WordCard{}, false
}

// Lookup is Find returning ErrNotFound for a missing card.
func Lookup(cards []model.WordCard, key string) (model.WordCard, error) {
	c, ok := Find(cards, key)
	if !ok {
		return model.WordCard{}, fmt.Errorf("%q: %w", strings.TrimSpace(key), ErrNotFound)
	}
	return c, nil
}
