// Package chunker splits a word into syllables or morphemes for decoding
// practice. The curated lexicon is authoritative; words missing from it fall
// back to the card's authoring notes and declared prefix/root/suffix.
//
// Every result concatenates back to the input word (ignoring case). When a
// fallback cannot produce a split it is sure of, the whole word is returned
// as a single segment rather than a guess.
package chunker

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/eduventuring-commits/word-trainer/internal/lexicon"
	"github.com/eduventuring-commits/word-trainer/internal/model"
	"github.com/eduventuring-commits/word-trainer/internal/phonetic"
)

// Chunk decomposes word along axis. card supplies the fallback inputs and may
// be nil.
func Chunk(word string, axis model.Axis, card *model.WordCard) []model.Segment {
	if word == "" {
		return nil
	}
	if e, ok := lexicon.Lookup(word); ok {
		return e.Segments(axis)
	}

	if axis == model.AxisMorpheme {
		if card != nil {
			if segs, ok := splitMorphemes(word, card); ok {
				return segs
			}
		}
		slog.Debug("morpheme split fell back to whole word", "word", word)
		return []model.Segment{{Text: word, Role: model.RoleRoot}}
	}

	var notes string
	if card != nil {
		notes = card.DecodingNotes
	}
	parts, ok := ParseSyllableHint(notes, word)
	if !ok {
		slog.Debug("no usable syllable hint", "word", word)
		return []model.Segment{{Text: word, Role: model.RoleSyllable}}
	}
	segs := make([]model.Segment, len(parts))
	for i, p := range parts {
		segs[i] = model.Segment{Text: p, Role: model.RoleSyllable}
	}
	return segs
}

// hintRe finds a run of letters separated by pipes, e.g. "syllables: por | ta | ble".
var hintRe = regexp.MustCompile(`(?i)(?:syllables?:\s+)?([a-z]+(?:\s*\|\s*[a-z]+)+)`)

// ParseSyllableHint extracts the syllable split encoded in notes. It succeeds
// only when the hint has at least two non-empty syllables that spell word
// exactly (ignoring case). The returned parts are slices of word, so they
// keep its original casing.
func ParseSyllableHint(notes, word string) ([]string, bool) {
	if notes == "" || word == "" {
		return nil, false
	}
	m := hintRe.FindStringSubmatch(notes)
	if m == nil {
		return nil, false
	}

	raw := strings.Split(m[1], "|")
	if len(raw) < 2 {
		return nil, false
	}
	var joined strings.Builder
	for i, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, false
		}
		raw[i] = p
		joined.WriteString(p)
	}
	if !strings.EqualFold(joined.String(), word) || joined.Len() != len(word) {
		return nil, false
	}

	parts := make([]string, len(raw))
	pos := 0
	for i, p := range raw {
		parts[i] = word[pos : pos+len(p)]
		pos += len(p)
	}
	return parts, true
}

type fragment struct {
	key  string
	role model.Role
}

// fragments lists the card's declared morphemes in word order.
func fragments(card *model.WordCard) []fragment {
	var out []fragment
	if card.Prefix != nil {
		out = append(out, fragment{key: phonetic.Normalize(*card.Prefix), role: model.RolePrefix})
	}
	if card.Root != nil {
		// "spec/spect" lists alternate spellings; the first is used.
		root := phonetic.Normalize(*card.Root)
		if i := strings.IndexAny(root, `/\`); i >= 0 {
			root = root[:i]
		}
		out = append(out, fragment{key: phonetic.Normalize(root), role: model.RoleRoot})
	}
	if card.Suffix != nil {
		out = append(out, fragment{key: phonetic.Normalize(*card.Suffix), role: model.RoleSuffix})
	}
	return out
}

// splitMorphemes locates the card's fragments left to right. Text before the
// first fragment is a root and text after the last is a suffix; any other
// gap, a missing or empty fragment, or a casing mismatch fails the split.
func splitMorphemes(word string, card *model.WordCard) ([]model.Segment, bool) {
	frags := fragments(card)
	if len(frags) == 0 {
		return []model.Segment{{Text: word, Role: model.RoleRoot}}, true
	}

	lower := strings.ToLower(word)
	if len(lower) != len(word) {
		// Case mapping changed byte offsets; slicing would misalign.
		return nil, false
	}

	var segs []model.Segment
	pos := 0
	for i, f := range frags {
		if f.key == "" {
			return nil, false
		}
		idx := strings.Index(lower[pos:], f.key)
		if idx < 0 {
			return nil, false
		}
		if idx > 0 {
			if i > 0 {
				return nil, false
			}
			segs = append(segs, model.Segment{Text: word[:idx], Role: model.RoleRoot})
		}
		start := pos + idx
		end := start + len(f.key)
		text := word[start:end]
		if strings.ToLower(text) != f.key {
			return nil, false
		}
		segs = append(segs, model.Segment{Text: text, Role: f.role})
		pos = end
	}
	if pos < len(word) {
		segs = append(segs, model.Segment{Text: word[pos:], Role: model.RoleSuffix})
	}
	return segs, true
}
