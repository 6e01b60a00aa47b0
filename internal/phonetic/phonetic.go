// Package phonetic turns isolated spelling chunks into text a speech
// synthesizer reads the way the chunk sounds inside the word, and glosses
// common morphemes with a short meaning.
//
// Nothing here changes what the learner sees; callers display the original
// chunk and hand only the rendered text to the synthesizer.
package phonetic

import "strings"

// overrides respells chunks that a synthesizer mispronounces in isolation.
var overrides = map[string]string{
	"tion":  "shun",
	"sion":  "shun",
	"ition": "ish-un",
	"ation": "ay-shun",
	"ble":   "bul",
	"cle":   "kul",
	"ence":  "ents",
	"ance":  "ants",
	"ough":  "oh",
}

// ToSpeechText returns the text to synthesize for chunk. Chunks without an
// override are returned unchanged.
func ToSpeechText(chunk string) string {
	key := strings.ToLower(chunk)
	if s, ok := overrides[key]; ok {
		return s
	}
	// "ion" alone is a reduced vowel plus n, not the "shun" of its siblings.
	if key == "ion" {
		return "yun"
	}
	return chunk
}
