package phonetic

import "strings"

// glosses maps bare morpheme spellings to a child-friendly meaning.
var glosses = map[string]string{
	// roots
	"port":   "carry",
	"vis":    "see",
	"vid":    "see",
	"rupt":   "break",
	"scrib":  "write",
	"script": "write",
	"dict":   "say / tell",
	"struct": "build",
	"act":    "do",
	"form":   "shape",
	"mit":    "send",
	"miss":   "send",
	"aud":    "hear",
	"spec":   "look",
	"spect":  "look",
	"fer":    "carry",

	// prefixes
	"trans": "across",
	"re":    "again",
	"un":    "not",
	"pre":   "before",
	"dis":   "not / apart",
	"im":    "not",
	"in":    "not / into",
	"sub":   "under",
	"inter": "between",
	"ex":    "out",
	"con":   "together",
	"com":   "together",
	"de":    "down / away",
	"pro":   "forward",

	// suffixes
	"tion":  "act of",
	"sion":  "act of",
	"ment":  "result of",
	"ness":  "state of",
	"ful":   "full of",
	"less":  "without",
	"able":  "able to be",
	"ible":  "able to be",
	"er":    "one who",
	"or":    "one who",
	"ly":    "in a ___ way",
	"ist":   "person who",
	"ous":   "full of",
	"ion":   "act of",
	"ation": "act of",
	"ition": "act of",
	"ive":   "tending to",
	"ity":   "state of",
	"al":    "relating to",
	"ic":    "relating to",
	"ize":   "to make",
	"ise":   "to make",
}

// Meaning returns the gloss for a morpheme, ignoring case and surrounding
// dashes ("-able" and "able" gloss the same).
func Meaning(morpheme string) (string, bool) {
	g, ok := glosses[Normalize(morpheme)]
	return g, ok
}

// Normalize strips leading and trailing dashes and whitespace and lowercases.
func Normalize(fragment string) string {
	return strings.ToLower(strings.Trim(fragment, "- \t\r\n"))
}
