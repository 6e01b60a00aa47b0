package model

// RootEntry is a glossary entry for a root.
type RootEntry struct {
	Root     string   `json:"root"`
	Meaning  string   `json:"meaning"`
	Examples []string `json:"examples"`
	Notes    string   `json:"notes"`
}

// PrefixEntry is a glossary entry for a prefix.
type PrefixEntry struct {
	Prefix   string   `json:"prefix"`
	Meaning  string   `json:"meaning"`
	Examples []string `json:"examples"`
	Notes    string   `json:"notes"`
}

// SuffixEntry is a glossary entry for a suffix.
type SuffixEntry struct {
	Suffix             string   `json:"suffix"`
	Meaning            string   `json:"meaning"`
	PartOfSpeechEffect string   `json:"part_of_speech_effect"`
	Examples           []string `json:"examples"`
	Notes              string   `json:"notes"`
}

// Dataset is the full morphology dataset. The glossary lists are carried
// along but only WordCards drive practice.
type Dataset struct {
	Roots     []RootEntry   `json:"roots"`
	Prefixes  []PrefixEntry `json:"prefixes"`
	Suffixes  []SuffixEntry `json:"suffixes"`
	WordCards []WordCard    `json:"wordCards" validate:"dive"`
}

// Progress is a learner's running tally.
type Progress struct {
	Practiced            int      `json:"practiced" yaml:"practiced"`
	CorrectMeaningChecks int      `json:"correctMeaningChecks" yaml:"correct_meaning_checks"`
	TrickyIDs            []string `json:"trickyIds" yaml:"tricky_ids"`
	SessionTotal         int      `json:"sessionTotal" yaml:"session_total"`
}
