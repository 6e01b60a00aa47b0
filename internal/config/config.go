// Package config loads word-trainer settings from an optional YAML file and
// the environment.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/eduventuring-commits/word-trainer/internal/model"
)

// Config is the root configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Dataset DatasetConfig `yaml:"dataset"`
	Session SessionConfig `yaml:"session"`
	Speech  SpeechConfig  `yaml:"speech"`
	Log     LogConfig     `yaml:"log"`
}

// StoreConfig locates the progress database.
type StoreConfig struct {
	Path string `yaml:"path" env:"WORD_TRAINER_DB" env-default:"~/.word-trainer/progress.db"`
}

// DatasetConfig locates the word-card dataset: a file path or an HTTP(S)
// URL. Empty selects the bundled sample.
type DatasetConfig struct {
	Source string `yaml:"source" env:"WORD_TRAINER_DATASET"`
}

// SessionConfig holds the default card selection.
type SessionConfig struct {
	GradeBand string `yaml:"grade_band" env:"WORD_TRAINER_GRADE" env-default:"All"`
	Focus     string `yaml:"focus"      env:"WORD_TRAINER_FOCUS" env-default:"Mixed"`
}

// SpeechConfig configures synthesis and recognition.
type SpeechConfig struct {
	Language string `yaml:"language"         env:"WORD_TRAINER_LANGUAGE"         env-default:"en-US"`
	Synth    string `yaml:"synth"            env:"WORD_TRAINER_SYNTH"            env-default:"espeak-ng"`
	Slow     bool   `yaml:"slow"             env:"WORD_TRAINER_SLOW"             env-default:"false"`
	MaxAlts  int    `yaml:"max_alternatives" env:"WORD_TRAINER_MAX_ALTERNATIVES" env-default:"3"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// DefaultPath is the config file read when WORD_TRAINER_CONFIG is unset.
const DefaultPath = "./word-trainer.yaml"

// Load reads configuration from path, or from WORD_TRAINER_CONFIG, or from
// DefaultPath if it exists. Priority: ENV > YAML > defaults.
// A missing file is only an error when the path was given explicitly.
func Load(path string) (*Config, error) {
	var cfg Config

	explicitPath := path != ""
	if !explicitPath {
		path = os.Getenv("WORD_TRAINER_CONFIG")
		explicitPath = path != ""
	}
	if !explicitPath {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	cfg.Store.Path = expandHome(cfg.Store.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks field values that tags cannot express.
func (c *Config) Validate() error {
	if c.Store.Path == "" {
		return fmt.Errorf("store.path must not be empty")
	}
	if !model.ValidGradeBands[model.GradeBand(c.Session.GradeBand)] {
		return fmt.Errorf("session.grade_band %q is not one of 3-4, 5-6, 7-8, All", c.Session.GradeBand)
	}
	if !model.ValidFocuses[model.Focus(c.Session.Focus)] {
		return fmt.Errorf("session.focus %q is not one of Roots, Prefixes, Suffixes, Mixed", c.Session.Focus)
	}
	if c.Speech.MaxAlts < 1 {
		return fmt.Errorf("speech.max_alternatives must be >= 1 (got %d)", c.Speech.MaxAlts)
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	if !slices.Contains([]string{"text", "json"}, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format %q is not one of text, json", c.Log.Format)
	}
	return nil
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return home + p[1:]
}
