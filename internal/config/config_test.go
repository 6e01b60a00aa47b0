package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "word-trainer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// isolate runs the test from an empty directory with no config env set.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("WORD_TRAINER_CONFIG", "")
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".word-trainer", "progress.db"), cfg.Store.Path)
	assert.Empty(t, cfg.Dataset.Source, "bundled dataset by default")
	assert.Equal(t, "All", cfg.Session.GradeBand)
	assert.Equal(t, "Mixed", cfg.Session.Focus)
	assert.Equal(t, "en-US", cfg.Speech.Language)
	assert.Equal(t, "espeak-ng", cfg.Speech.Synth)
	assert.False(t, cfg.Speech.Slow)
	assert.Equal(t, 3, cfg.Speech.MaxAlts)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadYAMLWithEnvOverride(t *testing.T) {
	dir := isolate(t)
	path := writeYAML(t, dir, `
store:
  path: /tmp/wt.db
dataset:
  source: https://example.org/morphology.json
session:
  grade_band: "5-6"
  focus: Roots
speech:
  slow: true
log:
  level: debug
`)
	t.Setenv("WORD_TRAINER_FOCUS", "Prefixes")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/wt.db", cfg.Store.Path)
	assert.Equal(t, "https://example.org/morphology.json", cfg.Dataset.Source)
	assert.Equal(t, "5-6", cfg.Session.GradeBand)
	assert.Equal(t, "Prefixes", cfg.Session.Focus, "env overrides file")
	assert.True(t, cfg.Speech.Slow)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadFromEnvPath(t *testing.T) {
	dir := isolate(t)
	path := writeYAML(t, dir, "session:\n  grade_band: \"7-8\"\n")
	t.Setenv("WORD_TRAINER_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "7-8", cfg.Session.GradeBand)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Store:   StoreConfig{Path: "x.db"},
			Session: SessionConfig{GradeBand: "All", Focus: "Mixed"},
			Speech:  SpeechConfig{MaxAlts: 3},
			Log:     LogConfig{Level: "info", Format: "json"},
		}
	}
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty store", func(c *Config) { c.Store.Path = "" }, "store.path"},
		{"bad grade", func(c *Config) { c.Session.GradeBand = "9-10" }, "grade_band"},
		{"bad focus", func(c *Config) { c.Session.Focus = "Words" }, "focus"},
		{"no alternatives", func(c *Config) { c.Speech.MaxAlts = 0 }, "max_alternatives"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errSub == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSub)
		})
	}
}
