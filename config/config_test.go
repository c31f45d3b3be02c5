package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultValidates(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())

	d, err := cfg.Session.ParseDebounce()
	assert.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, d)
}

func TestSaveLoadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "barjournal.yaml")

	want := Default()
	want.Session.Path = "/tmp/s.json"
	want.Session.Debounce = "2s"
	want.UI.Theme = "light"
	assert.NoError(t, want.SaveToFile(path))

	got, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveLoadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "barjournal.json")

	want := Default()
	want.Archive.DBPath = "/tmp/archive.sqlite"
	assert.NoError(t, want.SaveToFile(path))

	got, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "barjournal.yaml")
	blob := "session:\n  debounce: 1s\n"
	assert.NoError(t, os.WriteFile(path, []byte(blob), 0o644))

	got, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "1s", got.Session.Debounce)
	assert.Equal(t, Default().Presets.Path, got.Presets.Path)
	assert.Equal(t, Default().UI.Theme, got.UI.Theme)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad debounce", func(c *Config) { c.Session.Debounce = "fast" }},
		{"negative debounce", func(c *Config) { c.Session.Debounce = "-1s" }},
		{"missing presets path", func(c *Config) { c.Presets.Path = "" }},
		{"missing archive path", func(c *Config) { c.Archive.DBPath = "" }},
		{"unknown theme", func(c *Config) { c.UI.Theme = "solarized" }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
