package presets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rustyeddy/barjournal/journal"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	p := Defaults()
	assert.Len(t, p.Bull, 8)
	assert.Len(t, p.Bear, 8)
	assert.Len(t, p.TR, 6)
	assert.Len(t, p.Bias, 5)

	assert.Contains(t, p.Bull, "above EMA")
	assert.Contains(t, p.Bull, "DB()")
	assert.Contains(t, p.Bear, "DT()")
	assert.Contains(t, p.TR, "ii()")
	assert.Equal(t, []string{"Bullish", "Bullish/TR", "TR", "Bearish/TR", "Bearish"}, p.Bias)
}

func TestList(t *testing.T) {
	t.Parallel()

	p := Defaults()
	assert.Equal(t, p.Bull, p.List(journal.Bull))
	assert.Equal(t, p.Bear, p.List(journal.Bear))
	assert.Equal(t, p.TR, p.List(journal.TR))
	assert.Equal(t, p.Bias, p.List(journal.Bias))
	assert.Nil(t, p.List(journal.Category("other")))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	p := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Equal(t, Defaults(), p)
}

func TestLoadMalformedFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "presets.json")
	assert.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	assert.Equal(t, Defaults(), Load(path))
}

func TestLoadPartialOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "presets.json")
	blob := `{"bull": ["my setup()", "wedge"], "bias": []}`
	assert.NoError(t, os.WriteFile(path, []byte(blob), 0o644))

	p := Load(path)
	assert.Equal(t, []string{"my setup()", "wedge"}, p.Bull)
	assert.Empty(t, p.Bias) // explicit empty list overrides
	assert.Equal(t, Defaults().Bear, p.Bear)
	assert.Equal(t, Defaults().TR, p.TR)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "presets.json")

	want := Defaults()
	want.Bull = []string{"升穿 50% PB", "DB()"}
	assert.NoError(t, want.Save(path))

	got := Load(path)
	assert.Equal(t, want.Bull, got.Bull)
	assert.Equal(t, want.Bear, got.Bear)
	assert.Equal(t, want.TR, got.TR)
	assert.Equal(t, want.Bias, got.Bias)
}

func TestReplaceNotifiesSubscribers(t *testing.T) {
	t.Parallel()

	p := Defaults()
	calls := 0
	p.Subscribe(func() { calls++ })
	p.Subscribe(func() { calls++ })

	next := &Sets{Bull: []string{"only"}}
	p.Replace(next)

	assert.Equal(t, 2, calls)
	assert.Equal(t, []string{"only"}, p.Bull)
	assert.Empty(t, p.Bear)

	// Replace copies, it must not alias the source slices.
	next.Bull[0] = "changed"
	assert.Equal(t, []string{"only"}, p.Bull)
}
