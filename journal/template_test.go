package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTemplated("Decent bull bar()"))
	assert.True(t, IsTemplated("DB()"))
	assert.False(t, IsTemplated("above EMA"))

	assert.Equal(t, "Decent bull bar", TemplateBase("Decent bull bar()"))
	assert.Equal(t, "DB", TemplateBase("DB()"))

	assert.Equal(t, "Decent bull bar(inside)", ExpandTemplate("Decent bull bar()", "inside"))
	assert.Equal(t, "custom note (x)", ExpandTemplate("custom note", "x"))
}

func TestMatchesTemplate(t *testing.T) {
	t.Parallel()

	assert.True(t, MatchesTemplate("DB(x)", "DB"))
	assert.True(t, MatchesTemplate("Decent bull bar(inside)", "Decent bull bar"))
	assert.True(t, MatchesTemplate("ii()", "ii"))

	// Anchored on both sides: a longer base must not match a shorter one.
	assert.False(t, MatchesTemplate("iii(a)", "ii"))
	assert.False(t, MatchesTemplate("DB(x) extra", "DB"))
	assert.False(t, MatchesTemplate("DB", "DB"))
}

func TestAddTemplated(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, 0)
	assert.NoError(t, s.AddTemplated(RTH, Bull, "Decent bull bar()", "inside"))
	assert.Equal(t, []string{"Decent bull bar(inside)"}, s.Entries(RTH, Bull))
}

func TestAddTemplatedRejectsSecondForSameBase(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, 0)
	assert.NoError(t, s.AddEntry(RTH, Bull, "Decent bull bar(inside)"))

	err := s.AddTemplated(RTH, Bull, "Decent bull bar()", "outside")
	assert.ErrorIs(t, err, ErrTemplateExists)
	assert.Equal(t, []string{"Decent bull bar(inside)"}, s.Entries(RTH, Bull))
}

func TestAddTemplatedEmptyDetail(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, 0)
	assert.ErrorIs(t, s.AddTemplated(RTH, Bull, "DB()", "  "), ErrEmptyDetail)
	assert.Empty(t, s.Entries(RTH, Bull))
}

func TestRemoveTemplatedMatchesAnySuffix(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, 0)
	assert.NoError(t, s.AddEntry(RTH, Bull, "Decent bull bar(inside)"))

	assert.NoError(t, s.RemoveEntry(RTH, Bull, "Decent bull bar()"))
	assert.Empty(t, s.Entries(RTH, Bull))
}

func TestRemoveTemplatedPicksLatest(t *testing.T) {
	t.Parallel()

	// Two same-base expansions can only arrive through direct adds, but
	// removal still has to pick the most recent one.
	s := NewStore(nil, 0)
	assert.NoError(t, s.AddEntry("4", Bear, "DT(a)"))
	assert.NoError(t, s.AddEntry("4", Bear, "below EMA"))
	assert.NoError(t, s.AddEntry("4", Bear, "DT(b)"))

	assert.NoError(t, s.RemoveEntry("4", Bear, "DT()"))
	assert.Equal(t, []string{"DT(a)", "below EMA"}, s.Entries("4", Bear))
}
