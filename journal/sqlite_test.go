package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := OpenArchive(filepath.Join(t.TempDir(), "archive.sqlite"))
	assert.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func archivedSession(t *testing.T) Session {
	t.Helper()
	s := NewStore(nil, 0)
	assert.NoError(t, s.AddEntry(RTH, Bull, "above EMA"))
	assert.NoError(t, s.AddEntry(RTH, Bull, "DB(x)"))
	assert.NoError(t, s.AddEntry("17", TR, "strongly overlap(5 bars)"))
	assert.NoError(t, s.AddEntry("17", Bias, "Bearish/TR"))
	return s.Snapshot()
}

func TestArchiveSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	a := newTestArchive(t)
	want := archivedSession(t)

	id, err := a.SaveSnapshot(want, "monday open", time.Now())
	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	got, err := a.LoadSnapshot(id)
	assert.NoError(t, err)

	assert.Equal(t, want[RTH].Bull, got[RTH].Bull)
	assert.Equal(t, want[RTH].TS, got[RTH].TS)
	assert.Equal(t, want[BarKey("17")].TR, got[BarKey("17")].TR)
	assert.Equal(t, want[BarKey("17")].Bias, got[BarKey("17")].Bias)

	// Bars without observations come back empty, not missing.
	assert.Len(t, got, 83)
	assert.True(t, got[ETH].Empty())
}

func TestArchiveListSnapshots(t *testing.T) {
	t.Parallel()

	a := newTestArchive(t)
	sess := archivedSession(t)

	savedAt := time.Date(2024, 6, 3, 16, 15, 0, 0, time.UTC)
	first, err := a.SaveSnapshot(sess, "first", savedAt)
	assert.NoError(t, err)
	second, err := a.SaveSnapshot(sess, "second", savedAt.Add(time.Hour))
	assert.NoError(t, err)

	infos, err := a.ListSnapshots()
	assert.NoError(t, err)
	assert.Len(t, infos, 2)

	// ULIDs sort by generation time, so ordering by id is chronological.
	assert.Equal(t, first, infos[0].ID)
	assert.Equal(t, second, infos[1].ID)
	assert.Equal(t, "first", infos[0].Label)
	assert.Equal(t, 4, infos[0].Observations)
	assert.True(t, savedAt.Equal(infos[0].SavedAt))
}

func TestArchiveLoadUnknownSnapshot(t *testing.T) {
	t.Parallel()

	a := newTestArchive(t)
	_, err := a.LoadSnapshot("01J00000000000000000000000")
	assert.ErrorContains(t, err, "not found")
}

func TestArchiveDeleteSnapshot(t *testing.T) {
	t.Parallel()

	a := newTestArchive(t)
	id, err := a.SaveSnapshot(archivedSession(t), "stale", time.Now())
	assert.NoError(t, err)

	assert.NoError(t, a.DeleteSnapshot(id))

	infos, err := a.ListSnapshots()
	assert.NoError(t, err)
	assert.Empty(t, infos)

	assert.ErrorContains(t, a.DeleteSnapshot(id), "not found")
}

func TestArchiveEmptySessionSnapshot(t *testing.T) {
	t.Parallel()

	a := newTestArchive(t)
	id, err := a.SaveSnapshot(NewSession(), "blank", time.Now())
	assert.NoError(t, err)

	infos, err := a.ListSnapshots()
	assert.NoError(t, err)
	assert.Len(t, infos, 1)
	assert.Equal(t, id, infos[0].ID)
	assert.Equal(t, 0, infos[0].Observations)
}
