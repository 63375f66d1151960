package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorlink/internal/domain/course"
)

// Both implementations satisfy the same contract, so the suite runs against
// each of them.
func storageUnderTest(t *testing.T) map[string]Storage {
	t.Helper()

	onDisk, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "drafts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { onDisk.Close() })

	return map[string]Storage{
		"memory": NewMemoryStorage(),
		"sqlite": onDisk,
	}
}

func TestStorage_SaveAndGetDraft(t *testing.T) {
	for name, store := range storageUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			d := testDraft()
			require.NoError(t, store.SaveDraft(d))

			got, err := store.GetDraft(d.LocalID)
			require.NoError(t, err)
			assert.Equal(t, d.Title, got.Title)
			require.Len(t, got.Sections, 2)
			assert.Equal(t, "Cases", got.Sections[0].Title)
			require.Len(t, got.Sections[0].Lessons, 2)
			require.Len(t, got.Sections[0].Lessons[0].Resources, 1)
		})
	}
}

// Server IDs written back mid-sync must survive a reload, or a resumed push
// would re-create entities the backend already has.
func TestStorage_ServerIDsSurviveReload(t *testing.T) {
	for name, store := range storageUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			d := testDraft()
			require.NoError(t, store.SaveDraft(d))

			d.Sections[0].ServerID = 101
			d.Sections[0].Lessons[0].ServerID = 102
			require.NoError(t, store.SaveDraft(d))

			got, err := store.GetDraft(d.LocalID)
			require.NoError(t, err)
			assert.Equal(t, int64(101), got.Sections[0].ServerID)
			assert.Equal(t, int64(102), got.Sections[0].Lessons[0].ServerID)
			assert.Zero(t, got.Sections[0].Lessons[1].ServerID)
		})
	}
}

func TestStorage_GetDraftByServerID(t *testing.T) {
	for name, store := range storageUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			d := testDraft()
			require.NoError(t, store.SaveDraft(d))

			got, err := store.GetDraftByServerID(d.ServerID)
			require.NoError(t, err)
			assert.Equal(t, d.LocalID, got.LocalID)

			_, err = store.GetDraftByServerID(9999)
			assert.ErrorIs(t, err, course.ErrNotFound)
		})
	}
}

func TestStorage_ListAndDelete(t *testing.T) {
	for name, store := range storageUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			d := testDraft()
			require.NoError(t, store.SaveDraft(d))

			infos, err := store.ListDrafts()
			require.NoError(t, err)
			require.Len(t, infos, 1)
			assert.Equal(t, d.LocalID, infos[0].LocalID)
			assert.Equal(t, d.ServerID, infos[0].ServerID)
			assert.Equal(t, d.Title, infos[0].Title)

			require.NoError(t, store.DeleteDraft(d.LocalID))
			_, err = store.GetDraft(d.LocalID)
			assert.ErrorIs(t, err, course.ErrNotFound)

			infos, err = store.ListDrafts()
			require.NoError(t, err)
			assert.Empty(t, infos)
		})
	}
}

// Baselines ride along in the serialized document, so diffing still works
// after a process restart.
func TestSQLiteStorage_BaselinePersists(t *testing.T) {
	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "drafts.db"))
	require.NoError(t, err)
	defer store.Close()

	d := testDraft()
	d.RecordBaseline()
	require.NoError(t, store.SaveDraft(d))

	got, err := store.GetDraft(d.LocalID)
	require.NoError(t, err)
	require.NotNil(t, got.Baseline)
	assert.Equal(t, d.Title, got.Baseline.Title)
}
