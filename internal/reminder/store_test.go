package reminder

import (
	"database/sql"
	"path/filepath"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrade/loom/internal/urgency"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenPath(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func mustDate(t *testing.T, value string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(value)
	require.NoError(t, err)
	return d
}

func TestInsertAndList(t *testing.T) {
	s := setupTestStore(t)

	// Insert out of due-date order on purpose.
	laterID, err := s.Insert(mustDate(t, "2025-07-20"), "renew passport")
	require.NoError(t, err)
	soonerID, err := s.Insert(mustDate(t, "2025-07-01"), "urodziny Zosi")
	require.NoError(t, err)

	rems, err := s.List()
	require.NoError(t, err)
	require.Len(t, rems, 2)

	assert.Equal(t, soonerID, rems[0].ID)
	assert.Equal(t, laterID, rems[1].ID)
	assert.Equal(t, "urodziny Zosi", rems[0].Note)
	assert.Equal(t, "2025-07-01", rems[0].Due.String())
	for _, r := range rems {
		assert.Equal(t, urgency.None, r.NotifiedLevel, "reminder %d", r.ID)
	}
}

func TestListOrdersByDueThenID(t *testing.T) {
	s := setupTestStore(t)

	due := mustDate(t, "2025-07-01")
	first, err := s.Insert(due, "first")
	require.NoError(t, err)
	second, err := s.Insert(due, "second")
	require.NoError(t, err)

	rems, err := s.List()
	require.NoError(t, err)
	require.Len(t, rems, 2)
	assert.Equal(t, first, rems[0].ID)
	assert.Equal(t, second, rems[1].ID)
}

func TestListEmpty(t *testing.T) {
	s := setupTestStore(t)

	rems, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, rems)
}

func TestDelete(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.Insert(mustDate(t, "2025-07-01"), "water the plants")
	require.NoError(t, err)

	require.NoError(t, s.Delete(id))

	rems, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, rems)
}

func TestDeleteMissing(t *testing.T) {
	s := setupTestStore(t)

	assert.ErrorIs(t, s.Delete(42), ErrNotFound)
}

func TestSetNotifiedLevel(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.Insert(mustDate(t, "2025-07-01"), "dentist")
	require.NoError(t, err)

	require.NoError(t, s.SetNotifiedLevel(id, urgency.WithinThreeDays))

	rems, err := s.List()
	require.NoError(t, err)
	require.Len(t, rems, 1)
	assert.Equal(t, urgency.WithinThreeDays, rems[0].NotifiedLevel)
}

func TestSetNotifiedLevelMissing(t *testing.T) {
	s := setupTestStore(t)

	assert.ErrorIs(t, s.SetNotifiedLevel(42, urgency.WithinDay), ErrNotFound)
}

func TestListClampsStoredLevels(t *testing.T) {
	s := setupTestStore(t)

	// Write rows the public API would never produce.
	_, err := s.db.Exec(`
		INSERT INTO reminders (due_date, note, notified_level) VALUES
			('2025-07-01', 'too high', 250),
			('2025-07-02', 'negative', -3)
	`)
	require.NoError(t, err)

	rems, err := s.List()
	require.NoError(t, err)
	require.Len(t, rems, 2)
	assert.Equal(t, urgency.WithinDay, rems[0].NotifiedLevel, "high level clamps to the max")
	assert.Equal(t, urgency.None, rems[1].NotifiedLevel, "negative level clamps to none")
}

func TestListRejectsMalformedDate(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.db.Exec(`
		INSERT INTO reminders (due_date, note, notified_level)
		VALUES ('not-a-date', 'broken row', 0)
	`)
	require.NoError(t, err)

	_, err = s.List()
	assert.Error(t, err, "a malformed due date should fail the whole read")
}

func TestOpenPathMigratesOldSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")

	// Build a database predating the notified_level column.
	old, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = old.Exec(`
		CREATE TABLE reminders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			due_date TEXT NOT NULL,
			note TEXT NOT NULL
		);
		INSERT INTO reminders (due_date, note) VALUES ('2025-07-01', 'carried over');
	`)
	require.NoError(t, err)
	require.NoError(t, old.Close())

	s, err := OpenPath(path)
	require.NoError(t, err)
	defer s.Close()

	rems, err := s.List()
	require.NoError(t, err)
	require.Len(t, rems, 1)
	assert.Equal(t, "carried over", rems[0].Note)
	assert.Equal(t, urgency.None, rems[0].NotifiedLevel)
}
