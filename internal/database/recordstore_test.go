package database

import (
	"testing"

	"github.com/qattan/daily-post-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(db dbConn) *RecordStore {
	return NewRecordStore(db, Schema{
		Table:        "daily_posts",
		KeyColumns:   []string{"server", "post_type"},
		ValueColumns: []string{"channel", "daily_time", "last_send_date", "use_arabic"},
		Defaults:     []any{"", "", domain.NeverSent, int64(0)},
	})
}

func TestRecordStore_GetNotFound(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	store := testStore(db.conn)

	lookup := store.Get("T123", "dua")
	assert.Equal(t, domain.LookupNotFound, lookup.Status)
	assert.Equal(t, []any{"", "", domain.NeverSent, int64(0)}, lookup.Values)
}

func TestRecordStore_UpsertThenGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	store := testStore(db.conn)

	err := store.Upsert(
		[]any{"T123", "dua"},
		[]any{"C123", "14:00", domain.NeverSent, int64(1)},
	)
	require.NoError(t, err)

	lookup := store.Get("T123", "dua")
	require.Equal(t, domain.LookupFound, lookup.Status)
	assert.Equal(t, "C123", asString(lookup.Values[0]))
	assert.Equal(t, "14:00", asString(lookup.Values[1]))
	assert.Equal(t, domain.NeverSent, asString(lookup.Values[2]))
	assert.True(t, asBool(lookup.Values[3]))
}

func TestRecordStore_GetUnavailable(t *testing.T) {
	db := SetupTestDB(t)
	store := testStore(db.conn)
	require.NoError(t, db.Close())

	lookup := store.Get("T123", "dua")
	assert.Equal(t, domain.LookupUnavailable, lookup.Status)
	assert.Equal(t, []any{"", "", domain.NeverSent, int64(0)}, lookup.Values)
}

func TestRecordStore_UpsertArgumentMismatch(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	store := testStore(db.conn)

	err := store.Upsert([]any{"T123"}, []any{"C123"})
	require.Error(t, err)
}

func TestRecordStore_DeleteMissingIsNoop(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	store := testStore(db.conn)

	require.NoError(t, store.Delete("T123", "dua"))
}

func TestRecordStore_DefaultsAreCopied(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	store := testStore(db.conn)

	first := store.Get("T123", "dua")
	first.Values[0] = "mutated"

	second := store.Get("T123", "dua")
	assert.Equal(t, "", second.Values[0], "defaults must not be shared between lookups")
}
