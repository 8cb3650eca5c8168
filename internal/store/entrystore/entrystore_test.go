package entrystore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfjournal/journal-api/internal/store/entrystore"
	"github.com/selfjournal/journal-api/internal/store/kvstore"
	"github.com/selfjournal/journal-api/pkg/types"
)

var ctx = context.Background()

func setupStore(t *testing.T) (*entrystore.EntryStore, kvstore.Store) {
	t.Helper()
	kv := kvstore.NewMemoryStore()
	return entrystore.NewEntryStore(kv), kv
}

func TestLoadAllEmptySlot(t *testing.T) {
	store, _ := setupStore(t)

	entries := store.LoadAll(ctx)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}

func TestLoadAllCorruptedSlot(t *testing.T) {
	store, kv := setupStore(t)

	for _, raw := range []string{"not json at all", `{"a":1}`, `"just a string"`, "null", "12345"} {
		require.NoError(t, kv.Set(ctx, types.ENTRIES_STORAGE_KEY, raw))
		entries := store.LoadAll(ctx)
		assert.Empty(t, entries, "raw=%q", raw)
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	store, _ := setupStore(t)

	first := types.JournalEntry{Prompt: "p1", Response: "slept badly but kept going", Timestamp: 100}
	second := types.JournalEntry{Prompt: "p2", Response: "today felt a lot lighter", Timestamp: 200}

	require.NoError(t, store.Append(ctx, first))
	require.NoError(t, store.Append(ctx, second))

	entries := store.LoadAll(ctx)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])
}

func TestAppendAfterCorruption(t *testing.T) {
	store, kv := setupStore(t)

	require.NoError(t, kv.Set(ctx, types.ENTRIES_STORAGE_KEY, "{{{"))

	entry := types.JournalEntry{Prompt: "p", Response: "fresh start after bad data", Timestamp: 1}
	require.NoError(t, store.Append(ctx, entry))

	entries := store.LoadAll(ctx)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestSelectRecentBoundary(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	window := entrystore.DEFAULT_WINDOW
	cutoff := now.UnixMilli() - window.Milliseconds()

	entries := []types.JournalEntry{
		{Response: "exactly on the cutoff", Timestamp: cutoff},
		{Response: "one ms too old", Timestamp: cutoff - 1},
		{Response: "future dated", Timestamp: now.UnixMilli() + 1000},
	}

	got := entrystore.SelectRecent(entries, now, window)
	require.Len(t, got, 2)
	assert.Equal(t, "exactly on the cutoff", got[0].Response)
	assert.Equal(t, "future dated", got[1].Response)
}

func TestSelectRecentKeepsInsertionOrder(t *testing.T) {
	now := time.Now()
	day := 24 * time.Hour

	entries := []types.JournalEntry{
		{Response: "yesterday", Timestamp: now.Add(-1 * day).UnixMilli()},
		{Response: "last week", Timestamp: now.Add(-8 * day).UnixMilli()},
		{Response: "three days ago", Timestamp: now.Add(-3 * day).UnixMilli()},
	}

	got := entrystore.SelectRecent(entries, now, entrystore.DEFAULT_WINDOW)
	require.Len(t, got, 2)
	assert.Equal(t, "yesterday", got[0].Response)
	assert.Equal(t, "three days ago", got[1].Response)

	// input untouched
	assert.Len(t, entries, 3)
}

func TestSelectRecentIdempotent(t *testing.T) {
	now := time.Now()
	entries := []types.JournalEntry{
		{Response: "in window a", Timestamp: now.Add(-2 * time.Hour).UnixMilli()},
		{Response: "in window b", Timestamp: now.Add(-30 * time.Minute).UnixMilli()},
	}

	once := entrystore.SelectRecent(entries, now, entrystore.DEFAULT_WINDOW)
	twice := entrystore.SelectRecent(once, now, entrystore.DEFAULT_WINDOW)
	assert.Equal(t, once, twice)
}

func TestSelectRecentEmpty(t *testing.T) {
	got := entrystore.SelectRecent(nil, time.Now(), entrystore.DEFAULT_WINDOW)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
