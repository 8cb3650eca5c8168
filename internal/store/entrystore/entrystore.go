package entrystore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/selfjournal/journal-api/internal/store/kvstore"
	"github.com/selfjournal/journal-api/pkg/types"
)

// DEFAULT_WINDOW is the trailing window the report view asks for.
const DEFAULT_WINDOW = 7 * 24 * time.Hour

// EntryStore is the append-only journal log over a single storage slot. The
// slot holds the whole journal as one JSON array; append is read-modify-write
// and relies on there being a single writer, as the original client did.
type EntryStore struct {
	kv  kvstore.Store
	key string
}

func NewEntryStore(kv kvstore.Store) *EntryStore {
	return &EntryStore{
		kv:  kv,
		key: types.ENTRIES_STORAGE_KEY,
	}
}

// LoadAll reads the journal. A missing slot, an unreadable backend or a
// corrupted value all read as an empty journal; this store favors
// availability over surfacing read errors.
func (s *EntryStore) LoadAll(ctx context.Context) []types.JournalEntry {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		slog.Warn("journal slot read failed, treating as empty", slog.String("key", s.key), slog.String("error", err.Error()))
		return []types.JournalEntry{}
	}
	return decodeEntries(raw, ok, s.key)
}

// Append writes the journal back with entry at the end. Unlike LoadAll, a
// failing backend surfaces here: a lost write must not look like success.
// A corrupted slot still degrades to an empty journal before the append.
func (s *EntryStore) Append(ctx context.Context, entry types.JournalEntry) error {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return err
	}

	entries := append(decodeEntries(raw, ok, s.key), entry)
	encoded, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key, string(encoded))
}

func decodeEntries(raw string, ok bool, key string) []types.JournalEntry {
	if !ok || raw == "" {
		return []types.JournalEntry{}
	}
	var entries []types.JournalEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		slog.Warn("journal slot corrupted, treating as empty", slog.String("key", key), slog.String("error", err.Error()))
		return []types.JournalEntry{}
	}
	if entries == nil {
		// "null" parses fine but is not a journal
		return []types.JournalEntry{}
	}
	return entries
}

// SelectRecent filters entries down to those whose timestamp falls within the
// trailing window ending at now. The lower bound is inclusive and there is no
// upper bound, so future-dated entries stay in. Order is preserved and the
// input is not modified.
func SelectRecent(entries []types.JournalEntry, now time.Time, window time.Duration) []types.JournalEntry {
	cutoff := now.UnixMilli() - window.Milliseconds()
	return lo.Filter(entries, func(entry types.JournalEntry, _ int) bool {
		return entry.Timestamp >= cutoff
	})
}
