package store

import (
	"context"

	"github.com/selfjournal/journal-api/pkg/types"
)

// JournalEntryStore is the append-only journal log. Entries are immutable and
// keep insertion order; there is no update or delete.
type JournalEntryStore interface {
	// LoadAll never fails: a missing or unreadable slot reads as an empty
	// journal.
	LoadAll(ctx context.Context) []types.JournalEntry
	Append(ctx context.Context, entry types.JournalEntry) error
}
