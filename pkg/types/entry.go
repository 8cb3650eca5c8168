package types

// ENTRIES_STORAGE_KEY is the single storage slot holding the serialized
// journal. Earlier clients wrote both "journal_entries" and "entries_v1";
// "entries_v1" is the canonical key.
const ENTRIES_STORAGE_KEY = "entries_v1"

// MIN_RESPONSE_LENGTH is the shortest response accepted at submission time.
const MIN_RESPONSE_LENGTH = 10

type JournalEntry struct {
	Prompt    string `json:"prompt"`
	Response  string `json:"response"`
	Timestamp int64  `json:"timestamp"` // milliseconds since epoch, set at creation
}
