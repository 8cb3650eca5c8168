package v1

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/selfjournal/journal-api/internal/core"
	"github.com/selfjournal/journal-api/internal/store/entrystore"
	"github.com/selfjournal/journal-api/pkg/errors"
	"github.com/selfjournal/journal-api/pkg/i18n"
	"github.com/selfjournal/journal-api/pkg/types"
)

type EntryLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewEntryLogic(ctx context.Context, core *core.Core) *EntryLogic {
	return &EntryLogic{
		ctx:  ctx,
		core: core,
	}
}

// CreateEntry validates and appends a journal entry. A zero timestamp takes
// the server clock; a caller-provided one is kept as-is so offline clients
// can backfill.
func (l *EntryLogic) CreateEntry(prompt, response string, timestamp int64) (types.JournalEntry, error) {
	if utf8.RuneCountInString(strings.TrimSpace(response)) < types.MIN_RESPONSE_LENGTH {
		return types.JournalEntry{}, errors.New("EntryLogic.CreateEntry.response.length", i18n.ERROR_RESPONSE_TOO_SHORT, nil).Code(http.StatusBadRequest)
	}

	if timestamp == 0 {
		timestamp = time.Now().UnixMilli()
	}

	entry := types.JournalEntry{
		Prompt:    strings.TrimSpace(prompt),
		Response:  response,
		Timestamp: timestamp,
	}

	if err := l.core.Store().Append(l.ctx, entry); err != nil {
		return types.JournalEntry{}, errors.New("EntryLogic.CreateEntry.Store.Append", i18n.ERROR_INTERNAL, err)
	}

	return entry, nil
}

func (l *EntryLogic) ListEntries() []types.JournalEntry {
	return l.core.Store().LoadAll(l.ctx)
}

// RecentEntries returns the trailing-week slice of the journal at the server
// clock.
func (l *EntryLogic) RecentEntries() []types.JournalEntry {
	return entrystore.SelectRecent(l.core.Store().LoadAll(l.ctx), time.Now(), entrystore.DEFAULT_WINDOW)
}
