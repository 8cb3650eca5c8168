package v1_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfjournal/journal-api/internal/core"
	v1 "github.com/selfjournal/journal-api/internal/logic/v1"
	"github.com/selfjournal/journal-api/internal/store/kvstore"
	"github.com/selfjournal/journal-api/pkg/errors"
	"github.com/selfjournal/journal-api/pkg/types"
)

var ctx = context.Background()

func setupCore() *core.Core {
	return core.MustSetupCore(core.CoreConfig{
		Store: kvstore.Config{Driver: kvstore.DRIVER_MEMORY},
	})
}

func TestCreateEntryTooShort(t *testing.T) {
	logic := v1.NewEntryLogic(ctx, setupCore())

	_, err := logic.CreateEntry("prompt", "too short", 0)
	require.Error(t, err)

	e, ok := err.(*errors.Error)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, e.StatusCode())
}

func TestCreateEntryAssignsTimestamp(t *testing.T) {
	logic := v1.NewEntryLogic(ctx, setupCore())

	before := time.Now().UnixMilli()
	entry, err := logic.CreateEntry("prompt", "a response long enough to pass", 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, entry.Timestamp, before)
	assert.LessOrEqual(t, entry.Timestamp, time.Now().UnixMilli())
}

func TestCreateEntryKeepsClientTimestamp(t *testing.T) {
	logic := v1.NewEntryLogic(ctx, setupCore())

	entry, err := logic.CreateEntry("prompt", "written earlier while offline", 1234567890)
	require.NoError(t, err)
	assert.Equal(t, int64(1234567890), entry.Timestamp)
}

func TestCreateThenList(t *testing.T) {
	logic := v1.NewEntryLogic(ctx, setupCore())

	_, err := logic.CreateEntry("p1", "first entry of the evening", 100)
	require.NoError(t, err)
	_, err = logic.CreateEntry("p2", "second entry of the evening", 200)
	require.NoError(t, err)

	entries := logic.ListEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "p1", entries[0].Prompt)
	assert.Equal(t, "p2", entries[1].Prompt)
}

func TestRecentEntriesWindow(t *testing.T) {
	c := setupCore()
	logic := v1.NewEntryLogic(ctx, c)

	now := time.Now()
	day := 24 * time.Hour
	for _, offset := range []time.Duration{-1 * day, -8 * day, -3 * day} {
		_, err := logic.CreateEntry("p", "an entry about a normal day", now.Add(offset).UnixMilli())
		require.NoError(t, err)
	}

	recent := logic.RecentEntries()
	require.Len(t, recent, 2)
	assert.Equal(t, now.Add(-1*day).UnixMilli(), recent[0].Timestamp)
	assert.Equal(t, now.Add(-3*day).UnixMilli(), recent[1].Timestamp)
}

func TestPromptLogicToday(t *testing.T) {
	logic := v1.NewPromptLogic(ctx, setupCore())

	card := logic.TodayPrompt()
	assert.NotEmpty(t, card.ID)
	assert.NotEmpty(t, card.Category)
	assert.NotEmpty(t, card.Prompt)
	assert.Equal(t, card, logic.TodayPrompt())
}

func TestTranscribeNotConfigured(t *testing.T) {
	logic := v1.NewTranscribeLogic(ctx, setupCore())

	_, err := logic.Transcribe("a.webm", nil, "")
	require.Error(t, err)

	e, ok := err.(*errors.Error)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotImplemented, e.StatusCode())
}

func TestWeeklyInsightsEmptyStore(t *testing.T) {
	logic := v1.NewInsightLogic(ctx, setupCore())

	result := logic.WeeklyInsights(nil)
	assert.Empty(t, result.Themes)
	assert.NotNil(t, result.Themes)
	assert.Equal(t, types.POLARITY_NEUTRAL, result.Polarity)
	assert.False(t, result.UsedAI)
	assert.Contains(t, result.Report, "Themes: None")
}

func TestWeeklyInsightsFallsBackToStore(t *testing.T) {
	c := setupCore()
	entryLogic := v1.NewEntryLogic(ctx, c)

	_, err := entryLogic.CreateEntry("How was work?", "work again, nothing but work and deadlines at work", 0)
	require.NoError(t, err)

	result := v1.NewInsightLogic(ctx, c).WeeklyInsights(nil)
	require.NotEmpty(t, result.Themes)
	assert.Equal(t, "work", result.Themes[0].Theme)
	assert.False(t, result.UsedAI)
	assert.Contains(t, result.Report, "work")
}

func TestWeeklyInsightsUsesProvidedEntries(t *testing.T) {
	result := v1.NewInsightLogic(ctx, setupCore()).WeeklyInsights([]types.JournalEntry{
		{Prompt: "p", Response: "I felt calm and grateful and peaceful today", Timestamp: 1},
	})

	assert.Equal(t, types.POLARITY_POSITIVE, result.Polarity)
	assert.False(t, result.UsedAI)
	assert.Empty(t, result.AIError)
}
