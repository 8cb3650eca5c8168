package v1

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/selfjournal/journal-api/internal/core"
	"github.com/selfjournal/journal-api/pkg/ai/agents/weekly"
	"github.com/selfjournal/journal-api/pkg/insight"
	"github.com/selfjournal/journal-api/pkg/types"
)

const reportTimeout = time.Second * 60

type InsightLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewInsightLogic(ctx context.Context, core *core.Core) *InsightLogic {
	return &InsightLogic{
		ctx:  ctx,
		core: core,
	}
}

// WeeklyInsights computes signals over the given entries and asks the report
// model for the narrative. Clients that keep the journal on their own side
// send entries in the request; an empty batch falls back to the server-side
// store's trailing week. The call never fails on model trouble: the template
// report stands in and the error is carried in the result.
func (l *InsightLogic) WeeklyInsights(entries []types.JournalEntry) types.WeeklyInsights {
	if len(entries) == 0 {
		entries = NewEntryLogic(l.ctx, l.core).RecentEntries()
	}

	signals := insight.ExtractSignals(entries)

	result := types.WeeklyInsights{
		Themes:           signals.Themes,
		Polarity:         signals.Polarity,
		RepeatingPhrases: signals.RepeatingPhrases,
		Report:           weekly.BuildFallbackReport(signals),
	}
	if result.Themes == nil {
		result.Themes = []types.ThemeStat{}
	}
	if result.RepeatingPhrases == nil {
		result.RepeatingPhrases = []string{}
	}

	aiSrv := l.core.Srv().AI()
	if len(entries) == 0 || !aiSrv.Configured() {
		l.core.Metrics().CountAIReport("fallback")
		return result
	}

	ctx, cancel := context.WithTimeout(l.ctx, reportTimeout)
	defer cancel()

	payload := weekly.BuildPayload(signals, entries, aiSrv.ReportModel())
	resp, err := aiSrv.WeeklyReport(ctx, weekly.WEEKLY_REPORT_PROMPT_EN, payload)
	if err != nil {
		slog.Error("weekly report generation failed, using fallback", slog.String("error", err.Error()))
		result.AIError = err.Error()
		l.core.Metrics().CountAIReport("fallback_error")
		return result
	}

	if message := strings.TrimSpace(resp.Message()); message != "" {
		result.Report = message
		result.UsedAI = true
		l.core.Metrics().CountAIReport("model")
	} else {
		l.core.Metrics().CountAIReport("fallback")
	}
	return result
}
