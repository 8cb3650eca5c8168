package weekly

import (
	"fmt"
	"strings"

	"github.com/selfjournal/journal-api/pkg/ai"
	"github.com/selfjournal/journal-api/pkg/insight"
	"github.com/selfjournal/journal-api/pkg/types"
	"github.com/selfjournal/journal-api/pkg/utils"
)

const WEEKLY_REPORT_PROMPT_EN = `You are a supportive self-discovery coach writing a WEEKLY reflection report.
The user is NOT an experienced journaler. Keep it warm, specific, and non-judgmental.
Do NOT diagnose or mention therapy. Do NOT mention that you are an AI.

You MUST produce a weekly summary that includes:
1) Most common themes (keywords)
2) Emotional polarity label: positive / neutral / negative
3) Repeating phrases (e.g., “I feel…”, “I’m worried…”)
4) A short narrative summary similar to:
   “This week, you wrote most about X, Y, Z. You felt most energized when talking about A and B.”

Output format (exact headings):
Themes: <comma-separated keywords, 3–5 items>
Polarity: <positive|neutral|negative>
Repeating phrases: <comma-separated phrases, 0–3 items or 'None'>
Summary: <2–4 sentences, concise, human, encouraging>

Constraints:
- Total output under 120 words.
- Avoid clichés. Avoid excessive cheerleading.
- If entries are sparse, acknowledge lightly and still provide a helpful summary.
`

const (
	maxSnippetEntries = 14
	maxSnippetRunes   = 280
	maxPayloadTokens  = 3000
)

// BuildPayload renders the computed signals plus short entry snippets into
// the user message for the report model. Snippets are capped to keep token
// usage predictable; when the rendered payload still exceeds the token
// budget, snippets are dropped from the end.
func BuildPayload(signals insight.Signals, entries []types.JournalEntry, model string) string {
	snippets := buildSnippets(entries)

	payload := render(signals, entries, snippets)
	for len(snippets) > 0 {
		n, err := ai.NumTokensText(payload, model)
		if err != nil || n <= maxPayloadTokens {
			break
		}
		snippets = snippets[:len(snippets)-1]
		payload = render(signals, entries, snippets)
	}
	return payload
}

func buildSnippets(entries []types.JournalEntry) []string {
	var snippets []string
	for _, entry := range entries {
		if len(snippets) == maxSnippetEntries {
			break
		}
		response := strings.TrimSpace(entry.Response)
		if response == "" {
			continue
		}
		snippets = append(snippets, fmt.Sprintf("%d. Prompt: %s\n   Response: %s",
			len(snippets)+1, strings.TrimSpace(entry.Prompt), utils.TruncateRunes(response, maxSnippetRunes)))
	}
	return snippets
}

func render(signals insight.Signals, entries []types.JournalEntry, snippets []string) string {
	b := strings.Builder{}
	b.WriteString("Weekly signals (computed):\n")
	fmt.Fprintf(&b, "- themes: %v\n", signals.ThemeKeywords)
	fmt.Fprintf(&b, "- polarity: %s (score=%d)\n", signals.Polarity, signals.PolarityScore)
	fmt.Fprintf(&b, "- repeating_phrases: %v\n", signals.RepeatingPhrases)
	if len(entries) > 0 {
		fmt.Fprintf(&b, "- entries_language: %s\n", utils.WhatLang(joinResponses(entries)))
	}
	b.WriteString("\nEntries (snippets):\n")
	if len(snippets) == 0 {
		b.WriteString("(No usable entries provided)")
	} else {
		b.WriteString(strings.Join(snippets, "\n"))
	}
	return b.String()
}

func joinResponses(entries []types.JournalEntry) string {
	b := strings.Builder{}
	for _, entry := range entries {
		b.WriteString(entry.Response)
		b.WriteString("\n")
	}
	return b.String()
}

// BuildFallbackReport renders the template report used whenever no model is
// configured or the model call fails. The endpoint always has something to
// say.
func BuildFallbackReport(signals insight.Signals) string {
	themeStr := "a few recurring topics"
	if len(signals.ThemeKeywords) > 0 {
		n := len(signals.ThemeKeywords)
		if n > 3 {
			n = 3
		}
		themeStr = strings.Join(signals.ThemeKeywords[:n], ", ")
	}

	themesLine := "None"
	if len(signals.ThemeKeywords) > 0 {
		themesLine = strings.Join(signals.ThemeKeywords, ", ")
	}

	repeatsLine := "None"
	if len(signals.RepeatingPhrases) > 0 {
		repeatsLine = strings.Join(signals.RepeatingPhrases, ", ")
	}

	b := strings.Builder{}
	fmt.Fprintf(&b, "Themes: %s\n", themesLine)
	fmt.Fprintf(&b, "Polarity: %s\n", signals.Polarity)
	fmt.Fprintf(&b, "Repeating phrases: %s\n", repeatsLine)
	fmt.Fprintf(&b, "Summary: This week, you wrote most about %s. Overall tone: %s.", themeStr, signals.Polarity)
	if len(signals.RepeatingPhrases) > 0 {
		fmt.Fprintf(&b, " Common phrasing included %s.", repeatsLine)
	}
	return b.String()
}
