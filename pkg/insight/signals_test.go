package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfjournal/journal-api/pkg/types"
)

func TestTokenizeDropsStopwordsAndShortWords(t *testing.T) {
	tokens := Tokenize("Today I was really proud of my work on the garden")
	assert.Equal(t, []string{"proud", "work", "garden"}, tokens)
}

func TestPolarityScore(t *testing.T) {
	assert.Equal(t, 2, PolarityScore("I felt calm and grateful"))
	assert.Equal(t, -2, PolarityScore("tired and overwhelmed again"))
	assert.Equal(t, 0, PolarityScore("calm but tired"))
}

func TestLabelPolarity(t *testing.T) {
	assert.Equal(t, types.POLARITY_POSITIVE, LabelPolarity(2))
	assert.Equal(t, types.POLARITY_NEGATIVE, LabelPolarity(-2))
	assert.Equal(t, types.POLARITY_NEUTRAL, LabelPolarity(1))
	assert.Equal(t, types.POLARITY_NEUTRAL, LabelPolarity(-1))
	assert.Equal(t, types.POLARITY_NEUTRAL, LabelPolarity(0))
}

func TestRepeatingPhrases(t *testing.T) {
	responses := []string{
		"I feel tired. I feel stuck. I need a break.",
		"I'm worried about work. I feel lost.",
	}

	phrases := RepeatingPhrases(responses)
	require.NotEmpty(t, phrases)
	assert.Equal(t, "“I feel…”", phrases[0])
	assert.LessOrEqual(t, len(phrases), 3)
}

func TestRepeatingPhrasesMergesVariants(t *testing.T) {
	phrases := RepeatingPhrases([]string{"I'm worried. I am worried. I am worried."})
	assert.Equal(t, []string{"“I’m worried…”"}, phrases)
}

func TestExtractSignalsEmpty(t *testing.T) {
	signals := ExtractSignals(nil)
	assert.Empty(t, signals.ThemeKeywords)
	assert.Empty(t, signals.Themes)
	assert.Empty(t, signals.RepeatingPhrases)
	assert.Equal(t, types.POLARITY_NEUTRAL, signals.Polarity)
}

func TestExtractSignalsThemes(t *testing.T) {
	entries := []types.JournalEntry{
		{Prompt: "How was work?", Response: "work work work, nothing but deadlines at work"},
		{Prompt: "How was your evening?", Response: "quiet evening, thinking about work again"},
	}

	signals := ExtractSignals(entries)
	require.NotEmpty(t, signals.ThemeKeywords)
	assert.Equal(t, "work", signals.ThemeKeywords[0])

	require.NotEmpty(t, signals.Themes)
	top := signals.Themes[0]
	assert.Equal(t, "work", top.Theme)
	assert.Greater(t, top.Percent, 0.0)
	assert.NotEmpty(t, top.Details)
	assert.LessOrEqual(t, len(top.Details), 3)
}

func TestExtractSignalsPolarityLabel(t *testing.T) {
	entries := []types.JournalEntry{
		{Prompt: "p", Response: "I felt calm and peaceful all morning, grateful for the quiet hours"},
	}

	signals := ExtractSignals(entries)
	assert.Equal(t, types.POLARITY_POSITIVE, signals.Polarity)
	assert.GreaterOrEqual(t, signals.PolarityScore, 2)
}

func TestExtractSignalsDeterministic(t *testing.T) {
	entries := []types.JournalEntry{
		{Prompt: "alpha beta", Response: "gamma delta epsilon words repeated words"},
		{Prompt: "beta gamma", Response: "delta epsilon words again"},
	}

	first := ExtractSignals(entries)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.ThemeKeywords, ExtractSignals(entries).ThemeKeywords)
	}
}
