package insight

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/selfjournal/journal-api/pkg/types"
	"github.com/selfjournal/journal-api/pkg/utils"
)

var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"to": true, "of": true, "in": true, "on": true, "for": true, "with": true,
	"at": true, "by": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "it": true, "that": true, "this": true, "as": true,
	"i": true, "you": true, "we": true, "my": true, "your": true, "our": true,
	"me": true, "us": true, "they": true, "them": true, "he": true, "she": true,
	"his": true, "her": true, "today": true, "week": true, "really": true,
	"just": true, "like": true, "got": true, "get": true,
}

// Lexicon polarity is intentionally lightweight; entries written in other
// languages are skipped rather than mis-scored.
var posWords = map[string]bool{
	"calm": true, "good": true, "great": true, "proud": true, "excited": true,
	"happy": true, "relieved": true, "grateful": true, "energized": true,
	"hopeful": true, "confident": true, "peaceful": true, "motivated": true,
}

var negWords = map[string]bool{
	"tired": true, "anxious": true, "worried": true, "sad": true, "angry": true,
	"overwhelmed": true, "stressed": true, "upset": true, "frustrated": true,
	"guilty": true, "lonely": true, "burnt": true, "burned": true,
}

var wordRe = regexp.MustCompile(`[a-zA-Z']+`)

type phrasePattern struct {
	re      *regexp.Regexp
	display string
}

var phrasePatterns = []phrasePattern{
	{regexp.MustCompile(`\bi feel\b`), "“I feel…”"},
	{regexp.MustCompile(`\bi'm worried\b`), "“I’m worried…”"},
	{regexp.MustCompile(`\bi am worried\b`), "“I’m worried…”"},
	{regexp.MustCompile(`\bi need\b`), "“I need…”"},
	{regexp.MustCompile(`\bi want\b`), "“I want…”"},
	{regexp.MustCompile(`\bi can't\b`), "“I can’t…”"},
	{regexp.MustCompile(`\bi cannot\b`), "“I can’t…”"},
	{regexp.MustCompile(`\bi should\b`), "“I should…”"},
	{regexp.MustCompile(`\bi'm afraid\b`), "“I’m afraid…”"},
	{regexp.MustCompile(`\bi am afraid\b`), "“I’m afraid…”"},
}

const (
	maxThemes           = 5
	maxRepeatingPhrases = 3
	maxThemeDetails     = 3
	themeDetailRunes    = 120
)

type Signals struct {
	Themes           []types.ThemeStat
	ThemeKeywords    []string
	Polarity         string
	PolarityScore    int
	RepeatingPhrases []string
}

// Tokenize lowercases text and keeps words of 3+ letters that are not
// stopwords.
func Tokenize(text string) []string {
	words := wordRe.FindAllString(strings.ToLower(text), -1)
	return lo.Filter(words, func(w string, _ int) bool {
		return !stopwords[w] && len(w) >= 3
	})
}

// PolarityScore counts +1 for each positive lexicon hit and -1 for each
// negative one.
func PolarityScore(text string) int {
	score := 0
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if posWords[w] {
			score++
		}
		if negWords[w] {
			score--
		}
	}
	return score
}

func LabelPolarity(total int) string {
	switch {
	case total >= 2:
		return types.POLARITY_POSITIVE
	case total <= -2:
		return types.POLARITY_NEGATIVE
	default:
		return types.POLARITY_NEUTRAL
	}
}

// RepeatingPhrases returns the most frequent self-talk phrases found across
// responses, at most three, in display form.
func RepeatingPhrases(responses []string) []string {
	joined := strings.ToLower(strings.Join(responses, "\n"))

	type hit struct {
		display string
		count   int
		order   int
	}
	var hits []hit
	for i, p := range phrasePatterns {
		if n := len(p.re.FindAllString(joined, -1)); n > 0 {
			hits = append(hits, hit{display: p.display, count: n, order: i})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].count != hits[j].count {
			return hits[i].count > hits[j].count
		}
		return hits[i].order < hits[j].order
	})

	phrases := lo.Uniq(lo.Map(hits, func(h hit, _ int) string { return h.display }))
	if len(phrases) > maxRepeatingPhrases {
		phrases = phrases[:maxRepeatingPhrases]
	}
	return phrases
}

// ExtractSignals computes the weekly signals over a batch of entries: top
// theme keywords, lexicon polarity and repeating phrases. Pure; entries are
// not modified.
func ExtractSignals(entries []types.JournalEntry) Signals {
	var (
		tokens        []string
		polarityTotal int
		responses     []string
	)

	for _, entry := range entries {
		text := strings.TrimSpace(entry.Prompt + " " + entry.Response)
		responses = append(responses, strings.TrimSpace(entry.Response))

		tokens = append(tokens, Tokenize(text)...)
		if utils.IsEnglish(text) {
			polarityTotal += PolarityScore(text)
		}
	}

	keywords := topTokens(tokens, maxThemes)

	return Signals{
		Themes:           themeStats(keywords, tokens, responses),
		ThemeKeywords:    keywords,
		Polarity:         LabelPolarity(polarityTotal),
		PolarityScore:    polarityTotal,
		RepeatingPhrases: RepeatingPhrases(responses),
	}
}

// topTokens ranks by frequency; ties keep first-appearance order so the
// result is deterministic.
func topTokens(tokens []string, n int) []string {
	counts := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		if _, ok := counts[tok]; !ok {
			firstSeen[tok] = i
		}
		counts[tok]++
	}

	ranked := lo.Keys(counts)
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func themeStats(keywords []string, tokens []string, responses []string) []types.ThemeStat {
	counts := lo.CountValues(tokens)

	stats := make([]types.ThemeStat, 0, len(keywords))
	for _, keyword := range keywords {
		percent := 0.0
		if len(tokens) > 0 {
			percent = math.Round(float64(counts[keyword])*1000/float64(len(tokens))) / 10
		}

		var details []string
		for _, response := range responses {
			if len(details) == maxThemeDetails {
				break
			}
			if strings.Contains(strings.ToLower(response), keyword) {
				details = append(details, utils.TruncateRunes(response, themeDetailRunes))
			}
		}

		stats = append(stats, types.ThemeStat{
			Theme:   keyword,
			Percent: percent,
			Details: details,
		})
	}
	return stats
}
