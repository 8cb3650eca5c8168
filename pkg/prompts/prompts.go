package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/selfjournal/journal-api/pkg/types"
)

//go:embed data/prompts.json
var defaultBank embed.FS

// CATEGORIES rotates daily in this order.
var CATEGORIES = []string{"values", "emotions", "identity", "growth", "relationships"}

type bankItem struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
}

// Bank holds the validated prompt collection, keyed by category.
type Bank struct {
	byCategory map[string][]bankItem
}

// MustLoadBank reads the prompt bank from path, or the embedded default when
// path is empty. An invalid bank is a startup failure.
func MustLoadBank(path string) *Bank {
	var (
		raw []byte
		err error
	)
	if path == "" {
		raw, err = defaultBank.ReadFile("data/prompts.json")
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		panic(fmt.Sprintf("prompts: read bank: %v", err))
	}

	bank, err := ParseBank(raw)
	if err != nil {
		panic(fmt.Sprintf("prompts: %v", err))
	}
	return bank
}

func ParseBank(raw []byte) (*Bank, error) {
	var data map[string][]bankItem
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}

	byCategory := make(map[string][]bankItem, len(CATEGORIES))
	for _, category := range CATEGORIES {
		items := data[category]
		if len(items) == 0 {
			return nil, fmt.Errorf("category %q missing or empty", category)
		}
		for _, item := range items {
			if item.ID == "" || item.Prompt == "" {
				return nil, fmt.Errorf("invalid prompt item in category %q", category)
			}
		}
		byCategory[category] = items
	}

	return &Bank{byCategory: byCategory}, nil
}

// ordinalOffset converts unix days to proleptic-Gregorian day ordinals
// (0001-01-01 is day 1), which the rotation has always been keyed on.
const ordinalOffset = 719163

func dayOrdinal(t time.Time) int {
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return int(midnight.Unix()/86400) + ordinalOffset
}

// PickForDate returns the prompt for the given date. The pick is stable for
// the whole day: the category rotates daily, and each time a category comes
// around again the next prompt inside it is chosen.
func (b *Bank) PickForDate(t time.Time) types.PromptCard {
	ordinal := dayOrdinal(t)
	category := CATEGORIES[ordinal%len(CATEGORIES)]

	items := b.byCategory[category]
	cycle := ordinal / len(CATEGORIES)
	chosen := items[cycle%len(items)]

	return types.PromptCard{
		ID:       chosen.ID,
		Category: category,
		Prompt:   chosen.Prompt,
	}
}

// PickForToday is PickForDate at the server's current date.
func (b *Bank) PickForToday() types.PromptCard {
	return b.PickForDate(time.Now())
}
