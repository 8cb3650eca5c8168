package types

const (
	POLARITY_POSITIVE = "positive"
	POLARITY_NEUTRAL  = "neutral"
	POLARITY_NEGATIVE = "negative"
)

type ThemeStat struct {
	Theme   string   `json:"theme"`
	Percent float64  `json:"percent"`
	Details []string `json:"details"`
}

type WeeklyInsights struct {
	Themes           []ThemeStat `json:"themes"`
	Polarity         string      `json:"polarity"`
	RepeatingPhrases []string    `json:"repeating_phrases"`
	Report           string      `json:"report"`
	UsedAI           bool        `json:"used_ai"`
	AIError          string      `json:"ai_error,omitempty"`
}
