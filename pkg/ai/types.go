package ai

import (
	"context"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

type ModelName struct {
	ChatModel string
}

// ReportAI turns a prepared system prompt and payload into the weekly
// narrative report.
type ReportAI interface {
	WeeklyReport(ctx context.Context, system, payload string) (GenerateResponse, error)
}

type GenerateResponse struct {
	Received     []string `json:"received"`
	FinishReason string
	TokenCount   int32
}

func (r GenerateResponse) Message() string {
	b := strings.Builder{}

	for i, item := range r.Received {
		if i != 0 {
			b.WriteString("\n")
		}
		b.WriteString(item)
	}

	return b.String()
}

// NumTokensText counts model tokens in text, falling back to the cl100k_base
// encoding for models tiktoken does not know about.
func NumTokensText(text, model string) (int, error) {
	tkm, err := tiktoken.EncodingForModel(model)
	if err != nil {
		if tkm, err = tiktoken.GetEncoding("cl100k_base"); err != nil {
			return 0, err
		}
	}
	return len(tkm.Encode(text, nil, nil)), nil
}
