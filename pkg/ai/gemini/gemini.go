package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/selfjournal/journal-api/pkg/ai"
)

const (
	NAME = "gemini"
)

type Driver struct {
	client *genai.Client
	model  ai.ModelName
}

func New(ctx context.Context, token string, model ai.ModelName) (*Driver, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(token))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	if model.ChatModel == "" {
		model.ChatModel = "gemini-2.5-flash"
	}

	return &Driver{
		client: client,
		model:  model,
	}, nil
}

func (s *Driver) Close() error {
	return s.client.Close()
}

func (s *Driver) WeeklyReport(ctx context.Context, system, payload string) (ai.GenerateResponse, error) {
	slog.Debug("WeeklyReport", slog.String("driver", NAME), slog.String("model", s.model.ChatModel))

	model := s.client.GenerativeModel(s.model.ChatModel)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(system)},
	}
	model.SetTemperature(0.4)
	model.SetMaxOutputTokens(220)

	resp, err := model.GenerateContent(ctx, genai.Text(payload))
	if err != nil {
		return ai.GenerateResponse{}, fmt.Errorf("GenerateContent error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ai.GenerateResponse{}, fmt.Errorf("GenerateContent returned no candidates")
	}

	candidate := resp.Candidates[0]
	var received []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			received = append(received, string(text))
		}
	}

	result := ai.GenerateResponse{
		Received:     received,
		FinishReason: candidate.FinishReason.String(),
	}
	if resp.UsageMetadata != nil {
		result.TokenCount = resp.UsageMetadata.TotalTokenCount
	}
	return result, nil
}
