package openai

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/selfjournal/journal-api/pkg/ai"
)

const (
	NAME = "openai"
)

type Driver struct {
	client *openai.Client
	model  ai.ModelName
}

func New(token, proxy string, model ai.ModelName) *Driver {
	cfg := openai.DefaultConfig(token)
	if proxy != "" {
		cfg.BaseURL = proxy
	}

	if model.ChatModel == "" {
		model.ChatModel = openai.GPT4oMini
	}

	return &Driver{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (s *Driver) WeeklyReport(ctx context.Context, system, payload string) (ai.GenerateResponse, error) {
	slog.Debug("WeeklyReport", slog.String("driver", NAME), slog.String("model", s.model.ChatModel))

	req := openai.ChatCompletionRequest{
		Model: s.model.ChatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: payload,
			},
		},
		Temperature: 0.4,
		MaxTokens:   220,
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return ai.GenerateResponse{}, fmt.Errorf("Completion error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return ai.GenerateResponse{}, fmt.Errorf("Completion returned no choices")
	}

	choice := resp.Choices[0]
	return ai.GenerateResponse{
		Received:     []string{choice.Message.Content},
		FinishReason: string(choice.FinishReason),
		TokenCount:   int32(resp.Usage.TotalTokens),
	}, nil
}
