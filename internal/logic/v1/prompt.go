package v1

import (
	"context"

	"github.com/selfjournal/journal-api/internal/core"
	"github.com/selfjournal/journal-api/pkg/types"
)

type PromptLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewPromptLogic(ctx context.Context, core *core.Core) *PromptLogic {
	return &PromptLogic{
		ctx:  ctx,
		core: core,
	}
}

// TodayPrompt is stable for the whole server day.
func (l *PromptLogic) TodayPrompt() types.PromptCard {
	return l.core.PromptBank().PickForToday()
}
