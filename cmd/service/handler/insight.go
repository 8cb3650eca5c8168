package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	v1 "github.com/selfjournal/journal-api/internal/logic/v1"
	"github.com/selfjournal/journal-api/internal/response"
	"github.com/selfjournal/journal-api/pkg/types"
	"github.com/selfjournal/journal-api/pkg/utils"
)

type WeeklyInsightsRequest struct {
	Entries []types.JournalEntry `json:"entries"`
}

func (s *HttpSrv) WeeklyInsights(c *gin.Context) {
	var req WeeklyInsightsRequest
	// An empty body means "summarize whatever the server has stored".
	if err := utils.BindArgsWithGin(c, &req); err != nil && !errors.Is(err, io.EOF) {
		response.APIError(c, err)
		return
	}

	result := v1.NewInsightLogic(c, s.Core).WeeklyInsights(req.Entries)

	response.APISuccess(c, result)
}
