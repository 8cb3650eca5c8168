package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/selfjournal/journal-api/internal/logic/v1"
	"github.com/selfjournal/journal-api/internal/response"
	"github.com/selfjournal/journal-api/pkg/utils"
)

type CreateEntryRequest struct {
	Prompt    string `json:"prompt" binding:"required"`
	Response  string `json:"response" binding:"required"`
	Timestamp int64  `json:"timestamp"`
}

func (s *HttpSrv) CreateEntry(c *gin.Context) {
	var (
		err error
		req CreateEntryRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	entry, err := v1.NewEntryLogic(c, s.Core).CreateEntry(req.Prompt, req.Response, req.Timestamp)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, gin.H{
		"entry": entry,
	})
}

func (s *HttpSrv) ListEntries(c *gin.Context) {
	entries := v1.NewEntryLogic(c, s.Core).ListEntries()

	response.APISuccess(c, gin.H{
		"entries": entries,
	})
}

func (s *HttpSrv) ListRecentEntries(c *gin.Context) {
	entries := v1.NewEntryLogic(c, s.Core).RecentEntries()

	response.APISuccess(c, gin.H{
		"entries": entries,
	})
}
