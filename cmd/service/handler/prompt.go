package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/selfjournal/journal-api/internal/logic/v1"
	"github.com/selfjournal/journal-api/internal/response"
)

func (s *HttpSrv) GetTodayPrompt(c *gin.Context) {
	card := v1.NewPromptLogic(c, s.Core).TodayPrompt()

	response.APISuccess(c, gin.H{
		"prompt": card,
	})
}
