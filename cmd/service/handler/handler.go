package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/selfjournal/journal-api/internal/core"
	"github.com/selfjournal/journal-api/internal/response"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}

func (s *HttpSrv) Health(c *gin.Context) {
	response.APISuccess(c, gin.H{"status": "ok"})
}
