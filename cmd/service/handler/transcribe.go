package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/selfjournal/journal-api/internal/logic/v1"
	"github.com/selfjournal/journal-api/internal/response"
	"github.com/selfjournal/journal-api/pkg/errors"
	"github.com/selfjournal/journal-api/pkg/i18n"
)

func (s *HttpSrv) Transcribe(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		response.APIError(c, errors.New("TranscribeHandler.FormFile", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.APIError(c, errors.New("TranscribeHandler.Open", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest))
		return
	}
	defer file.Close()

	text, err := v1.NewTranscribeLogic(c, s.Core).Transcribe(fileHeader.Filename, file, c.PostForm("language_code"))
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, gin.H{
		"text": text,
	})
}
