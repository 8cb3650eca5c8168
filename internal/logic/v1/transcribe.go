package v1

import (
	"context"
	"io"
	"net/http"

	"github.com/selfjournal/journal-api/internal/core"
	"github.com/selfjournal/journal-api/pkg/errors"
	"github.com/selfjournal/journal-api/pkg/i18n"
)

type TranscribeLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewTranscribeLogic(ctx context.Context, core *core.Core) *TranscribeLogic {
	return &TranscribeLogic{
		ctx:  ctx,
		core: core,
	}
}

// Transcribe forwards audio to the speech-to-text gateway. One shot, no
// retry; a user who cares presses the retry button.
func (l *TranscribeLogic) Transcribe(filename string, audio io.Reader, languageCode string) (string, error) {
	client := l.core.STT()
	if client == nil {
		return "", errors.New("TranscribeLogic.Transcribe.STT.nil", i18n.ERROR_UNSUPPORTED_FEATURE, nil).Code(http.StatusNotImplemented)
	}

	text, err := client.Transcribe(l.ctx, filename, audio, languageCode)
	if err != nil {
		return "", errors.New("TranscribeLogic.Transcribe.STT.Transcribe", i18n.ERROR_GATEWAY, err).Code(http.StatusBadGateway)
	}
	return text, nil
}
