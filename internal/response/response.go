package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/selfjournal/journal-api/pkg/errors"
	"github.com/selfjournal/journal-api/pkg/i18n"
)

const (
	LOCALIZER_CONTEXT_KEY = "__response_localizer"
	LANGUAGE_CONTEXT_KEY  = "__response_language"
)

// ProvideResponseLocalizer stores the localizer plus the request language so
// APIError can render user-facing messages.
func ProvideResponseLocalizer(l *i18n.Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LOCALIZER_CONTEXT_KEY, l)
		c.Set(LANGUAGE_CONTEXT_KEY, matchLanguage(c.Request.Header.Get("Accept-Language")))
	}
}

// supported order mirrors ALLOW_LANG, default language first.
var (
	supportedLangs = []string{"en", "zh-CN"}
	langMatcher    = language.NewMatcher([]language.Tag{
		language.English,
		language.SimplifiedChinese,
	})
)

func matchLanguage(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return i18n.DEFAULT_LANG
	}
	_, index, _ := langMatcher.Match(tags...)
	return supportedLangs[index]
}

// APISuccess writes data as the response body. Gateway endpoints keep their
// documented body shapes, so there is no envelope.
func APISuccess(c *gin.Context, data any) {
	if data == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, data)
}

func APIError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	key := i18n.ERROR_INTERNAL

	if e, ok := err.(*errors.Error); ok {
		status = e.StatusCode()
		key = e.Key()
		slog.Error("api error",
			slog.String("trace", e.TracePath()),
			slog.Int("status", status),
			slog.String("path", c.Request.URL.Path),
			slog.String("error", e.Error()))
	} else if err != nil {
		slog.Error("api error", slog.String("path", c.Request.URL.Path), slog.String("error", err.Error()))
	}

	message := key
	if l, ok := c.Get(LOCALIZER_CONTEXT_KEY); ok {
		lang := c.GetString(LANGUAGE_CONTEXT_KEY)
		message = l.(*i18n.Localizer).Get(lang, key)
	}

	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
