package utils

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/selfjournal/journal-api/pkg/errors"
	"github.com/selfjournal/journal-api/pkg/i18n"
)

func BindArgsWithGin(c *gin.Context, req interface{}) error {
	err := c.ShouldBindWith(req, binding.Default(c.Request.Method, c.ContentType()))
	if err != nil {
		return errors.New(fmt.Sprintf("Gin.ShouldBindWith.%s.%s", c.Request.Method, c.Request.URL.Path), i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}
	return nil
}

// WhatLang reports the human-readable name of the language content is
// written in, e.g. "English".
func WhatLang(content string) string {
	info := whatlanggo.Detect(content)
	return info.Lang.String()
}

func IsEnglish(content string) bool {
	return whatlanggo.Detect(content).Lang == whatlanggo.Eng
}

// TruncateRunes shortens s to at most n runes, appending an ellipsis when
// anything was cut.
func TruncateRunes(s string, n int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= n {
		return string(runes)
	}
	return strings.TrimRight(string(runes[:n]), " ") + "…"
}
