package i18n

import (
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Localizer struct {
	bundle *goi18n.Bundle
}

// NewLocalizer builds a localizer limited to the given languages. Unknown
// languages fall back to DEFAULT_LANG.
func NewLocalizer(langs ...string) *Localizer {
	bundle := goi18n.NewBundle(language.English)

	bundle.AddMessages(language.English,
		&goi18n.Message{ID: ERROR_INTERNAL, Other: "internal server error"},
		&goi18n.Message{ID: ERROR_NOTFOUND, Other: "not found"},
		&goi18n.Message{ID: ERROR_INVALIDARGUMENT, Other: "invalid argument"},
		&goi18n.Message{ID: ERROR_FORBIDDEN, Other: "forbidden"},
		&goi18n.Message{ID: ERROR_TOO_MANY_REQUESTS, Other: "too many requests"},
		&goi18n.Message{ID: ERROR_UNSUPPORTED_FEATURE, Other: "feature is not configured on this server"},
		&goi18n.Message{ID: ERROR_GATEWAY, Other: "upstream service is unavailable"},
		&goi18n.Message{ID: ERROR_RESPONSE_TOO_SHORT, Other: "journal response is too short"},
	)
	bundle.AddMessages(language.SimplifiedChinese,
		&goi18n.Message{ID: ERROR_INTERNAL, Other: "服务内部错误"},
		&goi18n.Message{ID: ERROR_NOTFOUND, Other: "内容不存在"},
		&goi18n.Message{ID: ERROR_INVALIDARGUMENT, Other: "参数错误"},
		&goi18n.Message{ID: ERROR_FORBIDDEN, Other: "无权访问"},
		&goi18n.Message{ID: ERROR_TOO_MANY_REQUESTS, Other: "请求过于频繁"},
		&goi18n.Message{ID: ERROR_UNSUPPORTED_FEATURE, Other: "该服务未开启此功能"},
		&goi18n.Message{ID: ERROR_GATEWAY, Other: "上游服务暂不可用"},
		&goi18n.Message{ID: ERROR_RESPONSE_TOO_SHORT, Other: "日记内容过短"},
	)

	return &Localizer{bundle: bundle}
}

// Get renders the message for key in lang, falling back to the default
// language, then to the key itself.
func (l *Localizer) Get(lang, key string) string {
	if !ALLOW_LANG[lang] {
		lang = DEFAULT_LANG
	}
	msg, err := goi18n.NewLocalizer(l.bundle, lang, DEFAULT_LANG).Localize(&goi18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return msg
}
