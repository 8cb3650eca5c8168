package i18n

var ALLOW_LANG = map[string]bool{
	"en":    true,
	"zh-CN": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL            = "error.internal"
	ERROR_NOTFOUND            = "error.notfound"
	ERROR_INVALIDARGUMENT     = "error.invalidargument"
	ERROR_FORBIDDEN           = "error.forbidden"
	ERROR_TOO_MANY_REQUESTS   = "error.tooManyRequests"
	ERROR_UNSUPPORTED_FEATURE = "error.unsupported.feature"
	ERROR_GATEWAY             = "error.gateway"
	ERROR_RESPONSE_TOO_SHORT  = "error.response.tooShort"
)
