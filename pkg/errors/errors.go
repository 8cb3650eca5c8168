package errors

import (
	"fmt"
	"net/http"

	"github.com/selfjournal/journal-api/pkg/i18n"
)

// Error carries the call path that produced it, the i18n key used to render a
// user-facing message and the http status the API layer should respond with.
type Error struct {
	trace string
	key   string
	code  int
	raw   error
}

func New(trace, i18nKey string, err error) *Error {
	if i18nKey == "" {
		i18nKey = i18n.ERROR_INTERNAL
	}
	return &Error{
		trace: trace,
		key:   i18nKey,
		code:  http.StatusInternalServerError,
		raw:   err,
	}
}

func (e *Error) Code(code int) *Error {
	e.code = code
	return e
}

func (e *Error) StatusCode() int {
	return e.code
}

func (e *Error) Key() string {
	return e.key
}

func (e *Error) TracePath() string {
	return e.trace
}

func (e *Error) Error() string {
	if e.raw == nil {
		return e.trace
	}
	return fmt.Sprintf("%s: %s", e.trace, e.raw.Error())
}

func (e *Error) Unwrap() error {
	return e.raw
}

// Trace prepends prefix to the trace path of an *Error, wrapping any other
// error as an internal one.
func Trace(prefix string, err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		e.trace = prefix + "." + e.trace
		return e
	}
	return New(prefix, i18n.ERROR_INTERNAL, err)
}
