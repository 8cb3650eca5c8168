package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfjournal/journal-api/pkg/i18n"
)

func TestNewDefaults(t *testing.T) {
	e := New("EntryLogic.CreateEntry", i18n.ERROR_INVALIDARGUMENT, nil)
	assert.Equal(t, http.StatusInternalServerError, e.StatusCode())

	e.Code(http.StatusBadRequest)
	assert.Equal(t, http.StatusBadRequest, e.StatusCode())
	assert.Equal(t, i18n.ERROR_INVALIDARGUMENT, e.Key())
	assert.Equal(t, "EntryLogic.CreateEntry", e.Error())

	e = New("trace", "", nil)
	assert.Equal(t, i18n.ERROR_INTERNAL, e.Key())
}

func TestTrace(t *testing.T) {
	assert.Nil(t, Trace("service.Run", nil))

	inner := New("EntryLogic.CreateEntry.Store.Append", i18n.ERROR_INTERNAL, stderrors.New("disk full")).Code(http.StatusInternalServerError)
	wrapped := Trace("service.Run", inner)

	e, ok := wrapped.(*Error)
	require.True(t, ok)
	assert.Equal(t, "service.Run.EntryLogic.CreateEntry.Store.Append", e.TracePath())
	assert.Equal(t, i18n.ERROR_INTERNAL, e.Key())

	plain := Trace("service.Run", stderrors.New("listen: address in use"))
	e, ok = plain.(*Error)
	require.True(t, ok)
	assert.Equal(t, "service.Run", e.TracePath())
	assert.True(t, stderrors.Is(plain, e.Unwrap()))
}
