package elevenlabs

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscribe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/speech-to-text", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("xi-api-key"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "scribe_v2", r.FormValue("model_id"))
		assert.Equal(t, "eng", r.FormValue("language_code"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "note.webm", header.Filename)
		raw, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake audio bytes", string(raw))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"  today I kept my promise to myself  "}`))
	}))
	defer server.Close()

	client := New(server.URL, "test-token", "", server.Client())

	text, err := client.Transcribe(context.Background(), "note.webm", strings.NewReader("fake audio bytes"), "eng")
	require.NoError(t, err)
	assert.Equal(t, "today I kept my promise to myself", text)
}

func TestTranscribeUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"invalid api key"}`))
	}))
	defer server.Close()

	client := New(server.URL, "bad-token", "", server.Client())

	_, err := client.Transcribe(context.Background(), "", strings.NewReader("x"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestTranscribeOmitsLanguageWhenAuto(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, hasLang := r.MultipartForm.Value["language_code"]
		assert.False(t, hasLang)
		w.Write([]byte(`{"text":"ok"}`))
	}))
	defer server.Close()

	client := New(server.URL, "t", "", server.Client())
	text, err := client.Transcribe(context.Background(), "", strings.NewReader("x"), "")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}
