package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

const (
	DEFAULT_ENDPOINT = "https://api.elevenlabs.io"
	DEFAULT_MODEL    = "scribe_v2"

	transcribePath = "/v1/speech-to-text"
)

// Client calls the ElevenLabs speech-to-text API. The per-call behavior is a
// single request/response with no retry; callers decide how to surface
// failures.
type Client struct {
	endpoint   string
	token      string
	model      string
	httpClient *http.Client
}

func New(endpoint, token, model string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = DEFAULT_ENDPOINT
	}
	if model == "" {
		model = DEFAULT_MODEL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		token:      token,
		model:      model,
		httpClient: httpClient,
	}
}

type transcription struct {
	Text string `json:"text"`
}

// Transcribe uploads audio and returns the recognized plain text.
// languageCode is an optional hint, e.g. "eng"; empty means auto-detect.
func (c *Client) Transcribe(ctx context.Context, filename string, audio io.Reader, languageCode string) (string, error) {
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	if filename == "" {
		filename = "audio.webm"
	}
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err = io.Copy(part, audio); err != nil {
		return "", err
	}
	if err = form.WriteField("model_id", c.model); err != nil {
		return "", err
	}
	if languageCode != "" {
		if err = form.WriteField("language_code", languageCode); err != nil {
			return "", err
		}
	}
	if err = form.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+transcribePath, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("xi-api-key", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("speech-to-text responded %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var result transcription
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode speech-to-text response: %w", err)
	}
	return strings.TrimSpace(result.Text), nil
}
