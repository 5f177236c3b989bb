package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/chaitravc/AI-VOICE-AGENT/internal/apperr"
)

const deepgramURL = "https://api.deepgram.com/v1/listen?model=nova-2&smart_format=true&language=en"

type DeepgramClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewDeepgramClient() *DeepgramClient {
	key := os.Getenv("DEEPGRAM_API_KEY")
	if key == "" {
		panic("DEEPGRAM_API_KEY not set")
	}

	return &DeepgramClient{
		apiKey:  key,
		baseURL: deepgramURL,
		client:  &http.Client{},
	}
}

func (c *DeepgramClient) Transcribe(ctx context.Context, filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", apperr.Newf(apperr.KindFileIO, "transcribe", "read audio file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(data))
	if err != nil {
		return "", apperr.New(apperr.KindTranscription, "transcribe", err)
	}

	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", audioContentType(filePath))

	resp, err := c.client.Do(req)
	if err != nil {
		return "", apperr.Newf(apperr.KindTranscription, "transcribe", "deepgram request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		return "", apperr.Newf(apperr.KindTranscription, "transcribe", "deepgram error: %s", body)
	}

	var parsed struct {
		Results struct {
			Channels []struct {
				Alternatives []struct {
					Transcript string `json:"transcript"`
				} `json:"alternatives"`
			} `json:"channels"`
		} `json:"results"`
	}

	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", apperr.Newf(apperr.KindTranscription, "transcribe", "decode deepgram: %w", err)
	}

	if len(parsed.Results.Channels) == 0 ||
		len(parsed.Results.Channels[0].Alternatives) == 0 {
		return "", apperr.Newf(apperr.KindTranscription, "transcribe", "empty transcript")
	}

	return parsed.Results.Channels[0].Alternatives[0].Transcript, nil
}

func audioContentType(filePath string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filePath)); ct != "" {
		return ct
	}
	return "audio/webm"
}
