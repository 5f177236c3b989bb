package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"

	"github.com/chaitravc/AI-VOICE-AGENT/internal/apperr"
)

const murfGenerateURL = "https://api.murf.ai/v1/speech/generate"

// MurfClient generates speech through Murf's REST API. Murf hosts the
// resulting audio itself and hands back a URL, which is exactly what the
// pipeline returns to callers.
type MurfClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewMurfClient() *MurfClient {
	key := os.Getenv("MURF_API_KEY")
	if key == "" {
		panic("MURF_API_KEY not set")
	}

	return &MurfClient{
		apiKey:  key,
		baseURL: murfGenerateURL,
		client:  &http.Client{},
	}
}

func (c *MurfClient) Synthesize(ctx context.Context, text, voiceID, style string) (string, error) {
	payload, err := json.Marshal(struct {
		Text    string `json:"text"`
		VoiceID string `json:"voiceId"`
		Style   string `json:"style,omitempty"`
		Format  string `json:"format"`
	}{Text: text, VoiceID: voiceID, Style: style, Format: "MP3"})
	if err != nil {
		return "", apperr.New(apperr.KindSynthesis, "synthesize", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", apperr.New(apperr.KindSynthesis, "synthesize", err)
	}

	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", apperr.Newf(apperr.KindSynthesis, "synthesize", "murf request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return "", apperr.Newf(apperr.KindSynthesis, "synthesize", "murf error: %s", body)
	}

	var parsed struct {
		AudioFile string `json:"audioFile"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", apperr.Newf(apperr.KindSynthesis, "synthesize", "decode murf: %w", err)
	}
	if parsed.AudioFile == "" {
		return "", apperr.Newf(apperr.KindSynthesis, "synthesize", "murf returned no audio url")
	}

	return parsed.AudioFile, nil
}
