package delivery

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"

	"github.com/chaitravc/AI-VOICE-AGENT/internal/ports"
)

const Version = "1.6.0"

type VoiceHandler struct {
	voice ports.VoiceService
	log   *logger.ZapLogger
}

func NewVoiceHandler(voice ports.VoiceService, log *logger.ZapLogger) *VoiceHandler {
	return &VoiceHandler{
		voice: voice,
		log:   log,
	}
}

// GenerateSpeech handles POST /api/text-to-speech.
func (h *VoiceHandler) GenerateSpeech(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text    string `json:"text"`
		VoiceID string `json:"voice_id"`
		Style   string `json:"style"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "missing text", http.StatusBadRequest)
		return
	}

	res, err := h.voice.GenerateSpeech(r.Context(), req.Text, req.VoiceID, req.Style)
	if err != nil {
		h.fail(w, "text-to-speech", err)
		return
	}
	writeJSON(w, res)
}

// UploadAudio handles POST /api/upload-audio/.
func (h *VoiceHandler) UploadAudio(w http.ResponseWriter, r *http.Request) {
	up, closeUpload, err := uploadFromRequest(r)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "invalid upload", Error: err})
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer closeUpload()

	info, err := h.voice.SaveUpload(r.Context(), up)
	if err != nil {
		h.fail(w, "upload-audio", err)
		return
	}
	writeJSON(w, info)
}

// TranscribeFile handles POST /api/transcribe/file.
func (h *VoiceHandler) TranscribeFile(w http.ResponseWriter, r *http.Request) {
	h.runPipeline(w, r, "transcribe", h.voice.TranscribeFile)
}

// Echo handles POST /api/tts/echo.
func (h *VoiceHandler) Echo(w http.ResponseWriter, r *http.Request) {
	h.runPipeline(w, r, "echo", h.voice.Echo)
}

// Query handles POST /api/llm/query.
func (h *VoiceHandler) Query(w http.ResponseWriter, r *http.Request) {
	h.runPipeline(w, r, "llm query", h.voice.Query)
}

// Chat handles POST /agent/chat/{session_id}.
func (h *VoiceHandler) Chat(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")
	if sessionID == "" {
		http.Error(w, "missing session_id", http.StatusBadRequest)
		return
	}
	h.runPipeline(w, r, "chat agent", func(ctx context.Context, up ports.Upload) (ports.PipelineResult, error) {
		return h.voice.Chat(ctx, sessionID, up)
	})
}

// Health handles GET /api/health.
func (h *VoiceHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{
		"status":  "AI Voice Agent Running!",
		"version": Version,
		"endpoints": []string{
			"/api/text-to-speech",
			"/api/upload-audio/",
			"/api/transcribe/file",
			"/api/tts/echo",
			"/api/llm/query",
			"/agent/chat/{session_id}",
		},
	})
}
