package delivery

import (
	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, h *VoiceHandler) {
	r.Route("/api", func(api chi.Router) {
		api.Use(httputil.RecoverMiddleware)

		api.Post("/text-to-speech", h.GenerateSpeech)
		api.Post("/upload-audio/", h.UploadAudio)
		api.Post("/transcribe/file", h.TranscribeFile)
		api.Post("/tts/echo", h.Echo)
		api.Post("/llm/query", h.Query)
		api.Get("/health", h.Health)
	})

	r.With(httputil.RecoverMiddleware).
		Post("/agent/chat/{session_id}", h.Chat)
}
