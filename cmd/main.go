package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/chaitravc/AI-VOICE-AGENT/internal/agent"
	"github.com/chaitravc/AI-VOICE-AGENT/internal/ai"
	"github.com/chaitravc/AI-VOICE-AGENT/internal/delivery"
	"github.com/chaitravc/AI-VOICE-AGENT/internal/history"
	"github.com/chaitravc/AI-VOICE-AGENT/internal/speech"
	"github.com/chaitravc/AI-VOICE-AGENT/internal/uploads"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / LOGGING
	// =========================================================================

	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "uploads"
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// CLIENTS (STT / LLM / TTS)
	// =========================================================================

	sttClient := speech.NewDeepgramClient()
	ttsClient := speech.NewMurfClient()
	llmClient := ai.NewOpenAIClient()

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	uploadDir, err := uploads.NewDir(uploadsDir, zl)
	if err != nil {
		log.Fatalf("failed to init uploads dir: %v", err)
	}

	chatStore := history.NewStore(history.DefaultMaxTurns, history.DefaultMaxSessions)

	voiceService := agent.NewService(
		sttClient,
		ttsClient,
		llmClient,
		chatStore,
		uploadDir,
	)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	voiceHandler := delivery.NewVoiceHandler(voiceService, zl)
	delivery.RegisterRoutes(r, voiceHandler)

	// static UI, outside the pipeline core
	if st, err := os.Stat("static"); err == nil && st.IsDir() {
		r.Handle("/*", http.FileServer(http.Dir("static")))
	}

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "ai-voice-agent",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
