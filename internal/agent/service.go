package agent

import (
	"context"
	"strings"

	"github.com/chaitravc/AI-VOICE-AGENT/internal/ai"
	"github.com/chaitravc/AI-VOICE-AGENT/internal/apperr"
	"github.com/chaitravc/AI-VOICE-AGENT/internal/history"
	"github.com/chaitravc/AI-VOICE-AGENT/internal/ports"
	"github.com/chaitravc/AI-VOICE-AGENT/internal/speech"
	"github.com/chaitravc/AI-VOICE-AGENT/internal/uploads"
)

const (
	maxUploadBytes = 10_000_000

	defaultVoiceID = "en-US-ken"
	defaultStyle   = "Conversational"
)

// Service sequences the voice pipeline for each endpoint kind:
// persist upload → transcribe → [history + reply] → synthesize → cleanup.
// The temp file is discarded on every exit path; any step failure aborts the
// remaining steps and surfaces as a tagged error.
type Service struct {
	stt   speech.STTClient
	tts   speech.TTSClient
	llm   ai.Responder
	chats *history.Store
	files *uploads.Dir
}

func NewService(
	stt speech.STTClient,
	tts speech.TTSClient,
	llm ai.Responder,
	chats *history.Store,
	files *uploads.Dir,
) *Service {
	return &Service{
		stt:   stt,
		tts:   tts,
		llm:   llm,
		chats: chats,
		files: files,
	}
}

// GenerateSpeech is the pure text-to-speech pipeline: no upload, no
// transcription, the caller's text doubles as transcript and reply.
func (s *Service) GenerateSpeech(ctx context.Context, text, voiceID, style string) (ports.PipelineResult, error) {
	audioURL, err := s.tts.Synthesize(ctx, text, voiceID, style)
	if err != nil {
		return ports.PipelineResult{}, err
	}
	return ports.PipelineResult{Transcript: text, LLMResponse: text, AudioURL: audioURL}, nil
}

// SaveUpload persists the upload, reports what landed on disk, and deletes
// it again: the endpoint is a probe, not storage.
func (s *Service) SaveUpload(_ context.Context, up ports.Upload) (ports.UploadInfo, error) {
	tmp, err := s.persist(up)
	if err != nil {
		return ports.UploadInfo{}, err
	}
	defer tmp.Discard()

	return ports.UploadInfo{
		Filename:    up.Filename,
		ContentType: up.ContentType,
		SizeInBytes: tmp.Size,
	}, nil
}

// TranscribeFile runs persist → transcribe and skips synthesis entirely.
func (s *Service) TranscribeFile(ctx context.Context, up ports.Upload) (ports.PipelineResult, error) {
	tmp, err := s.persist(up)
	if err != nil {
		return ports.PipelineResult{}, err
	}
	defer tmp.Discard()

	transcript, err := s.stt.Transcribe(ctx, tmp.Path)
	if err != nil {
		return ports.PipelineResult{}, err
	}
	return ports.PipelineResult{Transcript: transcript, LLMResponse: transcript, AudioURL: ""}, nil
}

// Echo speaks the transcript back without consulting the LLM.
func (s *Service) Echo(ctx context.Context, up ports.Upload) (ports.PipelineResult, error) {
	tmp, err := s.persist(up)
	if err != nil {
		return ports.PipelineResult{}, err
	}
	defer tmp.Discard()

	transcript, err := s.stt.Transcribe(ctx, tmp.Path)
	if err != nil {
		return ports.PipelineResult{}, err
	}

	audioURL, err := s.tts.Synthesize(ctx, transcript, defaultVoiceID, defaultStyle)
	if err != nil {
		return ports.PipelineResult{}, err
	}
	return ports.PipelineResult{Transcript: transcript, LLMResponse: transcript, AudioURL: audioURL}, nil
}

// Query answers the transcript as a stateless single-turn LLM call.
func (s *Service) Query(ctx context.Context, up ports.Upload) (ports.PipelineResult, error) {
	tmp, err := s.persist(up)
	if err != nil {
		return ports.PipelineResult{}, err
	}
	defer tmp.Discard()

	transcript, err := s.stt.Transcribe(ctx, tmp.Path)
	if err != nil {
		return ports.PipelineResult{}, err
	}

	reply, err := s.llm.Respond(ctx, transcript)
	if err != nil {
		return ports.PipelineResult{}, err
	}

	audioURL, err := s.tts.Synthesize(ctx, reply, defaultVoiceID, defaultStyle)
	if err != nil {
		return ports.PipelineResult{}, err
	}
	return ports.PipelineResult{Transcript: transcript, LLMResponse: reply, AudioURL: audioURL}, nil
}

// Chat keeps per-session history: the transcript is appended as a user turn,
// the bounded history is replayed to the LLM, and the reply is appended as an
// assistant turn before synthesis.
func (s *Service) Chat(ctx context.Context, sessionID string, up ports.Upload) (ports.PipelineResult, error) {
	tmp, err := s.persist(up)
	if err != nil {
		return ports.PipelineResult{}, err
	}
	defer tmp.Discard()

	transcript, err := s.stt.Transcribe(ctx, tmp.Path)
	if err != nil {
		return ports.PipelineResult{}, err
	}

	s.chats.Append(sessionID, history.Turn{Role: history.RoleUser, Content: transcript})

	reply, err := s.llm.RespondWithHistory(ctx, s.chats.Get(sessionID))
	if err != nil {
		return ports.PipelineResult{}, err
	}
	s.chats.Append(sessionID, history.Turn{Role: history.RoleAssistant, Content: reply})

	audioURL, err := s.tts.Synthesize(ctx, reply, defaultVoiceID, defaultStyle)
	if err != nil {
		return ports.PipelineResult{}, err
	}
	return ports.PipelineResult{Transcript: transcript, LLMResponse: reply, AudioURL: audioURL}, nil
}

// persist validates the declared content type and size, then writes the
// upload to a uniquely named temp file. Validation failures happen before any
// byte is written.
func (s *Service) persist(up ports.Upload) (*uploads.TempFile, error) {
	if !strings.HasPrefix(up.ContentType, "audio/") {
		return nil, apperr.Newf(apperr.KindValidation, "validate upload", "invalid file type %q, audio files only", up.ContentType)
	}
	if up.Size > maxUploadBytes {
		return nil, apperr.Newf(apperr.KindValidation, "validate upload", "file too large: %d bytes", up.Size)
	}
	return s.files.Save(up.Filename, up.Data)
}
