package ports

import (
	"context"
	"io"
)

// Upload is the caller's view of a multipart audio upload before it has been
// persisted anywhere.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64 // declared size, bytes
	Data        io.Reader
}

// UploadInfo reports what landed on disk for the upload probe endpoint.
type UploadInfo struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	SizeInBytes int64  `json:"size_in_bytes"`
}

// PipelineResult is the uniform body returned by every voice endpoint.
// AudioURL is empty when synthesis was skipped.
type PipelineResult struct {
	Transcript  string `json:"transcript"`
	LLMResponse string `json:"llm_response"`
	AudioURL    string `json:"audio_url"`
}

type VoiceService interface {
	GenerateSpeech(ctx context.Context, text, voiceID, style string) (PipelineResult, error)
	SaveUpload(ctx context.Context, up Upload) (UploadInfo, error)
	TranscribeFile(ctx context.Context, up Upload) (PipelineResult, error)
	Echo(ctx context.Context, up Upload) (PipelineResult, error)
	Query(ctx context.Context, up Upload) (PipelineResult, error)
	Chat(ctx context.Context, sessionID string, up Upload) (PipelineResult, error)
}
