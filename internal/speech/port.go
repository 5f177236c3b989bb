package speech

import "context"

type STTClient interface {
	Transcribe(ctx context.Context, filePath string) (string, error) // voice → text
}

type TTSClient interface {
	// Synthesize returns a URL to provider-hosted audio; no bytes are stored locally.
	Synthesize(ctx context.Context, text, voiceID, style string) (string, error)
}
