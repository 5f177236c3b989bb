package ai

import (
	"context"

	"github.com/chaitravc/AI-VOICE-AGENT/internal/history"
)

type Responder interface {
	// Respond answers a single utterance with no conversation context.
	Respond(ctx context.Context, utterance string) (string, error)
	// RespondWithHistory replays the turns in order, most recent last, and
	// returns a contextual reply.
	RespondWithHistory(ctx context.Context, turns []history.Turn) (string, error)
}
