// Package reply is the stateless boundary between a conversation and the
// language-model provider: transcript in, one assistant reply out.
package reply

import (
	"context"
	"log/slog"

	"github.com/parkdui/LG-Thingo/internal/characters"
	"github.com/parkdui/LG-Thingo/internal/errors"
	"github.com/parkdui/LG-Thingo/internal/models"
)

// FallbackMessage is the apologetic assistant turn appended when a reply
// attempt fails. It counts as a normal turn and never against the budget.
const FallbackMessage = "죄송해요, 오류가 발생했어요. 다시 시도해주세요."

// ErrEmptyTranscript is returned for a reply request without any turns.
var ErrEmptyTranscript = errors.NewSentinel("empty transcript")

// Completer performs one chat completion exchange.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, transcript models.Transcript) (string, error)
}

// Service resolves the character's system prompt and mediates to the
// language-model provider. One attempt per call; failure handling is the
// caller's business.
type Service struct {
	catalog   *characters.Catalog
	completer Completer
	logger    *slog.Logger
}

func NewService(catalog *characters.Catalog, completer Completer, logger *slog.Logger) *Service {
	return &Service{
		catalog:   catalog,
		completer: completer,
		logger:    logger.With("source", "ReplyService"),
	}
}

// GetReply returns one assistant reply for the transcript so far. The system
// prompt is resolved server-side from the character id and is never part of
// the transcript itself.
func (s *Service) GetReply(ctx context.Context, characterID string, transcript models.Transcript) (string, error) {
	if len(transcript) == 0 {
		return "", errors.Wrap(ErrEmptyTranscript, "get reply", slog.String("character_id", characterID))
	}

	profile := s.catalog.Resolve(characterID)
	text, err := s.completer.Complete(ctx, profile.SystemPrompt, transcript)
	if err != nil {
		return "", errors.Wrap(err, "complete reply", slog.String("character_id", characterID))
	}
	return text, nil
}

// ReplyOrFallback converts any reply failure into the user-visible
// apologetic message after logging it, keeping the session flowing.
func (s *Service) ReplyOrFallback(ctx context.Context, characterID string, transcript models.Transcript) string {
	text, err := s.GetReply(ctx, characterID, transcript)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "reply failed",
			slog.String("character_id", characterID), errors.SlogError(err))
		return FallbackMessage
	}
	return text
}
