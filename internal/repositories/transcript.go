package repositories

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/alexedwards/scs/v2"
	"github.com/parkdui/LG-Thingo/internal/conversation"
	"github.com/parkdui/LG-Thingo/internal/errors"
	"github.com/parkdui/LG-Thingo/internal/models"
)

// TranscriptRepository stores chat state inside the browsing session, keyed
// by character id. Nothing outlives the session: the store is the bridge
// between the chat stage and the result stage, not a durability layer.
//
// Writes and the single subsequent read are causally ordered by the page
// flow (write happens before navigation, navigation before read), so the
// last writer simply wins.
type TranscriptRepository struct {
	sessions *scs.SessionManager
	logger   *slog.Logger
}

func NewTranscriptRepository(sessions *scs.SessionManager, logger *slog.Logger) *TranscriptRepository {
	return &TranscriptRepository{
		sessions: sessions,
		logger:   logger.With("source", "TranscriptRepository"),
	}
}

// finishedKey is the slot for a transcript handed off to the result stage.
func finishedKey(characterID string) string {
	return "chat_" + characterID
}

// liveKey is the slot for an ongoing conversation session.
func liveKey(characterID string) string {
	return "live_" + characterID
}

// SaveFinished serializes a finished transcript for one-time hand-off to the
// result stage. Last writer wins.
func (r *TranscriptRepository) SaveFinished(ctx context.Context, characterID string, transcript models.Transcript) error {
	encoded, err := json.Marshal(transcript)
	if err != nil {
		return errors.Wrap(err, "marshal transcript", slog.String("character_id", characterID))
	}
	r.sessions.Put(ctx, finishedKey(characterID), encoded)
	return nil
}

// LoadFinished reads the transcript persisted for the result stage. An
// absent slot is not an error: it loads as an empty transcript, which the
// classifier grades as a failure.
func (r *TranscriptRepository) LoadFinished(ctx context.Context, characterID string) (models.Transcript, error) {
	encoded := r.sessions.GetBytes(ctx, finishedKey(characterID))
	if encoded == nil {
		return models.Transcript{}, nil
	}
	var transcript models.Transcript
	if err := json.Unmarshal(encoded, &transcript); err != nil {
		return nil, errors.Wrap(err, "unmarshal transcript", slog.String("character_id", characterID))
	}
	return transcript, nil
}

// SaveLive stores the ongoing conversation session between requests.
func (r *TranscriptRepository) SaveLive(ctx context.Context, session *conversation.Session) error {
	encoded, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "marshal session", slog.String("character_id", session.CharacterID))
	}
	r.sessions.Put(ctx, liveKey(session.CharacterID), encoded)
	return nil
}

// LoadLive reads the ongoing conversation session for a character. It
// returns nil without error when there is none yet.
func (r *TranscriptRepository) LoadLive(ctx context.Context, characterID string) (*conversation.Session, error) {
	encoded := r.sessions.GetBytes(ctx, liveKey(characterID))
	if encoded == nil {
		return nil, nil
	}
	var session conversation.Session
	if err := json.Unmarshal(encoded, &session); err != nil {
		return nil, errors.Wrap(err, "unmarshal session", slog.String("character_id", characterID))
	}
	return &session, nil
}

// DropLive discards the live session, e.g. after the hand-off completes.
func (r *TranscriptRepository) DropLive(ctx context.Context, characterID string) {
	r.sessions.Remove(ctx, liveKey(characterID))
}
