package conversation

import (
	"log/slog"
	"strings"

	"github.com/parkdui/LG-Thingo/internal/errors"
	"github.com/parkdui/LG-Thingo/internal/models"
)

// MaxUserTurns is the question budget per character. Once spent, the session
// stops accepting user turns.
const MaxUserTurns = 5

// MinTurnsForResult is the engagement floor: the result stage is reachable
// only after this many user turns, so the classifier never runs on a
// near-empty transcript.
const MinTurnsForResult = 2

// ErrRejectedInput is returned when a user turn cannot be accepted. The input
// is dropped and the session stays interactive.
var ErrRejectedInput = errors.NewSentinel("rejected input")

// ErrInvalidTransition is returned when the session cannot move to the
// requested state.
var ErrInvalidTransition = errors.NewSentinel("invalid transition")

// State enumerates the lifecycle of a chat session. Transitions only move
// forward: Greeting → Active → LimitReached → Transitioning, with
// Transitioning also reachable from Active once the engagement floor is met.
type State string

const (
	// StateGreeting holds the seeded assistant greeting before the first user turn.
	StateGreeting State = "greeting"
	// StateActive accepts user turns.
	StateActive State = "active"
	// StateLimitReached is terminal for new user turns but still allows reads and export.
	StateLimitReached State = "limit_reached"
	// StateTransitioning means the transcript was handed off to the result stage.
	StateTransitioning State = "transitioning"
)

// Session holds the ordered transcript of turns for one character and
// enforces the turn budget. It serializes to JSON so it can ride in the
// server-side browsing session between requests.
type Session struct {
	CharacterID string            `json:"characterId"`
	Transcript  models.Transcript `json:"transcript"`
	State       State             `json:"state"`
	// ReplyInFlight guards against concurrent sends: at most one outstanding
	// reply per session so assistant replies can never arrive out of order.
	ReplyInFlight bool `json:"replyInFlight"`
}

// New seeds a session with the character's greeting.
func New(profile models.CharacterProfile) *Session {
	return &Session{
		CharacterID: profile.ID,
		Transcript: models.Transcript{
			{Role: models.RoleAssistant, Content: profile.InitialGreeting},
		},
		State:         StateGreeting,
		ReplyInFlight: false,
	}
}

// AppendUserTurn appends a user turn and marks a reply as in flight. It fails
// with ErrRejectedInput for blank input, a spent turn budget, a session that
// is already handing off, or a reply already in flight.
func (s *Session) AppendUserTurn(text string) error {
	switch {
	case s.State == StateLimitReached:
		return errors.Wrap(ErrRejectedInput, "turn budget spent", slog.String("character_id", s.CharacterID))
	case s.State == StateTransitioning:
		return errors.Wrap(ErrRejectedInput, "session handing off", slog.String("character_id", s.CharacterID))
	case s.ReplyInFlight:
		return errors.Wrap(ErrRejectedInput, "reply in flight", slog.String("character_id", s.CharacterID))
	case strings.TrimSpace(text) == "":
		return errors.Wrap(ErrRejectedInput, "blank input")
	}

	s.Transcript = s.Transcript.Append(models.Turn{Role: models.RoleUser, Content: text})
	s.State = StateActive
	s.ReplyInFlight = true
	return nil
}

// ReceiveAssistantTurn appends an assistant turn and clears the in-flight
// guard. Reaching the turn budget moves the session to LimitReached.
// Error replies are appended through here as well: they read like any other
// assistant turn and never consume the user's budget.
func (s *Session) ReceiveAssistantTurn(text string) {
	s.Transcript = s.Transcript.Append(models.Turn{Role: models.RoleAssistant, Content: text})
	s.ReplyInFlight = false
	if s.State != StateTransitioning && s.Transcript.UserTurnCount() >= MaxUserTurns {
		s.State = StateLimitReached
	}
}

// RemainingTurns derives the unspent turn budget, floored at zero.
func (s *Session) RemainingTurns() int {
	remaining := MaxUserTurns - s.Transcript.UserTurnCount()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// LimitReached reports whether the turn budget is spent.
func (s *Session) LimitReached() bool {
	return s.Transcript.UserTurnCount() >= MaxUserTurns
}

// CanRequestTransition reports whether the result stage is reachable: the
// engagement floor is met and the hand-off has not happened yet.
func (s *Session) CanRequestTransition() bool {
	return s.State != StateTransitioning &&
		!s.ReplyInFlight &&
		s.Transcript.UserTurnCount() >= MinTurnsForResult
}

// RequestTransition moves the session to Transitioning. The caller persists
// the transcript once this returns; the state guard makes the hand-off
// happen exactly once.
func (s *Session) RequestTransition() error {
	if s.State == StateTransitioning {
		return errors.Wrap(ErrInvalidTransition, "already transitioning", slog.String("character_id", s.CharacterID))
	}
	if s.Transcript.UserTurnCount() < MinTurnsForResult {
		return errors.Wrap(ErrInvalidTransition, "below engagement floor",
			slog.Int("user_turns", s.Transcript.UserTurnCount()))
	}
	s.State = StateTransitioning
	return nil
}
