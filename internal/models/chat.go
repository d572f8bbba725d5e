package models

import "strings"

// Role tags a chat turn as coming from the user or the character.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a conversation. Immutable once created.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Transcript is the ordered, append-only turn history for one character
// within one browsing session. The first turn is always the character's
// greeting.
type Transcript []Turn

// UserTurnCount returns the number of user turns in the transcript.
func (t Transcript) UserTurnCount() int {
	count := 0
	for _, turn := range t {
		if turn.Role == RoleUser {
			count++
		}
	}
	return count
}

// UserTurns returns the user turns in order.
func (t Transcript) UserTurns() []Turn {
	var turns []Turn
	for _, turn := range t {
		if turn.Role == RoleUser {
			turns = append(turns, turn)
		}
	}
	return turns
}

// Append returns a new transcript with the turn added. The receiver is not
// modified so snapshots handed off to the result stage stay stable.
func (t Transcript) Append(turn Turn) Transcript {
	appended := make(Transcript, 0, len(t)+1)
	appended = append(appended, t...)
	return append(appended, turn)
}

// Valid reports whether every turn carries a known role and non-blank content.
func (t Transcript) Valid() bool {
	for _, turn := range t {
		if turn.Role != RoleUser && turn.Role != RoleAssistant {
			return false
		}
		if strings.TrimSpace(turn.Content) == "" {
			return false
		}
	}
	return true
}

// Verdict is the outcome of classifying a finished transcript.
type Verdict struct {
	IsSuccess bool
	Message   string
}
