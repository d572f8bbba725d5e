package conversation_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/parkdui/LG-Thingo/internal/characters"
	"github.com/parkdui/LG-Thingo/internal/conversation"
	"github.com/parkdui/LG-Thingo/internal/models"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *conversation.Session {
	t.Helper()
	profile := characters.NewCatalog().Resolve("gram-0")
	session := conversation.New(profile)
	require.Equal(t, conversation.StateGreeting, session.State)
	require.Len(t, session.Transcript, 1)
	require.Equal(t, models.RoleAssistant, session.Transcript[0].Role)
	require.Equal(t, profile.InitialGreeting, session.Transcript[0].Content)
	return session
}

func TestSessionAppendUserTurn(t *testing.T) {
	session := newTestSession(t)

	require.NoError(t, session.AppendUserTurn("어떤 노트북이야?"))
	require.Equal(t, conversation.StateActive, session.State)
	require.True(t, session.ReplyInFlight)

	// A second send while a reply is pending is rejected, valid or not.
	err := session.AppendUserTurn("추가 질문")
	require.ErrorIs(t, err, conversation.ErrRejectedInput)
	err = session.AppendUserTurn("")
	require.ErrorIs(t, err, conversation.ErrRejectedInput)

	session.ReceiveAssistantTurn("나는 가벼운 노트북이야!")
	require.False(t, session.ReplyInFlight)
	require.Equal(t, conversation.StateActive, session.State)
}

func TestSessionRejectsBlankInput(t *testing.T) {
	session := newTestSession(t)

	for _, input := range []string{"", "   ", "\n\t "} {
		err := session.AppendUserTurn(input)
		require.ErrorIs(t, err, conversation.ErrRejectedInput)
	}
	require.Equal(t, conversation.StateGreeting, session.State)
	require.Len(t, session.Transcript, 1)
}

func TestSessionTurnBudget(t *testing.T) {
	session := newTestSession(t)

	for i := range conversation.MaxUserTurns {
		require.Equal(t, conversation.MaxUserTurns-i, session.RemainingTurns())
		require.NoError(t, session.AppendUserTurn(fmt.Sprintf("질문 %d", i+1)))
		session.ReceiveAssistantTurn(fmt.Sprintf("답변 %d", i+1))
	}

	require.Equal(t, conversation.StateLimitReached, session.State)
	require.Equal(t, 0, session.RemainingTurns())
	require.True(t, session.LimitReached())

	// The sixth user turn is rejected, and keeps being rejected.
	for range 3 {
		err := session.AppendUserTurn("한 번만 더")
		require.ErrorIs(t, err, conversation.ErrRejectedInput)
	}
	require.Equal(t, 0, session.RemainingTurns())

	// The transcript is still readable and exportable.
	require.Len(t, session.Transcript, 1+2*conversation.MaxUserTurns)
	require.True(t, session.CanRequestTransition())
}

func TestSessionTransitionGate(t *testing.T) {
	session := newTestSession(t)

	// Below the engagement floor the result stage is unreachable.
	require.False(t, session.CanRequestTransition())
	require.ErrorIs(t, session.RequestTransition(), conversation.ErrInvalidTransition)

	require.NoError(t, session.AppendUserTurn("첫 질문"))
	session.ReceiveAssistantTurn("첫 답변")
	require.False(t, session.CanRequestTransition())

	require.NoError(t, session.AppendUserTurn("둘째 질문"))
	require.False(t, session.CanRequestTransition(), "in-flight reply blocks the hand-off")
	session.ReceiveAssistantTurn("둘째 답변")
	require.True(t, session.CanRequestTransition())

	require.NoError(t, session.RequestTransition())
	require.Equal(t, conversation.StateTransitioning, session.State)

	// The hand-off happens exactly once.
	require.ErrorIs(t, session.RequestTransition(), conversation.ErrInvalidTransition)
	require.ErrorIs(t, session.AppendUserTurn("더 물어볼래"), conversation.ErrRejectedInput)
}

func TestSessionRoundTripsThroughJSON(t *testing.T) {
	session := newTestSession(t)
	require.NoError(t, session.AppendUserTurn("겨울에도 잘 버텨?"))
	session.ReceiveAssistantTurn("물론이지!")

	encoded, err := json.Marshal(session)
	require.NoError(t, err)

	var decoded conversation.Session
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	require.Equal(t, *session, decoded)
}

func TestSessionFullScenario(t *testing.T) {
	// Seed a greeting for gram-0, spend the budget with successful replies,
	// and assert the terminal gate.
	session := conversation.New(characters.NewCatalog().Resolve("gram-0"))

	for i := range conversation.MaxUserTurns {
		require.NoError(t, session.AppendUserTurn(fmt.Sprintf("질문 %d", i+1)))
		session.ReceiveAssistantTurn("좋은 질문이야!")
	}
	require.Equal(t, conversation.StateLimitReached, session.State)
	require.ErrorIs(t, session.AppendUserTurn("여섯 번째 질문"), conversation.ErrRejectedInput)
}
