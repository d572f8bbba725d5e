package reply_test

import (
	"context"
	"io"
	"testing"

	"github.com/parkdui/LG-Thingo/internal/ai"
	"github.com/parkdui/LG-Thingo/internal/characters"
	"github.com/parkdui/LG-Thingo/internal/models"
	"github.com/parkdui/LG-Thingo/internal/reply"
	"github.com/parkdui/LG-Thingo/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	reply        string
	err          error
	gotSystem    string
	gotSnapshots []models.Transcript
}

func (s *stubCompleter) Complete(_ context.Context, systemPrompt string, transcript models.Transcript) (string, error) {
	s.gotSystem = systemPrompt
	s.gotSnapshots = append(s.gotSnapshots, transcript)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestGetReplyResolvesSystemPrompt(t *testing.T) {
	catalog := characters.NewCatalog()
	completer := &stubCompleter{reply: "가볍다는 게 내 매력이야!"}
	service := reply.NewService(catalog, completer, testhelpers.NewLogger(io.Discard))

	transcript := models.Transcript{
		{Role: models.RoleAssistant, Content: "안녕!"},
		{Role: models.RoleUser, Content: "얼마나 가벼워?"},
	}
	text, err := service.GetReply(context.Background(), "gram-0", transcript)
	require.NoError(t, err)
	require.Equal(t, "가볍다는 게 내 매력이야!", text)
	require.Equal(t, catalog.Resolve("gram-0").SystemPrompt, completer.gotSystem)
	require.Len(t, completer.gotSnapshots, 1)
	require.Equal(t, transcript, completer.gotSnapshots[0])
}

func TestGetReplyRejectsEmptyTranscript(t *testing.T) {
	service := reply.NewService(characters.NewCatalog(), &stubCompleter{reply: "ok"}, testhelpers.NewLogger(io.Discard))

	_, err := service.GetReply(context.Background(), "gram-0", nil)
	require.ErrorIs(t, err, reply.ErrEmptyTranscript)
}

func TestGetReplyUnknownCharacterUsesFallbackPrompt(t *testing.T) {
	catalog := characters.NewCatalog()
	completer := &stubCompleter{reply: "ok"}
	service := reply.NewService(catalog, completer, testhelpers.NewLogger(io.Discard))

	transcript := models.Transcript{{Role: models.RoleUser, Content: "누구세요?"}}
	_, err := service.GetReply(context.Background(), "fridge-7", transcript)
	require.NoError(t, err)
	require.Equal(t, catalog.Resolve("fridge-7").SystemPrompt, completer.gotSystem)
}

func TestReplyOrFallback(t *testing.T) {
	catalog := characters.NewCatalog()
	transcript := models.Transcript{{Role: models.RoleUser, Content: "안녕"}}

	tests := []struct {
		name string
		stub *stubCompleter
		want string
	}{
		{
			name: "success passes the reply through",
			stub: &stubCompleter{reply: "반가워!"},
			want: "반가워!",
		},
		{
			name: "missing credentials degrade to the apology",
			stub: &stubCompleter{err: ai.ErrServiceUnavailable},
			want: reply.FallbackMessage,
		},
		{
			name: "upstream failure degrades to the apology",
			stub: &stubCompleter{err: ai.ErrUpstream},
			want: reply.FallbackMessage,
		},
		{
			name: "timeout degrades to the apology",
			stub: &stubCompleter{err: ai.ErrTimeout},
			want: reply.FallbackMessage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := reply.NewService(catalog, tt.stub, testhelpers.NewLogger(io.Discard))
			got := service.ReplyOrFallback(context.Background(), "gram-0", transcript)
			require.Equal(t, tt.want, got)
		})
	}
}
