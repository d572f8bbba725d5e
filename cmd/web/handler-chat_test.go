package main

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/donseba/go-htmx"
	"github.com/parkdui/LG-Thingo/internal/characters"
	"github.com/parkdui/LG-Thingo/internal/conversation"
	"github.com/parkdui/LG-Thingo/internal/e2etest"
	"github.com/parkdui/LG-Thingo/internal/models"
	"github.com/parkdui/LG-Thingo/internal/reply"
	"github.com/parkdui/LG-Thingo/internal/repositories"
	"github.com/parkdui/LG-Thingo/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedCompleter feeds canned assistant replies in order.
type scriptedCompleter struct {
	replies []string
	calls   int
}

func (s *scriptedCompleter) Complete(_ context.Context, _ string, _ models.Transcript) (string, error) {
	text := s.replies[s.calls%len(s.replies)]
	s.calls++
	return text, nil
}

func newTestClient(t *testing.T, completer reply.Completer) *e2etest.Client {
	t.Helper()
	logger := testhelpers.NewLogger(io.Discard)
	catalog := characters.NewCatalog()
	sessionManager := scs.New()
	app := application{
		logger:         logger,
		catalog:        catalog,
		replies:        reply.NewService(catalog, completer, logger),
		transcripts:    repositories.NewTranscriptRepository(sessionManager, logger),
		sessionManager: sessionManager,
		htmx:           htmx.New(),
	}

	server := httptest.NewServer(app.routes())
	t.Cleanup(server.Close)

	client, err := e2etest.NewClient(server.URL)
	require.NoError(t, err)
	return client
}

func Test_application_fullConversation(t *testing.T) {
	completer := &scriptedCompleter{replies: []string{"나랑 있으면 **어디든** 편해질 거야!"}}
	client := newTestClient(t, completer)
	ctx := context.Background()

	chatPath := "/chat/gram-0"
	messagePath := chatPath + "/message"

	doc, err := client.GetDoc(ctx, chatPath)
	require.NoError(t, err)
	assert.Contains(t, doc.Find(".message-assistant").First().Text(), "그램린")

	for turn := 1; turn < conversation.MaxUserTurns; turn++ {
		doc, err = client.SubmitForm(ctx, chatPath, messagePath,
			url.Values{"message": {fmt.Sprintf("더 알고 싶어 %d", turn)}})
		require.NoError(t, err)
		assert.Equal(t, turn, doc.Find(".message-user").Length())
		assert.Contains(t, doc.Find(".turn-banner").Text(),
			fmt.Sprintf("%d", conversation.MaxUserTurns-turn))
	}

	// The markdown in the scripted reply is rendered server-side.
	assert.GreaterOrEqual(t, doc.Find(".message-assistant strong").Length(), 1)

	// The fifth reply spends the budget and the flow lands on the verdict.
	doc, err = client.SubmitForm(ctx, chatPath, messagePath,
		url.Values{"message": {"좋아, 같이 살자"}})
	require.NoError(t, err)
	assert.Contains(t, doc.Find("h1").Text(), "입양 성공")
	assert.Equal(t, 1, doc.Find("video[src='/static/videos/gram_success.mp4']").Length())
	assert.Equal(t, conversation.MaxUserTurns, completer.calls)
}

func Test_application_negativeConversationFails(t *testing.T) {
	completer := &scriptedCompleter{replies: []string{"그래도 잘 부탁해!"}}
	client := newTestClient(t, completer)
	ctx := context.Background()

	chatPath := "/chat/hydrotower-2"
	messagePath := chatPath + "/message"

	for _, message := range []string{"싫어, 별로야", "아니, 너랑은 잘 모르겠어"} {
		_, err := client.SubmitForm(ctx, chatPath, messagePath, url.Values{"message": {message}})
		require.NoError(t, err)
	}

	doc, err := client.SubmitForm(ctx, chatPath, chatPath+"/finish", url.Values{})
	require.NoError(t, err)
	assert.Contains(t, doc.Find("h1").Text(), "입양 실패")
	assert.Equal(t, 1, doc.Find("video[src='/static/videos/hydrotower_fail.mp4']").Length())
}

func Test_application_blankMessageIsDropped(t *testing.T) {
	completer := &scriptedCompleter{replies: []string{"응?"}}
	client := newTestClient(t, completer)
	ctx := context.Background()

	chatPath := "/chat/puricare-4"
	doc, err := client.SubmitForm(ctx, chatPath, chatPath+"/message",
		url.Values{"message": {"   "}})
	require.NoError(t, err)

	assert.Equal(t, 0, doc.Find(".message-user").Length())
	assert.Equal(t, 0, completer.calls)
}

func Test_application_unknownCharacterStillChats(t *testing.T) {
	completer := &scriptedCompleter{replies: []string{"처음 보는 사이지만 반가워!"}}
	client := newTestClient(t, completer)
	ctx := context.Background()

	chatPath := "/chat/gram-99"
	doc, err := client.GetDoc(ctx, chatPath)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find(".message-assistant").Length())

	doc, err = client.SubmitForm(ctx, chatPath, chatPath+"/message",
		url.Values{"message": {"너는 누구야?"}})
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find(".message-user").Length())
	assert.Contains(t, doc.Find(".message-assistant").Text(), "처음 보는 사이지만")
}
