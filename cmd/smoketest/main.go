package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/parkdui/LG-Thingo/internal/e2etest"
	"github.com/parkdui/LG-Thingo/internal/errors"
	"github.com/parkdui/LG-Thingo/internal/logging"
)

// TestChatFlow walks the happy path: pick a character, send a question, and
// check the conversation moved forward. It does not finish the chat so the
// production transcript store is left with throwaway data only.
func TestChatFlow(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second) //nolint:mnd // leaves room for a real LLM reply.
	defer cancel()

	doc, err := client.GetDoc(ctx, "/")
	if err != nil {
		return errors.Wrap(err, "front page")
	}
	if doc.Find("a[href='/cards/gram']").Length() != 1 {
		return errors.New("gram card link not found on front page")
	}

	if doc, err = client.GetDoc(ctx, "/cards/gram"); err != nil {
		return errors.Wrap(err, "cards page")
	}
	if doc.Find("a[href='/chat/gram-0']").Length() != 1 {
		return errors.New("gram-0 chat link not found on cards page")
	}

	if doc, err = client.SubmitForm(ctx, "/chat/gram-0", "/chat/gram-0/message",
		url.Values{"message": {"네가 선호하는 공간은?"}}); err != nil {
		return errors.Wrap(err, "send message")
	}
	if doc.Find(".message-user").Length() != 1 {
		return errors.New("user message not shown after submit")
	}
	if doc.Find(".message-assistant").Length() < 2 {
		return errors.New("assistant reply not shown after submit")
	}

	return nil
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		siteURL  = "https://" + hostname
		client   *e2etest.Client
		err      error
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", siteURL))

	if client, err = e2etest.NewClient(siteURL); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", errors.SlogError(err))
		os.Exit(1)
	}
	if err = TestChatFlow(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing chat flow", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
	os.Exit(0)
}
