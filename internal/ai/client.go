package ai

import (
	"context"
	"log/slog"
	"time"

	"github.com/parkdui/LG-Thingo/internal/errors"
	"github.com/parkdui/LG-Thingo/internal/models"
	"github.com/sashabaranov/go-openai"
)

// Sampling parameters are fixed product decisions, matched to the live
// Thingo deployment.
const (
	model       = openai.GPT4oMini
	temperature = 0.7
	maxTokens   = 500
)

var (
	// ErrServiceUnavailable means the provider credentials are missing.
	// Fatal for the request, never retried.
	ErrServiceUnavailable = errors.NewSentinel("chat provider not configured")
	// ErrUpstream means the provider call failed or returned an
	// unrecognized shape. Surfaced to the caller, never retried.
	ErrUpstream = errors.NewSentinel("chat provider call failed")
	// ErrTimeout means the provider did not answer within the configured
	// deadline.
	ErrTimeout = errors.NewSentinel("chat provider timed out")
)

// Client wraps the OpenAI chat completion API behind the single-exchange
// contract the conversation flow needs.
type Client struct {
	client  *openai.Client
	timeout time.Duration
}

// NewClient creates a chat completion client. An empty apiKey is allowed;
// the missing credential surfaces as ErrServiceUnavailable on the first call
// rather than at startup, so the rest of the app stays usable.
func NewClient(apiKey string, timeout time.Duration) *Client {
	var client *openai.Client
	if apiKey != "" {
		client = openai.NewClient(apiKey)
	}
	return &Client{
		client:  client,
		timeout: timeout,
	}
}

// Complete performs one chat completion exchange: the system prompt is
// prepended to the transcript and the first completion's text is returned.
// Exactly one attempt, no retry, no backoff.
func (c *Client) Complete(ctx context.Context, systemPrompt string, transcript models.Transcript) (string, error) {
	if c.client == nil {
		return "", errors.Wrap(ErrServiceUnavailable, "missing API key")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, len(transcript)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, turn := range transcript {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}

	completion, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{ //nolint:exhaustruct // this is better for readability
		Model:       model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages:    messages,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", errors.Wrap(ErrTimeout, "create chat completion",
				slog.Duration("timeout", c.timeout))
		}
		return "", errors.Wrap(ErrUpstream, err.Error())
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", errors.Wrap(ErrUpstream, "empty completion")
	}
	return completion.Choices[0].Message.Content, nil
}
