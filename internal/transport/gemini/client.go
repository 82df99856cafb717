package gemini

import (
	"context"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/reshetovitsme/slack-translate-relay/internal/shared/errors"
	"github.com/samber/oops"
)

// Client talks to Gemini through its OpenAI-compatible chat completions endpoint
type Client struct {
	openai openai.Client
	model  string
}

// New creates a Gemini client. Failed requests are not retried.
func New(apiKey, baseURL, model string) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &Client{
		openai: openai.NewClient(opts...),
		model:  model,
	}
}

// Complete sends instruction as the system prompt and input as the user
// message, returning the model's reply.
func (c *Client) Complete(ctx context.Context, instruction, input string) (string, error) {
	start := time.Now()

	resp, err := c.openai.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(instruction),
			openai.UserMessage(input),
		},
	})
	if err != nil {
		return "", oops.In("gemini").With("model", c.model).Wrap(err)
	}

	slog.DebugContext(ctx, "gemini completion finished",
		"model", c.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	if len(resp.Choices) == 0 {
		return "", oops.In("gemini").With("model", c.model).Wrap(errors.ErrEmptyTranslation)
	}

	return resp.Choices[0].Message.Content, nil
}

// Name returns the model name
func (c *Client) Name() string {
	return c.model
}
