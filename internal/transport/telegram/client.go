package telegram

import (
	"context"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/slack-translate-relay/internal/shared/errors"
	"github.com/reshetovitsme/slack-translate-relay/internal/shared/throttle"
	"github.com/samber/oops"
	"golang.org/x/time/rate"
)

// Client posts translations to a Telegram chat. Message IDs stand in for
// timestamps, and thread replies become Telegram replies.
type Client struct {
	bot     *bot.Bot
	limiter *rate.Limiter
}

// New creates a Telegram destination client
func New(token string, requestsPerSecond float64, opts ...bot.Option) (*Client, error) {
	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, oops.In("telegram").With("context", "failed to create telegram bot").Wrap(err)
	}

	return &Client{
		bot:     b,
		limiter: throttle.NewLimiter(requestsPerSecond),
	}, nil
}

// Post sends text to chatID, replying to parentID when it is set
func (c *Client) Post(ctx context.Context, chatID, text, parentID string) (string, error) {
	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}

	if parentID != "" {
		replyTo, err := strconv.Atoi(parentID)
		if err != nil {
			return "", oops.In("telegram").With("chat_id", chatID, "parent_id", parentID).Wrap(errors.ErrInvalidParentTimestamp)
		}
		params.ReplyParameters = &models.ReplyParameters{MessageID: replyTo}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", oops.In("telegram").With("chat_id", chatID).Wrap(err)
	}

	msg, err := c.bot.SendMessage(ctx, params)
	if err != nil {
		return "", oops.In("telegram").With("chat_id", chatID, "parent_id", parentID).Wrap(err)
	}

	return strconv.Itoa(msg.ID), nil
}

