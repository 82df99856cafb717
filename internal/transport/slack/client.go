package slack

import (
	"context"

	messageDomain "github.com/reshetovitsme/slack-translate-relay/internal/modules/message/domain"
	messageRepo "github.com/reshetovitsme/slack-translate-relay/internal/modules/message/repository"
	"github.com/reshetovitsme/slack-translate-relay/internal/shared/throttle"
	"github.com/samber/lo"
	"github.com/samber/oops"
	"github.com/slack-go/slack"
	"golang.org/x/time/rate"
)

// Client adapts the Slack Web API to the history, posting and permalink
// repositories. Every call waits on a shared rate limiter.
type Client struct {
	api     *slack.Client
	limiter *rate.Limiter
}

// New creates a Slack client. apiURL overrides the Web API base URL when set.
func New(token, apiURL string, requestsPerSecond float64) *Client {
	var opts []slack.Option
	if apiURL != "" {
		opts = append(opts, slack.OptionAPIURL(apiURL))
	}

	return &Client{
		api:     slack.New(token, opts...),
		limiter: throttle.NewLimiter(requestsPerSecond),
	}
}

// History returns one page of channel history, newest first
func (c *Client) History(ctx context.Context, channelID, oldest, latest string, limit int) (*messageRepo.Page, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, oops.In("slack").With("channel_id", channelID).Wrap(err)
	}

	resp, err := c.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Oldest:    oldest,
		Latest:    latest,
		Limit:     limit,
	})
	if err != nil {
		return nil, oops.In("slack").With("channel_id", channelID, "oldest", oldest, "latest", latest).Wrap(err)
	}

	messages := lo.Map(resp.Messages, func(m slack.Message, _ int) *messageDomain.Message {
		return &messageDomain.Message{
			Timestamp: m.Timestamp,
			User:      m.User,
			Username:  m.Username,
			Text:      m.Text,
			BotID:     m.BotID,
			Subtype:   m.SubType,
		}
	})

	return &messageRepo.Page{
		Messages: messages,
		HasMore:  resp.HasMore,
	}, nil
}

// Post posts text to channelID, as a thread reply when parentTS is set
func (c *Client) Post(ctx context.Context, channelID, text, parentTS string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", oops.In("slack").With("channel_id", channelID).Wrap(err)
	}

	opts := []slack.MsgOption{slack.MsgOptionText(text, false)}
	if parentTS != "" {
		opts = append(opts, slack.MsgOptionTS(parentTS))
	}

	_, ts, err := c.api.PostMessageContext(ctx, channelID, opts...)
	if err != nil {
		return "", oops.In("slack").With("channel_id", channelID, "thread_ts", parentTS).Wrap(err)
	}

	return ts, nil
}

// Permalink returns the permanent URL of message ts in channelID
func (c *Client) Permalink(ctx context.Context, channelID, ts string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", oops.In("slack").With("channel_id", channelID).Wrap(err)
	}

	link, err := c.api.GetPermalinkContext(ctx, &slack.PermalinkParameters{
		Channel: channelID,
		Ts:      ts,
	})
	if err != nil {
		return "", oops.In("slack").With("channel_id", channelID, "ts", ts).Wrap(err)
	}

	return link, nil
}
