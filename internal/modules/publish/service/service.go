package service

import (
	"context"
	"log/slog"
	"time"

	messageDomain "github.com/reshetovitsme/slack-translate-relay/internal/modules/message/domain"
	"github.com/reshetovitsme/slack-translate-relay/internal/modules/publish/domain"
	"github.com/reshetovitsme/slack-translate-relay/internal/modules/publish/repository"
	"github.com/samber/mo"
	"github.com/samber/oops"
)

// Service posts translations to the destination and links them back to the source
type Service struct {
	poster        repository.Poster
	linker        repository.Linker
	sourceChannel string
	destination   string
	location      *time.Location
}

// New creates a new publish service
func New(poster repository.Poster, linker repository.Linker, sourceChannel, destination string, loc *time.Location) *Service {
	return &Service{
		poster:        poster,
		linker:        linker,
		sourceChannel: sourceChannel,
		destination:   destination,
		location:      loc,
	}
}

// Post posts text to channelID, threaded under parentTS when it is set
func (s *Service) Post(ctx context.Context, channelID, text, parentTS string) mo.Result[domain.PublishedMessage] {
	ts, err := s.poster.Post(ctx, channelID, text, parentTS)
	if err != nil {
		slog.Error("Error posting message", "channel_id", channelID, "thread_ts", parentTS, "error", err)
		return mo.Err[domain.PublishedMessage](oops.With("channel_id", channelID, "thread_ts", parentTS).Wrap(err))
	}

	slog.Info("Message posted", "channel_id", channelID, "ts", ts, "thread_ts", parentTS)

	return mo.Ok(domain.PublishedMessage{
		Channel:         channelID,
		Timestamp:       ts,
		ParentTimestamp: parentTS,
	})
}

// Permalink resolves a stable link to the message ts in channelID
func (s *Service) Permalink(ctx context.Context, channelID, ts string) mo.Result[string] {
	link, err := s.linker.Permalink(ctx, channelID, ts)
	if err != nil {
		slog.Error("Error getting permalink", "channel_id", channelID, "ts", ts, "error", err)
		return mo.Err[string](oops.With("channel_id", channelID, "ts", ts).Wrap(err))
	}

	return mo.Ok(link)
}

// Relay posts the translation of src and threads a link back to src under it.
// The reply is always attempted once the translation is posted; a missing
// permalink is replaced by a fallback notice.
func (s *Service) Relay(ctx context.Context, src *messageDomain.Message, translated string) mo.Result[domain.Delivery] {
	posted := s.Post(ctx, s.destination, FormatTranslation(src, translated, s.location), "")
	if posted.IsError() {
		return mo.Err[domain.Delivery](posted.Error())
	}

	delivery := domain.Delivery{
		Translation: posted.MustGet(),
		Reply:       mo.None[domain.PublishedMessage](),
		Permalink:   mo.None[string](),
	}

	replyText := PermalinkFallback()
	if link := s.Permalink(ctx, s.sourceChannel, src.Timestamp); link.IsOk() {
		delivery.Permalink = mo.Some(link.MustGet())
		replyText = FormatPermalinkReply(link.MustGet())
	}

	if reply := s.Post(ctx, s.destination, replyText, delivery.Translation.Timestamp); reply.IsOk() {
		delivery.Reply = mo.Some(reply.MustGet())
	}

	return mo.Ok(delivery)
}
