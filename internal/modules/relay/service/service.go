package service

import (
	"context"
	"log/slog"

	messageDomain "github.com/reshetovitsme/slack-translate-relay/internal/modules/message/domain"
	messageService "github.com/reshetovitsme/slack-translate-relay/internal/modules/message/service"
	publishService "github.com/reshetovitsme/slack-translate-relay/internal/modules/publish/service"
	"github.com/reshetovitsme/slack-translate-relay/internal/modules/relay/domain"
	translationService "github.com/reshetovitsme/slack-translate-relay/internal/modules/translation/service"
	windowService "github.com/reshetovitsme/slack-translate-relay/internal/modules/window/service"
	"github.com/samber/lo"
)

// Service runs one fetch, translate and publish pass over the source channel
type Service struct {
	window        *windowService.Service
	messages      *messageService.Service
	translator    *translationService.Service
	publisher     *publishService.Service
	sourceChannel string
}

// New creates a new relay service
func New(
	window *windowService.Service,
	messages *messageService.Service,
	translator *translationService.Service,
	publisher *publishService.Service,
	sourceChannel string,
) *Service {
	return &Service{
		window:        window,
		messages:      messages,
		translator:    translator,
		publisher:     publisher,
		sourceChannel: sourceChannel,
	}
}

// Run processes every eligible message of the current window, oldest first.
// A failing message is logged and skipped; Run always completes.
func (s *Service) Run(ctx context.Context) domain.Report {
	slog.Info("Starting translation run", "channel_id", s.sourceChannel)

	w := s.window.Current()
	slog.Info("Processing period", "period", w.String())

	fetched := s.messages.Fetch(ctx, s.sourceChannel, w)
	slog.Info("Messages retrieved", "count", len(fetched))

	eligible := s.messages.Eligible(fetched)
	report := domain.Report{
		Fetched:  len(fetched),
		Eligible: len(eligible),
	}

	for _, msg := range eligible {
		s.process(ctx, msg, &report)
	}

	slog.Info("Translation run finished", report.LogAttrs()...)

	return report
}

func (s *Service) process(ctx context.Context, msg *messageDomain.Message, report *domain.Report) {
	slog.Info("Original message", "ts", msg.Timestamp, "user", msg.User, "text", preview(msg.Text, 50))

	translated := s.translator.Translate(ctx, msg.Text)
	if translated.IsError() {
		slog.Warn("Translation failed, message skipped", "ts", msg.Timestamp, "text", preview(msg.Text, 50))
		report.Failed++
		return
	}

	text := translated.MustGet()
	if text == "" {
		slog.Info("Nothing to translate, message skipped", "ts", msg.Timestamp)
		report.Skipped++
		return
	}
	report.Translated++

	delivered := s.publisher.Relay(ctx, msg, text)
	if delivered.IsError() {
		slog.Warn("Publishing failed, message skipped", "ts", msg.Timestamp)
		report.Failed++
		return
	}
	report.Posted++

	delivery := delivered.MustGet()
	if delivery.Permalink.IsPresent() {
		report.Linked++
	} else {
		report.LinkFallbacks++
	}
}

// preview shortens s to n runes for log lines, keeping multi-byte text intact
func preview(s string, n int) string {
	if lo.RuneLength(s) <= n {
		return s
	}
	return lo.Substring(s, 0, uint(n)) + "..."
}
