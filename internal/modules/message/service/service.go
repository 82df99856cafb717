package service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/reshetovitsme/slack-translate-relay/internal/modules/message/domain"
	"github.com/reshetovitsme/slack-translate-relay/internal/modules/message/repository"
	windowDomain "github.com/reshetovitsme/slack-translate-relay/internal/modules/window/domain"
	"github.com/samber/lo"
)

// Service fetches and filters source channel messages
type Service struct {
	repo  repository.Repository
	limit int
}

// New creates a new message service
func New(repo repository.Repository, limit int) *Service {
	return &Service{
		repo:  repo,
		limit: limit,
	}
}

// Fetch returns the single page of messages posted to channelID within w.
// Remote errors are logged and yield no messages.
func (s *Service) Fetch(ctx context.Context, channelID string, w windowDomain.Window) []*domain.Message {
	oldest, latest := w.Bounds()

	page, err := s.repo.History(ctx, channelID, oldest, latest, s.limit)
	if err != nil {
		slog.Error("Error fetching channel history", "channel_id", channelID, "oldest", oldest, "latest", latest, "error", err)
		return []*domain.Message{}
	}

	if page == nil {
		return []*domain.Message{}
	}

	if page.HasMore {
		slog.Warn("History has more messages than one page, excess dropped", "channel_id", channelID, "limit", s.limit)
	}

	return page.Messages
}

// Eligible returns the messages worth translating, oldest first.
func (s *Service) Eligible(messages []*domain.Message) []*domain.Message {
	eligible := lo.Filter(messages, func(m *domain.Message, _ int) bool {
		return IsEligible(m)
	})

	slices.SortStableFunc(eligible, func(a, b *domain.Message) int {
		return domain.CompareTimestamps(a.Timestamp, b.Timestamp)
	})

	return eligible
}

// IsEligible reports whether m carries text, was posted by a person and is a
// plain message rather than an edit, join or other event.
func IsEligible(m *domain.Message) bool {
	return m != nil && m.Text != "" && !m.IsAutomated() && m.Subtype == ""
}
