package repository

import (
	"context"

	"github.com/reshetovitsme/slack-translate-relay/internal/modules/message/domain"
)

// Page is one page of channel history
type Page struct {
	Messages []*domain.Message
	HasMore  bool
}

// Repository defines read access to a channel's message history.
// Implementations return messages newest first, as the chat service does.
// A nil page with a nil error is read as an empty window.
type Repository interface {
	History(ctx context.Context, channelID, oldest, latest string, limit int) (*Page, error)
}
