package service

import (
	"fmt"
	"time"

	messageDomain "github.com/reshetovitsme/slack-translate-relay/internal/modules/message/domain"
)

const (
	permalinkReplyFormat = "Original message: %s"
	permalinkFallback    = "Original message link not available"
	translationFormat    = "--- Translated Post ---\nOriginal:\n```%s```\n\nTranslation:\n```%s```\n%s"
)

// FormatTranslation renders the source text and its translation side by side,
// followed by an attribution line naming the original poster and the source
// post time in loc.
func FormatTranslation(src *messageDomain.Message, translated string, loc *time.Location) string {
	poster := "unknown"
	switch {
	case src.User != "":
		poster = fmt.Sprintf("<@%s>", src.User)
	case src.Username != "":
		poster = src.Username
	}

	attribution := fmt.Sprintf("(_Original poster: %s_)", poster)
	if postedAt, err := src.Time(); err == nil {
		attribution = fmt.Sprintf("(_Original poster: %s, Posted at: %s_)",
			poster, postedAt.In(loc).Format("2006-01-02 15:04:05 MST"))
	}

	return fmt.Sprintf(translationFormat, src.Text, translated, attribution)
}

// FormatPermalinkReply renders the threaded reply pointing back to the source.
func FormatPermalinkReply(permalink string) string {
	return fmt.Sprintf(permalinkReplyFormat, permalink)
}

// PermalinkFallback is posted when the source permalink cannot be resolved.
func PermalinkFallback() string {
	return permalinkFallback
}
