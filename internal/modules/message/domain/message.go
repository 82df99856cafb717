package domain

import (
	"cmp"
	"strconv"
	"strings"
	"time"

	"github.com/reshetovitsme/slack-translate-relay/internal/shared/errors"
	"github.com/samber/oops"
)

// Message represents a source channel message as returned by the history service
type Message struct {
	Timestamp string `json:"ts"`
	User      string `json:"user"`
	Username  string `json:"username,omitempty"`
	Text      string `json:"text"`
	BotID     string `json:"bot_id,omitempty"`
	Subtype   string `json:"subtype,omitempty"`
}

// IsAutomated reports whether the message was posted by a bot or integration
func (m *Message) IsAutomated() bool {
	return m.BotID != ""
}

// Time returns the instant encoded in the message timestamp
func (m *Message) Time() (time.Time, error) {
	return ParseTimestamp(m.Timestamp)
}

// ParseTimestamp parses a "<unix seconds>.<fraction>" timestamp.
func ParseTimestamp(ts string) (time.Time, error) {
	secPart, fracPart, _ := strings.Cut(ts, ".")

	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return time.Time{}, oops.With("ts", ts).Wrap(errors.ErrInvalidTimestamp)
	}

	var nsec int64
	if fracPart != "" {
		if len(fracPart) > 9 {
			fracPart = fracPart[:9]
		}
		frac, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil || frac < 0 {
			return time.Time{}, oops.With("ts", ts).Wrap(errors.ErrInvalidTimestamp)
		}
		for i := len(fracPart); i < 9; i++ {
			frac *= 10
		}
		nsec = frac
	}

	return time.Unix(sec, nsec).UTC(), nil
}

// CompareTimestamps orders two timestamps chronologically. Unparseable
// timestamps sort before valid ones and fall back to string order.
func CompareTimestamps(a, b string) int {
	ta, errA := ParseTimestamp(a)
	tb, errB := ParseTimestamp(b)

	switch {
	case errA != nil && errB != nil:
		return strings.Compare(a, b)
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	}

	return cmp.Compare(ta.UnixNano(), tb.UnixNano())
}
