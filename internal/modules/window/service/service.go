package service

import (
	"time"

	"github.com/reshetovitsme/slack-translate-relay/internal/modules/window/domain"
	"github.com/samber/oops"
)

// Service computes the look-back window of the current run
type Service struct {
	clock    func() time.Time
	location *time.Location
}

// New creates a window service anchored to the source timezone
func New(clock func() time.Time) (*Service, error) {
	loc, err := time.LoadLocation(domain.SourceTimezone)
	if err != nil {
		return nil, oops.With("timezone", domain.SourceTimezone, "context", "failed to load source timezone").Wrap(err)
	}

	if clock == nil {
		clock = time.Now
	}

	return &Service{
		clock:    clock,
		location: loc,
	}, nil
}

// Current returns the window ending now
func (s *Service) Current() domain.Window {
	return domain.Calculate(s.clock(), s.location, domain.Lookback)
}

// Location returns the source timezone
func (s *Service) Location() *time.Location {
	return s.location
}
