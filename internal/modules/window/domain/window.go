package domain

import (
	"fmt"
	"time"
)

const (
	// Lookback is how far back each run reaches from "now".
	Lookback = 24 * time.Hour
	// SourceTimezone anchors "now" and renders source post times.
	SourceTimezone = "Asia/Tokyo"
)

// Window is the [Oldest, Latest) range of one run, in UTC
type Window struct {
	Oldest time.Time `json:"oldest"`
	Latest time.Time `json:"latest"`
}

// Calculate returns the window ending at now and spanning lookback.
func Calculate(now time.Time, loc *time.Location, lookback time.Duration) Window {
	anchored := now.In(loc)
	return Window{
		Oldest: anchored.Add(-lookback).UTC(),
		Latest: anchored.UTC(),
	}
}

// Bounds renders the window as Slack timestamp strings.
func (w Window) Bounds() (oldest, latest string) {
	return FormatTimestamp(w.Oldest), FormatTimestamp(w.Latest)
}

func (w Window) String() string {
	return fmt.Sprintf("%s to %s",
		w.Oldest.Format("2006-01-02 15:04:05 UTC"),
		w.Latest.Format("2006-01-02 15:04:05 UTC"))
}

// FormatTimestamp renders t as "<unix seconds>.<microseconds>".
func FormatTimestamp(t time.Time) string {
	return fmt.Sprintf("%d.%06d", t.Unix(), t.Nanosecond()/int(time.Microsecond))
}
