package domain

import "github.com/samber/mo"

// PublishedMessage is a message posted to the destination
type PublishedMessage struct {
	Channel         string `json:"channel"`
	Timestamp       string `json:"ts"`
	ParentTimestamp string `json:"thread_ts,omitempty"`
}

// IsReply reports whether the message was threaded under another one
func (p PublishedMessage) IsReply() bool {
	return p.ParentTimestamp != ""
}

// Delivery is the outcome of relaying one translated message
type Delivery struct {
	Translation PublishedMessage
	Reply       mo.Option[PublishedMessage]
	Permalink   mo.Option[string]
}
