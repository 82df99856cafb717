package repository

import "context"

// Poster defines write access to a destination channel.
// An empty parentTS posts at the top level of the channel.
type Poster interface {
	Post(ctx context.Context, channelID, text, parentTS string) (string, error)
}

// Linker resolves stable links to source messages
type Linker interface {
	Permalink(ctx context.Context, channelID, ts string) (string, error)
}
