package repository

import "context"

// Model defines a text-to-text language model
type Model interface {
	Complete(ctx context.Context, instruction, input string) (string, error)
	Name() string
}
