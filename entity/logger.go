package entity

import "context"

// Logger specifies a contextual, structured logger.
type Logger interface {
	Info(ctx context.Context, msg string, kv ...any)
	Error(ctx context.Context, msg string, err error, kv ...any)
}

// Discard is a Logger that drops everything.
type Discard struct{}

func (Discard) Info(ctx context.Context, msg string, kv ...any) {}

func (Discard) Error(ctx context.Context, msg string, err error, kv ...any) {}
