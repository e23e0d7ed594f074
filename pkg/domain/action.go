package domain

import "context"

// Action is the work performed by a finite menu.
// It receives the program's queued arguments as positional values; the
// returned result is handed back to whoever started the loop.
type Action func(ctx context.Context, args ...any) (any, error)
