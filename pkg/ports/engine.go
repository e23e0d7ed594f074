package ports

import (
	"context"

	"github.com/aretw0/finiteconsole/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
type IOHandler interface {
	// Output presents the current menu.
	Output(ctx context.Context, view domain.View) error

	// Input blocks until the next input token is available or ctx is done.
	// It returns io.EOF when the source is exhausted.
	Input(ctx context.Context) (string, error)

	// Notice presents a meta-message (e.g. an unknown option) without changing menus.
	Notice(ctx context.Context, msg string) error
}

// Inspector gives read-only access to a program's graph and loop state.
type Inspector interface {
	Menus() []*domain.Menu
	InitMenu() *domain.Menu
	Current() *domain.Menu
	IsRunning() bool
	ResolveDependencies() domain.Diagnostics
}
