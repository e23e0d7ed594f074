package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/finiteconsole/pkg/domain"
)

// ErrActionNotFound is returned when a name has no registered action.
var ErrActionNotFound = errors.New("action not found")

// Registry maps names to actions so graphs loaded from files can bind finite menus.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]domain.Action
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]domain.Action),
	}
}

// NewWithBuiltins creates a registry preloaded with the builtin actions.
func NewWithBuiltins() *Registry {
	r := NewRegistry()
	RegisterBuiltins(r)
	return r
}

// Register adds an action to the registry.
// If an action with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn domain.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[name] = fn
}

// Lookup returns the action registered under name.
func (r *Registry) Lookup(name string) (domain.Action, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.actions[name]
	return fn, ok
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute looks up an action by name and runs it.
func (r *Registry) Execute(ctx context.Context, name string, args ...any) (any, error) {
	fn, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrActionNotFound, name)
	}
	return fn(ctx, args...)
}
