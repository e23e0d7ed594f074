package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"go.uber.org/atomic"

	"github.com/aretw0/finiteconsole/internal/logging"
	"github.com/aretw0/finiteconsole/pkg/domain"
)

// Program owns the menu registry and drives the interactive loop over it.
// It is an explicit context object: building menus and options has no side
// effects, registering them into a Program is a separate step.
type Program struct {
	mu       sync.RWMutex
	menus    map[string]*domain.Menu
	initMenu *domain.Menu
	current  *domain.Menu
	args     []any
	cancel   context.CancelFunc

	running atomic.Bool

	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// ProgramOption configures a Program.
type ProgramOption func(*Program)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) ProgramOption {
	return func(p *Program) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) ProgramOption {
	return func(p *Program) {
		p.hooks = hooks
	}
}

// NewProgram creates an empty program.
func NewProgram(opts ...ProgramOption) *Program {
	p := &Program{
		menus:  make(map[string]*domain.Menu),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Register adds menus to the registry. The batch is applied atomically: a
// duplicate id (already registered or repeated in the batch) fails with
// ErrMenuExists and nothing is registered.
func (p *Program) Register(menus ...*domain.Menu) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	batch := make(map[string]*domain.Menu, len(menus))
	for _, m := range menus {
		if m == nil || m.ID == "" {
			return fmt.Errorf("%w: missing id", domain.ErrInvalidMenu)
		}
		if _, exists := p.menus[m.ID]; exists {
			return fmt.Errorf("%w: %q", domain.ErrMenuExists, m.ID)
		}
		if _, repeated := batch[m.ID]; repeated {
			return fmt.Errorf("%w: %q", domain.ErrMenuExists, m.ID)
		}
		batch[m.ID] = m
	}
	for id, m := range batch {
		p.menus[id] = m
		p.logger.Debug("menu registered", "menu", id, "finite", m.IsFinite())
	}
	return nil
}

// Menu builds a menu and registers it in one step.
func (p *Program) Menu(id any, action domain.Action) (*domain.Menu, error) {
	m := domain.NewMenu(id, action)
	if err := p.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Option builds an option whose destination is resolved against the registry
// right away. out may be a *domain.Menu, a domain.Target or a menu id.
func (p *Program) Option(inp, out any, label string) (*domain.Option, error) {
	opt, err := domain.NewOption(inp, domain.TargetOf(out), label)
	if err != nil {
		return nil, err
	}
	if err := p.Resolve(opt); err != nil {
		return nil, err
	}
	return opt, nil
}

// Resolve binds a by-id option target to the registered menu.
func (p *Program) Resolve(opt *domain.Option) error {
	return opt.Resolve(func(id string) (*domain.Menu, bool) {
		return p.Lookup(id)
	})
}

// Remove deletes the menu registered under id. Options of other menus that
// still point at it are left in place; ResolveDependencies reports them.
func (p *Program) Remove(id any) bool {
	key := domain.Key(id)

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.menus[key]; !ok {
		return false
	}
	delete(p.menus, key)
	p.logger.Debug("menu removed", "menu", key)
	return true
}

// Lookup returns the menu registered under id.
func (p *Program) Lookup(id any) (*domain.Menu, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	m, ok := p.menus[domain.Key(id)]
	return m, ok
}

// Menus returns the registered menus ordered by id.
func (p *Program) Menus() []*domain.Menu {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.sortedMenusLocked()
}

func (p *Program) sortedMenusLocked() []*domain.Menu {
	menus := make([]*domain.Menu, 0, len(p.menus))
	for _, m := range p.menus {
		menus = append(menus, m)
	}
	sort.Slice(menus, func(i, j int) bool {
		return menus[i].ID < menus[j].ID
	})
	return menus
}

// Len returns the number of registered menus.
func (p *Program) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.menus)
}

// Clear stops any running loop and empties the registry, the initial menu and
// the argument queue.
func (p *Program) Clear() {
	p.Stop()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.menus = make(map[string]*domain.Menu)
	p.initMenu = nil
	p.current = nil
	p.args = nil
}

// SetInitMenu designates the loop's entry point, given as a menu or an id.
// The menu must be registered. When no loop is running the current menu is
// moved there as well.
func (p *Program) SetInitMenu(target any) error {
	id := domain.Key(target)

	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.menus[id]
	if !ok {
		return fmt.Errorf("%w: initial menu %q is not registered", domain.ErrUnresolvedTarget, id)
	}
	if ref, isMenu := target.(*domain.Menu); isMenu && ref != m {
		return fmt.Errorf("%w: menu %q is not the registered instance", domain.ErrUnresolvedTarget, id)
	}
	p.initMenu = m
	if !p.running.Load() {
		p.current = m
	}
	return nil
}

// InitMenu returns the loop's entry point.
func (p *Program) InitMenu() *domain.Menu {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.initMenu
}

// Current returns the active navigation position.
func (p *Program) Current() *domain.Menu {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Reset moves the current menu back to the initial menu.
func (p *Program) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = p.initMenu
}

// PushArgs appends values to the argument queue handed to finite actions.
func (p *Program) PushArgs(args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.args = append(p.args, args...)
}

// Args returns a copy of the argument queue.
func (p *Program) Args() []any {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]any, len(p.args))
	copy(out, p.args)
	return out
}

// ClearArgs empties the argument queue.
func (p *Program) ClearArgs() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.args = nil
}

// IsRunning reports whether a loop is active.
func (p *Program) IsRunning() bool {
	return p.running.Load()
}
