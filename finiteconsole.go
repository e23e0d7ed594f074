package finiteconsole

import (
	"log/slog"
	"sync"

	"github.com/aretw0/finiteconsole/internal/runtime"
	"github.com/aretw0/finiteconsole/pkg/domain"
	"github.com/aretw0/finiteconsole/pkg/loader"
)

// Errors re-exported for callers that only import the root package.
var (
	ErrProgramExists   = domain.ErrProgramExists
	ErrAlreadyRunning  = domain.ErrAlreadyRunning
	ErrUnresolvedGraph = domain.ErrUnresolvedGraph
)

// Program is the process-wide menu program.
type Program struct {
	*runtime.Program
}

// Option defines a functional option for configuring the Program.
type Option func(*options)

type options struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

var (
	slotMu sync.Mutex
	slot   *Program
)

// New creates the program and makes it current.
// It fails with ErrProgramExists while another program is live.
func New(opts ...Option) (*Program, error) {
	slotMu.Lock()
	defer slotMu.Unlock()

	if slot != nil {
		return nil, ErrProgramExists
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	p := &Program{Program: runtime.NewProgram(
		runtime.WithLogger(o.logger),
		runtime.WithLifecycleHooks(o.hooks),
	)}
	slot = p
	return p, nil
}

// Current returns the live program, or nil.
func Current() *Program {
	slotMu.Lock()
	defer slotMu.Unlock()
	return slot
}

// Drop stops the loop, clears the registry and frees the slot. It is idempotent,
// and a dropped program never frees the slot of a newer one.
func (p *Program) Drop() {
	p.Clear()

	slotMu.Lock()
	defer slotMu.Unlock()
	if slot == p {
		slot = nil
	}
}

// LoadFile reads a graph definition and builds it into p.
func (p *Program) LoadFile(path string, actions loader.Actions) error {
	def, err := loader.Load(path)
	if err != nil {
		return err
	}
	return loader.Build(p, actions, def)
}
