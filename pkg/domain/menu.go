package domain

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
)

// Menu is a node of the navigation graph.
// A menu with an Action is finite: reaching it runs the action and ends the loop.
// A menu without an Action is a navigation point and needs options to lead anywhere.
type Menu struct {
	ID     string
	Title  string
	Action Action

	mu      sync.RWMutex
	options map[string]*Option
}

// NewMenu builds a menu. It does not register it anywhere.
func NewMenu(id any, action Action) *Menu {
	return &Menu{
		ID:      Key(id),
		Action:  action,
		options: make(map[string]*Option),
	}
}

// WithTitle sets the human readable title shown by renderers.
func (m *Menu) WithTitle(title string) *Menu {
	m.Title = title
	return m
}

// IsFinite reports whether the menu is terminal.
func (m *Menu) IsFinite() bool {
	return m.Action != nil
}

// Append adds options to the menu. The batch is applied atomically: if any
// input is already taken (or repeated inside the batch) the menu is left untouched
// and ErrUndeterminedOption is returned.
func (m *Menu) Append(opts ...*Option) (*Menu, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	batch := make(map[string]*Option, len(opts))
	for _, opt := range opts {
		if opt == nil || opt.Inp == "" {
			return m, fmt.Errorf("%w: menu %q got an option without input", ErrInvalidOption, m.ID)
		}
		if opt.Out() == nil {
			return m, fmt.Errorf("%w: option %q of menu %q points to %q", ErrUnresolvedTarget, opt.Inp, m.ID, opt.Target.ID())
		}
		if _, taken := m.options[opt.Inp]; taken {
			return m, fmt.Errorf("%w: menu %q already maps input %q", ErrUndeterminedOption, m.ID, opt.Inp)
		}
		if _, repeated := batch[opt.Inp]; repeated {
			return m, fmt.Errorf("%w: input %q appears twice for menu %q", ErrUndeterminedOption, opt.Inp, m.ID)
		}
		batch[opt.Inp] = opt
	}

	if m.options == nil {
		m.options = make(map[string]*Option, len(batch))
	}
	for inp, opt := range batch {
		m.options[inp] = opt
	}
	return m, nil
}

// RemoveOptions detaches options by instance or by input key.
// An *Option is only removed if it is the instance registered for its input.
// Absent targets are ignored.
func (m *Menu) RemoveOptions(targets ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, target := range targets {
		switch t := target.(type) {
		case *Option:
			if t == nil {
				continue
			}
			if current, ok := m.options[t.Inp]; ok && current == t {
				delete(m.options, t.Inp)
			}
		default:
			delete(m.options, Key(t))
		}
	}
}

// Option returns the option mapped to the given input.
func (m *Menu) Option(inp any) (*Option, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	opt, ok := m.options[Key(inp)]
	return opt, ok
}

// Options returns the options ordered by input. Numeric inputs sort numerically
// and before textual ones.
func (m *Menu) Options() []*Option {
	m.mu.RLock()
	opts := make([]*Option, 0, len(m.options))
	for _, opt := range m.options {
		opts = append(opts, opt)
	}
	m.mu.RUnlock()

	sort.Slice(opts, func(i, j int) bool {
		return lessInput(opts[i].Inp, opts[j].Inp)
	})
	return opts
}

// Len returns the number of options.
func (m *Menu) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.options)
}

// Clear drops every option.
func (m *Menu) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.options = make(map[string]*Option)
}

func (m *Menu) String() string {
	if m == nil {
		return "<nil>"
	}
	return m.ID
}

func lessInput(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}
