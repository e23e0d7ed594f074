package domain

import "fmt"

// Option is an input-keyed edge leading to another menu.
// Once its target is resolved an option does not change.
type Option struct {
	Inp    string
	Label  string
	Target Target

	out *Menu
}

// NewOption builds an option. A by-reference target is resolved immediately;
// a by-id target must be resolved against a registry before the option can be
// appended to a menu.
func NewOption(inp any, out Target, label string) (*Option, error) {
	key := Key(inp)
	if key == "" {
		return nil, fmt.Errorf("%w: missing input", ErrInvalidOption)
	}
	if out.IsZero() {
		return nil, fmt.Errorf("%w: option %q has no target", ErrInvalidOption, key)
	}
	return &Option{
		Inp:    key,
		Label:  label,
		Target: out,
		out:    out.Ref(),
	}, nil
}

// Out returns the destination menu, or nil while the target is unresolved.
func (o *Option) Out() *Menu {
	return o.out
}

// Resolve binds a by-id target using lookup. It is a no-op once resolved.
func (o *Option) Resolve(lookup func(id string) (*Menu, bool)) error {
	if o.out != nil {
		return nil
	}
	m, ok := lookup(o.Target.ID())
	if !ok || m == nil {
		return fmt.Errorf("%w: no menu %q for option %q", ErrUnresolvedTarget, o.Target.ID(), o.Inp)
	}
	o.out = m
	return nil
}

// Text returns the label, falling back to the destination id.
func (o *Option) Text() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Target.ID()
}
