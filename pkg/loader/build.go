package loader

import (
	"errors"
	"fmt"

	"github.com/aretw0/finiteconsole/pkg/domain"
)

// ErrUnknownAction is returned when a menu names an action the registry lacks.
var ErrUnknownAction = errors.New("unknown action")

// Target is the program a definition is built into.
type Target interface {
	Register(menus ...*domain.Menu) error
	Remove(id any) bool
	Option(inp, out any, label string) (*domain.Option, error)
	SetInitMenu(target any) error
	PushArgs(args ...any)
}

// Actions resolves action names.
type Actions interface {
	Lookup(name string) (domain.Action, bool)
}

// Build registers every menu of def, links their options and sets the initial
// menu and argument queue. Menus are registered as one batch before any option
// is resolved, so forward references work. On failure every menu registered by
// this call is removed again and t is left as it was.
func Build(t Target, actions Actions, def *Definition) (err error) {
	menus := make([]*domain.Menu, 0, len(def.Menus))
	for _, md := range def.Menus {
		var action domain.Action
		if md.Action != "" {
			fn, ok := lookup(actions, md.Action)
			if !ok {
				return fmt.Errorf("%w: %q in menu %q", ErrUnknownAction, md.Action, md.ID)
			}
			action = fn
		}
		menus = append(menus, domain.NewMenu(md.ID, action).WithTitle(md.Title))
	}
	if err := t.Register(menus...); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			for _, m := range menus {
				t.Remove(m.ID)
			}
		}
	}()

	for i, md := range def.Menus {
		opts := make([]*domain.Option, 0, len(md.Options))
		for _, od := range md.Options {
			opt, err := t.Option(od.Inp, od.To, od.Label)
			if err != nil {
				return fmt.Errorf("menu %q: %w", md.ID, err)
			}
			opts = append(opts, opt)
		}
		if _, err := menus[i].Append(opts...); err != nil {
			return fmt.Errorf("menu %q: %w", md.ID, err)
		}
	}

	if def.Init != "" {
		if err := t.SetInitMenu(def.Init); err != nil {
			return err
		}
	}
	t.PushArgs(def.Args...)
	return nil
}

func lookup(actions Actions, name string) (domain.Action, bool) {
	if actions == nil {
		return nil, false
	}
	return actions.Lookup(name)
}
