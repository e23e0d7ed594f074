package dsl

import (
	"fmt"

	"github.com/aretw0/finiteconsole/pkg/domain"
	"github.com/aretw0/finiteconsole/pkg/loader"
)

// Builder manages the graph construction.
type Builder struct {
	init  string
	args  []any
	order []string
	menus map[string]*MenuBuilder
}

// New creates a new graph builder.
func New() *Builder {
	return &Builder{
		menus: make(map[string]*MenuBuilder),
	}
}

// Menu adds a menu to the graph.
// If the menu already exists, it returns the existing builder.
func (b *Builder) Menu(id string) *MenuBuilder {
	if mb, ok := b.menus[id]; ok {
		return mb
	}
	mb := &MenuBuilder{def: loader.MenuDef{ID: id}}
	b.menus[id] = mb
	b.order = append(b.order, id)
	return mb
}

// Init sets the initial menu.
func (b *Builder) Init(id string) *Builder {
	b.init = id
	return b
}

// Args appends to the argument queue handed to finite menu actions.
func (b *Builder) Args(args ...any) *Builder {
	b.args = append(b.args, args...)
	return b
}

// Definition returns the graph in loader form. Finite menus name their action
// after the menu id.
func (b *Builder) Definition() *loader.Definition {
	def := &loader.Definition{
		Init:  b.init,
		Args:  append([]any(nil), b.args...),
		Menus: make([]loader.MenuDef, 0, len(b.order)),
	}
	for _, id := range b.order {
		md := b.menus[id].def
		md.Options = append([]loader.OptionDef(nil), md.Options...)
		if b.menus[id].action != nil {
			md.Action = id
		}
		def.Menus = append(def.Menus, md)
	}
	return def
}

// Build registers the graph into t.
func (b *Builder) Build(t loader.Target) error {
	if err := b.Err(); err != nil {
		return err
	}
	return loader.Build(t, actionTable(b.menus), b.Definition())
}

// Err reports the first option declared without input or destination.
func (b *Builder) Err() error {
	for _, id := range b.order {
		for _, o := range b.menus[id].def.Options {
			if o.Inp == "" || o.To == "" {
				return fmt.Errorf("%w: menu %q has an incomplete option", loader.ErrInvalidDefinition, id)
			}
		}
	}
	return nil
}

type actionTable map[string]*MenuBuilder

func (t actionTable) Lookup(name string) (domain.Action, bool) {
	mb, ok := t[name]
	if !ok || mb.action == nil {
		return nil, false
	}
	return mb.action, true
}
