package dsl

import (
	"github.com/aretw0/finiteconsole/pkg/domain"
	"github.com/aretw0/finiteconsole/pkg/loader"
)

// MenuBuilder provides a fluent API for configuring a menu.
type MenuBuilder struct {
	def    loader.MenuDef
	action domain.Action
}

// Title sets the heading shown when the menu is rendered.
func (m *MenuBuilder) Title(title string) *MenuBuilder {
	m.def.Title = title
	return m
}

// Option adds an edge selected by inp towards the menu with id to.
func (m *MenuBuilder) Option(inp any, to, label string) *MenuBuilder {
	m.def.Options = append(m.def.Options, loader.OptionDef{
		Inp:   domain.Key(inp),
		To:    to,
		Label: label,
	})
	return m
}

// Do makes the menu finite: reaching it runs fn and ends the loop.
func (m *MenuBuilder) Do(fn domain.Action) *MenuBuilder {
	m.action = fn
	return m
}
