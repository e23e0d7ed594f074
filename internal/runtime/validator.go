package runtime

import (
	"fmt"

	"github.com/aretw0/finiteconsole/pkg/domain"
)

// ResolveDependencies checks that the registered graph can be walked.
// Every failing check is reported, in this order:
//
//  1. navigation menus without options,
//  2. a missing or unregistered initial menu,
//  3. options pointing at menus that are no longer registered,
//  4. menus unreachable from the initial menu (warnings only).
//
// The graph is sound, and Start will run it, when Err() of the result is nil.
// Unreachable menus still show up as warnings, so a sound graph may yield a
// non-empty result.
func (p *Program) ResolveDependencies() domain.Diagnostics {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var diags domain.Diagnostics
	menus := p.sortedMenusLocked()

	for _, m := range menus {
		if !m.IsFinite() && m.Len() == 0 {
			diags = append(diags, domain.Problem{
				Kind:     domain.ProblemNoOptions,
				Severity: domain.SeverityError,
				MenuID:   m.ID,
				Message:  fmt.Sprintf("menu %q has no options and no action", m.ID),
			})
		}
	}

	initOK := false
	switch {
	case p.initMenu == nil:
		diags = append(diags, domain.Problem{
			Kind:     domain.ProblemInitialMenu,
			Severity: domain.SeverityError,
			Message:  "The initial menu is not set",
		})
	case p.menus[p.initMenu.ID] != p.initMenu:
		diags = append(diags, domain.Problem{
			Kind:     domain.ProblemInitialMenu,
			Severity: domain.SeverityError,
			MenuID:   p.initMenu.ID,
			Message:  fmt.Sprintf("The initial menu %q is not registered", p.initMenu.ID),
		})
	default:
		initOK = true
	}

	for _, m := range menus {
		for _, opt := range m.Options() {
			if !p.isLiveLocked(opt.Out()) {
				diags = append(diags, domain.Problem{
					Kind:     domain.ProblemDanglingOption,
					Severity: domain.SeverityError,
					MenuID:   m.ID,
					Message:  fmt.Sprintf("option %q of menu %q points to unregistered menu %q", opt.Inp, m.ID, opt.Target.ID()),
				})
			}
		}
	}

	if initOK {
		visited := p.reachableLocked(p.initMenu)
		for _, m := range menus {
			if !visited[m.ID] {
				diags = append(diags, domain.Problem{
					Kind:     domain.ProblemUnreachable,
					Severity: domain.SeverityWarning,
					MenuID:   m.ID,
					Message:  fmt.Sprintf("menu %q is unreachable from the initial menu %q", m.ID, p.initMenu.ID),
				})
			}
		}
	}

	return diags
}

// reachableLocked walks the option edges breadth-first from start.
func (p *Program) reachableLocked(start *domain.Menu) map[string]bool {
	visited := map[string]bool{start.ID: true}
	queue := []*domain.Menu{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, opt := range current.Options() {
			next := opt.Out()
			if !p.isLiveLocked(next) || visited[next.ID] {
				continue
			}
			visited[next.ID] = true
			queue = append(queue, next)
		}
	}
	return visited
}

func (p *Program) isLiveLocked(m *domain.Menu) bool {
	return m != nil && p.menus[m.ID] == m
}
