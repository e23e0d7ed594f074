package runtime

import (
	"context"
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/aretw0/finiteconsole/pkg/domain"
)

// Map resolves input against the current menu's options.
// A navigation destination becomes the current menu. A finite destination is
// returned without moving, so the caller can run its action. When nothing
// matches, (nil, false) is returned and the current menu is untouched.
func (p *Program) Map(input any) (*domain.Menu, bool) {
	return p.mapInput(context.Background(), input)
}

func (p *Program) mapInput(ctx context.Context, input any) (*domain.Menu, bool) {
	key := domain.Key(input)

	p.mu.Lock()
	from := p.current
	if from == nil {
		p.mu.Unlock()
		return nil, false
	}
	opt, ok := from.Option(key)
	if !ok {
		p.mu.Unlock()
		return nil, false
	}
	dest := opt.Out()
	if !p.isLiveLocked(dest) {
		p.mu.Unlock()
		p.logger.Warn("option points to unregistered menu", "menu", from.ID, "input", key, "target", opt.Target.ID())
		return nil, false
	}
	if !dest.IsFinite() {
		p.current = dest
	}
	p.mu.Unlock()

	p.logger.Debug("transition", "from", from.ID, "to", dest.ID, "input", key)
	if !dest.IsFinite() {
		p.emitMenuLeave(ctx, from)
	}
	p.emitMenuEnter(ctx, dest)
	return dest, true
}

// unmatchedMessage builds the notice shown for an input that selects nothing,
// with the closest option label when one is similar enough.
func unmatchedMessage(m *domain.Menu, input string) string {
	msg := fmt.Sprintf("unknown option %q", input)
	if m == nil || input == "" {
		return msg
	}
	if opt := suggest(m, input); opt != nil {
		msg += fmt.Sprintf(" (did you mean %q: %s?)", opt.Inp, opt.Text())
	}
	return msg
}

func suggest(m *domain.Menu, input string) *domain.Option {
	opts := m.Options()
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Text()
	}

	ranks := fuzzy.RankFindFold(input, labels)
	if len(ranks) == 0 {
		return nil
	}
	sort.Sort(ranks)
	return opts[ranks[0].OriginalIndex]
}

func (p *Program) emitMenuEnter(ctx context.Context, m *domain.Menu) {
	if p.hooks.OnMenuEnter == nil {
		return
	}
	p.hooks.OnMenuEnter(ctx, &domain.MenuEvent{
		EventBase: domain.NewEventBase(domain.EventMenuEnter),
		MenuID:    m.ID,
		Finite:    m.IsFinite(),
	})
}

func (p *Program) emitMenuLeave(ctx context.Context, m *domain.Menu) {
	if p.hooks.OnMenuLeave == nil {
		return
	}
	p.hooks.OnMenuLeave(ctx, &domain.MenuEvent{
		EventBase: domain.NewEventBase(domain.EventMenuLeave),
		MenuID:    m.ID,
		Finite:    m.IsFinite(),
	})
}

func (p *Program) emitUnmatched(ctx context.Context, m *domain.Menu, input string) {
	if p.hooks.OnUnmatched == nil {
		return
	}
	event := &domain.InputEvent{
		EventBase: domain.NewEventBase(domain.EventUnmatched),
		Input:     input,
	}
	if m != nil {
		event.MenuID = m.ID
	}
	p.hooks.OnUnmatched(ctx, event)
}
