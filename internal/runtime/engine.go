package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aretw0/finiteconsole/pkg/domain"
	"github.com/aretw0/finiteconsole/pkg/ports"
)

// Start runs the interactive loop until a finite menu is reached, Stop is
// called, ctx is canceled or the input source is exhausted.
//
// The loop refuses to start, without ever being marked as running, when
// dependency resolution reports blocking problems; the returned error wraps
// domain.ErrUnresolvedGraph. Reaching a finite menu invokes its action with the
// queued arguments and returns the action's result.
func (p *Program) Start(ctx context.Context, handler ports.IOHandler) (any, error) {
	if diags := p.ResolveDependencies(); diags.Errors() != nil {
		p.logger.Warn("refusing to start loop", "problems", len(diags.Errors()))
		return nil, diags.Err()
	} else if warnings := diags.Warnings(); warnings != nil {
		for _, w := range warnings {
			p.logger.Info("menu graph warning", "kind", w.Kind, "menu", w.MenuID)
		}
	}

	loopCtx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	if p.running.Load() {
		p.mu.Unlock()
		cancel()
		return nil, domain.ErrAlreadyRunning
	}
	init := p.initMenu
	if init == nil {
		p.mu.Unlock()
		cancel()
		return nil, domain.Diagnostics{{
			Kind:     domain.ProblemInitialMenu,
			Severity: domain.SeverityError,
			Message:  "The initial menu is not set",
		}}.Err()
	}
	// cancel is published before the flag so that a Stop issued by anyone
	// who observed IsRunning always reaches this loop.
	p.cancel = cancel
	p.current = init
	p.running.Store(true)
	p.mu.Unlock()

	reason := domain.StopReasonError
	defer func() {
		cancel()
		p.mu.Lock()
		p.cancel = nil
		p.mu.Unlock()
		p.running.Store(false)
		p.emitLoop(ctx, domain.EventLoopStop, init, reason)
		p.logger.Info("loop stopped", "menu", init.ID, "reason", reason)
	}()

	p.logger.Info("loop started", "menu", init.ID)
	p.emitLoop(ctx, domain.EventLoopStart, init, "")
	p.emitMenuEnter(ctx, init)

	for {
		if loopCtx.Err() != nil {
			reason = p.stopReason(ctx)
			return nil, ctx.Err()
		}

		current := p.Current()
		if err := handler.Output(loopCtx, domain.NewView(current)); err != nil {
			return nil, fmt.Errorf("output error: %w", err)
		}

		input, err := handler.Input(loopCtx)
		if loopCtx.Err() != nil {
			reason = p.stopReason(ctx)
			return nil, ctx.Err()
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				reason = domain.StopReasonEOF
				return nil, nil
			}
			return nil, fmt.Errorf("input error: %w", err)
		}

		dest, ok := p.mapInput(loopCtx, input)
		if !ok {
			p.emitUnmatched(loopCtx, current, input)
			if err := handler.Notice(loopCtx, unmatchedMessage(current, input)); err != nil {
				return nil, fmt.Errorf("output error: %w", err)
			}
			continue
		}

		if dest.IsFinite() {
			result, err := p.invoke(loopCtx, dest)
			if err != nil {
				return result, err
			}
			reason = domain.StopReasonAction
			return result, nil
		}
	}
}

// Stop asks a running loop to end. The loop's input read is canceled, so the
// loop exits without waiting for another token. Safe to call from any
// goroutine, and a no-op when no loop is running.
func (p *Program) Stop() {
	p.mu.RLock()
	cancel := p.cancel
	p.mu.RUnlock()

	if cancel != nil {
		cancel()
	}
}

func (p *Program) stopReason(parent context.Context) string {
	if parent.Err() != nil {
		return domain.StopReasonCanceled
	}
	return domain.StopReasonRequested
}

// invoke runs a finite menu's action with the queued arguments.
// The queue is not cleared.
func (p *Program) invoke(ctx context.Context, m *domain.Menu) (any, error) {
	args := p.Args()
	start := time.Now()
	result, err := m.Action(ctx, args...)

	event := &domain.ActionEvent{
		EventBase: domain.NewEventBase(domain.EventAction),
		MenuID:    m.ID,
		Args:      args,
		Result:    result,
		Duration:  time.Since(start),
	}
	if err != nil {
		event.IsError = true
		event.Error = err.Error()
	}
	if p.hooks.OnAction != nil {
		p.hooks.OnAction(ctx, event)
	}

	if err != nil {
		p.logger.Debug("action failed", "menu", m.ID, "err", err)
		return result, fmt.Errorf("action %q: %w", m.ID, err)
	}
	p.logger.Debug("action completed", "menu", m.ID, "duration", event.Duration)
	return result, nil
}

func (p *Program) emitLoop(ctx context.Context, t domain.EventType, init *domain.Menu, reason string) {
	var hook func(context.Context, *domain.LoopEvent)
	switch t {
	case domain.EventLoopStart:
		hook = p.hooks.OnLoopStart
	case domain.EventLoopStop:
		hook = p.hooks.OnLoopStop
	}
	if hook == nil {
		return
	}
	hook(ctx, &domain.LoopEvent{
		EventBase:  domain.NewEventBase(t),
		InitMenuID: init.ID,
		Reason:     reason,
	})
}
