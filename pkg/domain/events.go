package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventMenuEnter EventType = "menu_enter"
	EventMenuLeave EventType = "menu_leave"
	EventAction    EventType = "action"
	EventUnmatched EventType = "unmatched_input"
	EventLoopStart EventType = "loop_start"
	EventLoopStop  EventType = "loop_stop"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// NewEventBase stamps an event of the given type.
func NewEventBase(t EventType) EventBase {
	return EventBase{Timestamp: time.Now(), Type: t}
}

// MenuEvent represents entry into or exit from a menu.
type MenuEvent struct {
	EventBase
	MenuID string `json:"menu_id"`
	Finite bool   `json:"finite,omitempty"`
}

// ActionEvent represents the invocation of a finite menu's action.
type ActionEvent struct {
	EventBase
	MenuID   string        `json:"menu_id"`
	Args     []any         `json:"args,omitempty"`
	Result   any           `json:"result,omitempty"`
	IsError  bool          `json:"is_error,omitempty"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// InputEvent represents an input that matched no option of the current menu.
type InputEvent struct {
	EventBase
	MenuID string `json:"menu_id"`
	Input  string `json:"input"`
}

// LoopEvent represents the start or the end of an interactive loop.
type LoopEvent struct {
	EventBase
	InitMenuID string `json:"init_menu_id"`
	Reason     string `json:"reason,omitempty"`
}

// Reasons carried by loop stop events.
const (
	StopReasonAction    = "action"
	StopReasonRequested = "stop_requested"
	StopReasonCanceled  = "canceled"
	StopReasonEOF       = "eof"
	StopReasonError     = "error"
)

// LifecycleHooks defines callbacks for loop observability.
type LifecycleHooks struct {
	OnMenuEnter func(context.Context, *MenuEvent)
	OnMenuLeave func(context.Context, *MenuEvent)
	OnAction    func(context.Context, *ActionEvent)
	OnUnmatched func(context.Context, *InputEvent)
	OnLoopStart func(context.Context, *LoopEvent)
	OnLoopStop  func(context.Context, *LoopEvent)
}

// ComposeHooks fans each callback out to every non-nil callback of hooks, in order.
func ComposeHooks(hooks ...LifecycleHooks) LifecycleHooks {
	var out LifecycleHooks
	for _, h := range hooks {
		out.OnMenuEnter = chain(out.OnMenuEnter, h.OnMenuEnter)
		out.OnMenuLeave = chain(out.OnMenuLeave, h.OnMenuLeave)
		out.OnAction = chain(out.OnAction, h.OnAction)
		out.OnUnmatched = chain(out.OnUnmatched, h.OnUnmatched)
		out.OnLoopStart = chain(out.OnLoopStart, h.OnLoopStart)
		out.OnLoopStop = chain(out.OnLoopStop, h.OnLoopStop)
	}
	return out
}

func chain[E any](first, next func(context.Context, E)) func(context.Context, E) {
	switch {
	case first == nil:
		return next
	case next == nil:
		return first
	}
	return func(ctx context.Context, e E) {
		first(ctx, e)
		next(ctx, e)
	}
}
