package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/finiteconsole/pkg/domain"
)

// LogHooks returns lifecycle hooks that write every loop event to logger.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnMenuEnter: func(ctx context.Context, e *domain.MenuEvent) {
			logger.DebugContext(ctx, "menu_enter", "menu_id", e.MenuID, "finite", e.Finite)
		},
		OnMenuLeave: func(ctx context.Context, e *domain.MenuEvent) {
			logger.DebugContext(ctx, "menu_leave", "menu_id", e.MenuID)
		},
		OnAction: func(ctx context.Context, e *domain.ActionEvent) {
			if e.IsError {
				logger.WarnContext(ctx, "action", "menu_id", e.MenuID, "duration", e.Duration, "error", e.Error)
				return
			}
			logger.InfoContext(ctx, "action", "menu_id", e.MenuID, "duration", e.Duration)
		},
		OnUnmatched: func(ctx context.Context, e *domain.InputEvent) {
			logger.DebugContext(ctx, "unmatched_input", "menu_id", e.MenuID, "input", e.Input)
		},
		OnLoopStop: func(ctx context.Context, e *domain.LoopEvent) {
			logger.DebugContext(ctx, "loop_stop", "init_menu_id", e.InitMenuID, "reason", e.Reason)
		},
	}
}
