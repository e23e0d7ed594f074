package console

import (
	"context"
	"io"
	"sync"

	"github.com/aretw0/finiteconsole/pkg/domain"
)

// ScriptedHandler feeds a fixed token list to the loop and records what it shows.
// Input returns io.EOF once the script is exhausted.
type ScriptedHandler struct {
	mu      sync.Mutex
	tokens  []string
	views   []domain.View
	notices []string
	out     *TextHandler
}

// NewScriptedHandler creates a handler that answers with tokens in order.
func NewScriptedHandler(tokens ...string) *ScriptedHandler {
	return &ScriptedHandler{tokens: append([]string(nil), tokens...)}
}

// Echo mirrors views and notices to w through the given renderer.
func (h *ScriptedHandler) Echo(w io.Writer, r Renderer) *ScriptedHandler {
	h.out = &TextHandler{Writer: w, Renderer: r}
	return h
}

func (h *ScriptedHandler) Output(ctx context.Context, v domain.View) error {
	h.mu.Lock()
	h.views = append(h.views, v)
	h.mu.Unlock()
	if h.out != nil {
		return h.out.Output(ctx, v)
	}
	return nil
}

func (h *ScriptedHandler) Input(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.tokens) == 0 {
		return "", io.EOF
	}
	tok := h.tokens[0]
	h.tokens = h.tokens[1:]
	return tok, nil
}

func (h *ScriptedHandler) Notice(ctx context.Context, msg string) error {
	h.mu.Lock()
	h.notices = append(h.notices, msg)
	h.mu.Unlock()
	if h.out != nil {
		return h.out.Notice(ctx, msg)
	}
	return nil
}

// Views returns the views shown so far.
func (h *ScriptedHandler) Views() []domain.View {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]domain.View(nil), h.views...)
}

// Notices returns the notices shown so far.
func (h *ScriptedHandler) Notices() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.notices...)
}

// Remaining reports how many tokens are left.
func (h *ScriptedHandler) Remaining() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.tokens)
}
