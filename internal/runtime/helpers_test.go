package runtime_test

import (
	"context"
	"io"
	"sync"

	"github.com/aretw0/finiteconsole/pkg/domain"
)

// chanHandler feeds inputs from a channel and records what the loop shows.
// Closing the channel makes Input return io.EOF.
type chanHandler struct {
	inputs chan string

	mu      sync.Mutex
	views   []domain.View
	notices []string
}

func newChanHandler(inputs ...string) *chanHandler {
	h := &chanHandler{inputs: make(chan string, len(inputs)+1)}
	for _, in := range inputs {
		h.inputs <- in
	}
	return h
}

func (h *chanHandler) Output(ctx context.Context, view domain.View) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.views = append(h.views, view)
	return nil
}

func (h *chanHandler) Input(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case in, ok := <-h.inputs:
		if !ok {
			return "", io.EOF
		}
		return in, nil
	}
}

func (h *chanHandler) Notice(ctx context.Context, msg string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notices = append(h.notices, msg)
	return nil
}

func (h *chanHandler) Notices() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.notices...)
}

func (h *chanHandler) Views() []domain.View {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]domain.View(nil), h.views...)
}

func square(_ context.Context, args ...any) (any, error) {
	n := args[0].(int)
	return n * n, nil
}

func noop(context.Context, ...any) (any, error) {
	return nil, nil
}
