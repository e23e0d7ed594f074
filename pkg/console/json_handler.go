package console

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/finiteconsole/pkg/domain"
)

// Frame is one NDJSON line written by JSONHandler.
type Frame struct {
	Type   string       `json:"type"`
	View   *domain.View `json:"view,omitempty"`
	Notice string       `json:"notice,omitempty"`
}

// Frame types.
const (
	FrameView   = "view"
	FrameNotice = "notice"
)

// JSONHandler exchanges JSON-Lines: views and notices out, one token per line in.
// An input line holding a JSON string is unquoted, anything else is taken verbatim.
type JSONHandler struct {
	Encoder *json.Encoder

	lines *linePump

	mu sync.Mutex
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Encoder: json.NewEncoder(w),
		lines:   newLinePump(r),
	}
}

func (h *JSONHandler) Output(ctx context.Context, v domain.View) error {
	return h.encode(Frame{Type: FrameView, View: &v})
}

func (h *JSONHandler) Notice(ctx context.Context, msg string) error {
	return h.encode(Frame{Type: FrameNotice, Notice: msg})
}

func (h *JSONHandler) encode(f Frame) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.Encoder.Encode(f)
}

func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	text, err := h.lines.next(ctx)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)

	var val string
	if err := json.Unmarshal([]byte(text), &val); err == nil {
		text = val
	}
	return SanitizeInput(text)
}
