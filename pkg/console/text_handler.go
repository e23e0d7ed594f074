package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/finiteconsole/pkg/domain"
)

// Prompt is written before every read.
const Prompt = "> "

// TextHandler reads lines from a reader and renders views to a writer.
type TextHandler struct {
	Writer   io.Writer
	Renderer Renderer
	Prompt   string

	lines *linePump
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithRenderer configures the view renderer.
func WithRenderer(r Renderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = r
	}
}

// WithPrompt overrides the read prompt.
func WithPrompt(p string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Prompt = p
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer:   w,
		lines:    newLinePump(r),
		Renderer: PlainRenderer,
		Prompt:   Prompt,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Output(ctx context.Context, v domain.View) error {
	render := h.Renderer
	if render == nil {
		render = PlainRenderer
	}
	out, err := render(v)
	if err != nil {
		out, _ = PlainRenderer(v)
	}
	_, err = fmt.Fprintln(h.Writer, strings.TrimRight(out, "\n"))
	return err
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprint(h.Writer, h.Prompt)

		text, err := h.lines.next(ctx)
		if err != nil {
			return "", err
		}
		clean, err := SanitizeInput(strings.TrimSpace(text))
		if err != nil {
			fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
			continue
		}
		return clean, nil
	}
}

func (h *TextHandler) Notice(ctx context.Context, msg string) error {
	_, err := fmt.Fprintln(h.Writer, msg)
	return err
}
