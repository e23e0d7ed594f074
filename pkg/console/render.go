package console

import (
	"fmt"
	"strings"

	"github.com/aretw0/finiteconsole/pkg/domain"
	"github.com/charmbracelet/glamour"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Renderer turns a view into the text written before each read.
type Renderer func(v domain.View) (string, error)

// Renderer names accepted by RendererByName.
const (
	RendererPlain    = "plain"
	RendererTable    = "table"
	RendererMarkdown = "markdown"
)

// PlainRenderer lists the options one per line under the menu heading.
func PlainRenderer(v domain.View) (string, error) {
	var b strings.Builder
	b.WriteString(v.Heading())
	b.WriteByte('\n')
	for _, o := range v.Options {
		fmt.Fprintf(&b, "  %s) %s\n", o.Inp, o.Text())
	}
	return b.String(), nil
}

// TableRenderer draws the options as a two column table.
func TableRenderer(v domain.View) (string, error) {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.SetTitle(v.Heading())
	t.AppendHeader(table.Row{"Input", "Option"})
	for _, o := range v.Options {
		t.AppendRow(table.Row{o.Inp, o.Text()})
	}
	return t.Render() + "\n", nil
}

// MarkdownRenderer renders the view as markdown through glamour.
// An empty style picks the dark or light theme from the terminal background.
func MarkdownRenderer(style string) (Renderer, error) {
	opt := glamour.WithAutoStyle()
	if style != "" {
		opt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(opt)
	if err != nil {
		return nil, err
	}
	return func(v domain.View) (string, error) {
		return r.Render(ViewMarkdown(v))
	}, nil
}

// ViewMarkdown is the markdown source used by MarkdownRenderer.
func ViewMarkdown(v domain.View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", v.Heading())
	for _, o := range v.Options {
		fmt.Fprintf(&b, "- **%s** %s\n", o.Inp, o.Text())
	}
	return b.String()
}

// RendererByName resolves a configured renderer name.
func RendererByName(name string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", RendererPlain:
		return PlainRenderer, nil
	case RendererTable:
		return TableRenderer, nil
	case RendererMarkdown:
		return MarkdownRenderer("")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
	}
}
