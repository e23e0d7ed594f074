package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/finiteconsole/pkg/domain"
)

// Overlay contains dynamic state to highlight on the graph.
type Overlay struct {
	CurrentMenu string
}

// GenerateMermaid produces a Mermaid flowchart of the menu graph.
// Shapes:
// - Initial menu: ((Circle))
// - Finite menu: [[Subroutine]]
// - Default: [Rectangle]
// Edges are labelled with their input and label. Edges whose destination is
// not among menus are drawn dotted.
func GenerateMermaid(menus []*domain.Menu, initID string, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	known := make(map[string]bool, len(menus))
	for _, m := range menus {
		known[m.ID] = true
	}

	for _, m := range menus {
		safeID := sanitizeMermaidID(m.ID)

		opener, closer := "[", "]"
		switch {
		case m.ID == initID:
			opener, closer = "((", "))"
		case m.IsFinite():
			opener, closer = "[[", "]]"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(nodeLabel(m)), closer)

		for _, o := range m.Options() {
			to := o.Target.ID()
			text := o.Inp
			if o.Label != "" {
				text += ": " + o.Label
			}
			text = escapeLabel(text)

			arrow := fmt.Sprintf("-- \"%s\" -->", text)
			if !known[to] {
				arrow = fmt.Sprintf("-. \"%s\" .->", text)
			}
			fmt.Fprintf(&sb, "    %s %s %s\n", safeID, arrow, sanitizeMermaidID(to))
		}
	}

	if overlay != nil && overlay.CurrentMenu != "" {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Black text keeps the highlight readable on light and dark themes.
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentMenu))
	}

	return sb.String()
}

func nodeLabel(m *domain.Menu) string {
	if m.Title != "" && m.Title != m.ID {
		return m.ID + " <br/> " + m.Title
	}
	return m.ID
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
