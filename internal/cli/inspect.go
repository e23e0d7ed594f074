package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/finiteconsole/internal/presentation/graph"
	"github.com/aretw0/finiteconsole/internal/runtime"
	"github.com/aretw0/finiteconsole/pkg/domain"
	"github.com/aretw0/finiteconsole/pkg/loader"
)

// buildDetached builds a graph file into a program that is not the process singleton.
func buildDetached(path string, actions loader.Actions) (*runtime.Program, error) {
	def, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	p := runtime.NewProgram()
	if err := loader.Build(p, actions, def); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate reports every dependency problem of a graph file to w.
// It fails when any problem would keep the loop from starting; warnings alone pass.
func Validate(w io.Writer, path string, actions loader.Actions) error {
	p, err := buildDetached(path, actions)
	if err != nil {
		return err
	}

	diags := p.ResolveDependencies()
	for _, problem := range diags {
		fmt.Fprintf(w, "%-7s %-15s %s\n", problem.Severity, problem.Kind, problem.Message)
	}
	return diags.Err()
}

// Graph writes the mermaid flowchart of a graph file to w.
func Graph(w io.Writer, path string, actions loader.Actions) error {
	p, err := buildDetached(path, actions)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, graph.GenerateMermaid(p.Menus(), menuID(p.InitMenu()), nil))
	return err
}

func menuID(m *domain.Menu) string {
	if m == nil {
		return ""
	}
	return m.ID
}
