package domain

import "strings"

// ProblemKind classifies a dependency resolution finding.
type ProblemKind string

const (
	// ProblemNoOptions flags a navigation menu without options (a dead end).
	ProblemNoOptions ProblemKind = "no_options"
	// ProblemInitialMenu flags a missing or unregistered initial menu.
	ProblemInitialMenu ProblemKind = "initial_menu"
	// ProblemDanglingOption flags an option whose destination is no longer registered.
	ProblemDanglingOption ProblemKind = "dangling_option"
	// ProblemUnreachable flags a menu no path of options leads to from the initial menu.
	ProblemUnreachable ProblemKind = "unreachable"
)

// Severity tells whether a problem prevents the loop from starting.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Problem is a single finding of dependency resolution.
type Problem struct {
	Kind     ProblemKind `json:"kind"`
	Severity Severity    `json:"severity"`
	MenuID   string      `json:"menu_id,omitempty"`
	Message  string      `json:"message"`
}

// Diagnostics is the ordered list of problems found in a menu graph.
// An empty list means the graph is sound.
type Diagnostics []Problem

// Empty reports whether no problem was found.
func (d Diagnostics) Empty() bool {
	return len(d) == 0
}

// Has reports whether a problem of the given kind was found.
func (d Diagnostics) Has(kind ProblemKind) bool {
	for _, p := range d {
		if p.Kind == kind {
			return true
		}
	}
	return false
}

// Errors returns the problems that block the loop.
func (d Diagnostics) Errors() Diagnostics {
	var out Diagnostics
	for _, p := range d {
		if p.Severity == SeverityError {
			out = append(out, p)
		}
	}
	return out
}

// Warnings returns the problems that are reported but do not block the loop.
func (d Diagnostics) Warnings() Diagnostics {
	var out Diagnostics
	for _, p := range d {
		if p.Severity == SeverityWarning {
			out = append(out, p)
		}
	}
	return out
}

// Err returns a *ResolutionError when blocking problems exist.
func (d Diagnostics) Err() error {
	blocking := d.Errors()
	if blocking.Empty() {
		return nil
	}
	return &ResolutionError{Problems: blocking}
}

// String joins every message, one per line.
func (d Diagnostics) String() string {
	msgs := make([]string, 0, len(d))
	for _, p := range d {
		msgs = append(msgs, p.Message)
	}
	return strings.Join(msgs, "\n")
}
