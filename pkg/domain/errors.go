package domain

import (
	"errors"
	"strings"
)

var (
	// ErrProgramExists is returned when a program is constructed while another one is live.
	ErrProgramExists = errors.New("program already exists")

	// ErrMenuExists is returned when a menu is registered under an id already in use.
	ErrMenuExists = errors.New("menu already exists")

	// ErrInvalidMenu is returned when a menu has no usable id.
	ErrInvalidMenu = errors.New("invalid menu")

	// ErrUndeterminedOption is returned when an option input collides with one already
	// present in the menu: the same input cannot lead to two destinations.
	ErrUndeterminedOption = errors.New("undetermined option")

	// ErrInvalidOption is returned when an option is built without an input or a target.
	ErrInvalidOption = errors.New("invalid option")

	// ErrUnresolvedTarget is returned when an option target does not name a registered menu.
	ErrUnresolvedTarget = errors.New("unresolved option target")

	// ErrAlreadyRunning is returned when a loop is started on a program that is already looping.
	ErrAlreadyRunning = errors.New("loop already running")

	// ErrUnresolvedGraph is returned when the loop refuses to start because dependency
	// resolution reported blocking problems.
	ErrUnresolvedGraph = errors.New("menu graph has unresolved dependencies")
)

// ResolutionError carries the blocking problems that kept a loop from starting.
type ResolutionError struct {
	Problems Diagnostics
}

func (e *ResolutionError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrUnresolvedGraph.Error())
	for _, p := range e.Problems {
		sb.WriteString("\n- ")
		sb.WriteString(p.Message)
	}
	return sb.String()
}

func (e *ResolutionError) Unwrap() error {
	return ErrUnresolvedGraph
}
