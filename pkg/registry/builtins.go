package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Builtin action names.
const (
	ActionEcho = "echo"
	ActionSum  = "sum"
	ActionNoop = "noop"
)

// RegisterBuiltins adds echo, sum and noop to r.
func RegisterBuiltins(r *Registry) {
	r.Register(ActionEcho, Echo)
	r.Register(ActionSum, Sum)
	r.Register(ActionNoop, Noop)
}

// Echo joins its arguments with spaces.
func Echo(_ context.Context, args ...any) (any, error) {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, cast.ToString(a))
	}
	return strings.Join(parts, " "), nil
}

// Sum adds its arguments. Strings holding numbers are accepted.
func Sum(_ context.Context, args ...any) (any, error) {
	var total float64
	for i, a := range args {
		n, err := cast.ToFloat64E(a)
		if err != nil {
			return nil, fmt.Errorf("sum: argument %d: %w", i, err)
		}
		total += n
	}
	return total, nil
}

// Noop does nothing and returns nil.
func Noop(context.Context, ...any) (any, error) {
	return nil, nil
}
