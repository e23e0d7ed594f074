package domain

import (
	"strings"

	"github.com/spf13/cast"
)

// Key coerces a menu id or an option input into its canonical string form.
// Strings are trimmed, scalars are formatted. Values that have no sensible
// textual form (nil, maps, slices) yield an empty key.
func Key(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case *Menu:
		if t == nil {
			return ""
		}
		return t.ID
	case Target:
		return t.ID()
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
