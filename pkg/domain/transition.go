package domain

// Target is the destination of an option: either a menu id to look up in the
// program registry or a direct menu reference.
type Target struct {
	id  string
	ref *Menu
}

// ByID targets the menu registered under id.
func ByID(id any) Target {
	return Target{id: Key(id)}
}

// ByRef targets m directly.
func ByRef(m *Menu) Target {
	if m == nil {
		return Target{}
	}
	return Target{id: m.ID, ref: m}
}

// TargetOf classifies a loosely typed destination (a Target, a *Menu or an id).
func TargetOf(v any) Target {
	switch t := v.(type) {
	case Target:
		return t
	case *Menu:
		return ByRef(t)
	default:
		return ByID(v)
	}
}

// ID returns the id of the destination menu.
func (t Target) ID() string {
	return t.id
}

// Ref returns the menu reference, if the target was built from one.
func (t Target) Ref() *Menu {
	return t.ref
}

// IsZero reports whether the target names nothing.
func (t Target) IsZero() bool {
	return t.id == "" && t.ref == nil
}
