package domain

// OptionView is the render-ready form of an option.
type OptionView struct {
	Inp   string `json:"inp"`
	Label string `json:"label,omitempty"`
	To    string `json:"to"`
}

// View is what a renderer needs to present one loop iteration.
type View struct {
	MenuID  string       `json:"menu_id"`
	Title   string       `json:"title,omitempty"`
	Finite  bool         `json:"finite,omitempty"`
	Options []OptionView `json:"options"`
}

// NewView snapshots a menu for rendering.
func NewView(m *Menu) View {
	if m == nil {
		return View{}
	}
	opts := m.Options()
	v := View{
		MenuID:  m.ID,
		Title:   m.Title,
		Finite:  m.IsFinite(),
		Options: make([]OptionView, 0, len(opts)),
	}
	for _, o := range opts {
		v.Options = append(v.Options, OptionView{
			Inp:   o.Inp,
			Label: o.Label,
			To:    o.Target.ID(),
		})
	}
	return v
}

// Heading returns the title, falling back to the menu id.
func (v View) Heading() string {
	if v.Title != "" {
		return v.Title
	}
	return v.MenuID
}

// Text returns the label of the option, falling back to its destination.
func (o OptionView) Text() string {
	if o.Label != "" {
		return o.Label
	}
	return o.To
}
