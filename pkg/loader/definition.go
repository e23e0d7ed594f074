package loader

// Definition is the decoded form of a graph file.
type Definition struct {
	Init  string    `yaml:"init"`
	Args  []any     `yaml:"args"`
	Menus []MenuDef `yaml:"menus"`
}

// MenuDef describes one menu. A non-empty Action makes it finite.
type MenuDef struct {
	ID      string      `yaml:"id"`
	Title   string      `yaml:"title"`
	Action  string      `yaml:"action"`
	Options []OptionDef `yaml:"options"`
}

// OptionDef describes one edge.
type OptionDef struct {
	Inp   string `yaml:"inp"`
	To    string `yaml:"to"`
	Label string `yaml:"label"`
}
