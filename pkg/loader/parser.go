package loader

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDefinition wraps every structural problem found in a graph file.
var ErrInvalidDefinition = errors.New("invalid graph definition")

// Parse decodes YAML into a Definition.
// Scalars are coerced where a string is expected, so `inp: 1` reads as "1".
// Unknown keys are rejected.
func Parse(data []byte) (*Definition, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse graph: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
	}

	var def Definition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "yaml",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &def,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Load reads and parses a graph file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

func (d *Definition) validate() error {
	seen := make(map[string]bool, len(d.Menus))
	for i, m := range d.Menus {
		if m.ID == "" {
			return fmt.Errorf("%w: menu %d has no id", ErrInvalidDefinition, i)
		}
		if seen[m.ID] {
			return fmt.Errorf("%w: menu %q defined twice", ErrInvalidDefinition, m.ID)
		}
		seen[m.ID] = true
		for j, o := range m.Options {
			if o.Inp == "" {
				return fmt.Errorf("%w: option %d of menu %q has no inp", ErrInvalidDefinition, j, m.ID)
			}
			if o.To == "" {
				return fmt.Errorf("%w: option %q of menu %q has no destination", ErrInvalidDefinition, o.Inp, m.ID)
			}
		}
	}
	return nil
}
