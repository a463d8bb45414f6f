package strong

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler by exposing the underlying value, so
// a tagged quantity appears in YAML as the plain scalar it wraps.
func (v Value[Tag, T]) MarshalYAML() (any, error) {
	return v.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The scalar's text goes through
// the same codec UnmarshalText uses; YAML adds no syntax of its own here.
func (v *Value[Tag, T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: cannot unmarshal %v into a numeric value", node.Line, node.Tag)
	}

	return v.UnmarshalText([]byte(node.Value))
}

var (
	_ yaml.Marshaler   = Value[assertTag, int]{}
	_ yaml.Unmarshaler = (*Value[assertTag, int])(nil)
)
