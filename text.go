package layerlist

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler, encoding the list in its
// canonical form.
func (l List) MarshalText() ([]byte, error) {
	return []byte(Format(l)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On failure the error is
// the ErrorList returned by Parse and the list is left untouched.
func (l *List) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))

	if err != nil {
		return err
	}

	*l = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, encoding the list as a single
// scalar in its canonical form.
func (l List) MarshalYAML() (interface{}, error) {
	return Format(l), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A scalar is parsed as a single
// layer list, a sequence of scalars is parsed item by item with the results
// joined in order.
func (l *List) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		return l.UnmarshalText([]byte(n.Value))
	case yaml.SequenceNode:
		joined := make(List, 0)

		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("layerlist: line %d: cannot use %s as layer list", item.Line, kindName(item.Kind))
			}

			parsed, err := Parse(item.Value)

			if err != nil {
				return err
			}
			joined = append(joined, parsed...)
		}

		*l = joined
		return nil
	}
	return fmt.Errorf("layerlist: line %d: cannot use %s as layer list", n.Line, kindName(n.Kind))
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "node"
}
