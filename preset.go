package layerlist

import (
	"fmt"
	"sort"
)

// Presets maps a preset name to its layer list.
type Presets map[string]List

// Config is the root of a preset file.
type Config struct {
	Presets Presets `yaml:"presets" toml:"presets"`
}

// Names returns the preset names in sorted order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))

	for name := range p {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Lookup returns the layer list for the given preset.
func (p Presets) Lookup(name string) (List, bool) {
	l, ok := p[name]
	return l, ok
}

// UnmarshalTOML implements toml.Unmarshaler. Each preset is either a string
// or an array of strings, the latter being joined in order the same way a
// YAML sequence is.
func (p *Presets) UnmarshalTOML(v interface{}) error {
	tab, ok := v.(map[string]interface{})

	if !ok {
		return fmt.Errorf("layerlist: cannot use %T as presets", v)
	}

	presets := make(Presets, len(tab))

	for name, val := range tab {
		var items []interface{}

		switch val := val.(type) {
		case string:
			items = []interface{}{val}
		case []interface{}:
			items = val
		default:
			return fmt.Errorf("layerlist: preset %s: cannot use %T as layer list", name, val)
		}

		joined := make(List, 0)

		for _, it := range items {
			s, ok := it.(string)

			if !ok {
				return fmt.Errorf("layerlist: preset %s: cannot use %T as layer list", name, it)
			}

			l, err := Parse(s)

			if err != nil {
				return err
			}
			joined = append(joined, l...)
		}
		presets[name] = joined
	}

	*p = presets
	return nil
}

// LoadPresets decodes the preset file with the given name.
func LoadPresets(name string, opts ...Option) (Presets, error) {
	var cfg Config

	if err := DecodeFile(&cfg, name, opts...); err != nil {
		return nil, err
	}

	if cfg.Presets == nil {
		cfg.Presets = make(Presets)
	}
	return cfg.Presets, nil
}
