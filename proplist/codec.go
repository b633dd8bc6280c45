package proplist

import (
	"fmt"
	"os"

	"github.com/milk9111/tileprops/tiles"
	"github.com/milk9111/tileprops/variable"
	"gopkg.in/yaml.v3"
)

type listDoc struct {
	Name       string               `yaml:"name"`
	Tags       []string             `yaml:"tags,omitempty"`
	Tiles      []tileDoc            `yaml:"tiles"`
	Properties []*variable.Variable `yaml:"properties"`
}

// tileDoc accepts either a bare tile name or a full tiles.Ref mapping.
type tileDoc struct {
	tiles.Ref
}

func (t *tileDoc) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		t.Name = value.Value
		return nil
	}
	return value.Decode(&t.Ref)
}

func (t tileDoc) MarshalYAML() (any, error) {
	if t.Path == "" && t.TileW == 0 && t.TileH == 0 {
		return t.Name, nil
	}
	return t.Ref, nil
}

// Decode parses a YAML property list. Tiles are interned through reg so they
// share identity with every other loader using the same registry; a nil reg
// gives the list private tiles.
func Decode(data []byte, reg *tiles.Registry) (*List, error) {
	var doc listDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("proplist: unmarshal: %w", err)
	}

	l := &List{
		Name:       doc.Name,
		Tags:       doc.Tags,
		Properties: doc.Properties,
	}
	for _, td := range doc.Tiles {
		ref := td.Ref
		var tile *tiles.Ref
		if reg != nil {
			tile = reg.Register(&ref)
		} else {
			tile = &ref
		}
		if tile.TileName() == "" {
			return nil, fmt.Errorf("proplist: list %q has a tile without a name", doc.Name)
		}
		l.AffectedTiles = append(l.AffectedTiles, tile)
	}
	return l, nil
}

// LoadFile reads and decodes the list stored at path.
func LoadFile(path string, reg *tiles.Registry) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("proplist: load %s: %w", path, err)
	}
	l, err := Decode(data, reg)
	if err != nil {
		return nil, fmt.Errorf("proplist: decode %s: %w", path, err)
	}
	return l, nil
}

// Encode writes l in the same YAML layout Decode reads.
func Encode(l *List) ([]byte, error) {
	doc := listDoc{
		Name:       l.Name,
		Tags:       l.Tags,
		Properties: l.Properties,
	}
	for _, t := range l.AffectedTiles {
		if ref, ok := t.(*tiles.Ref); ok && ref != nil {
			doc.Tiles = append(doc.Tiles, tileDoc{Ref: *ref})
			continue
		}
		doc.Tiles = append(doc.Tiles, tileDoc{Ref: tiles.Ref{Name: t.TileName()}})
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("proplist: marshal %q: %w", l.Name, err)
	}
	return out, nil
}
