package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/milk9111/tileprops/tiles"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is a grid of tiles stored as JSON. Each layer is a flat row-major
// array of Width*Height palette indices; 0 is an empty cell and n selects
// Palette[n-1].
type Level struct {
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	TileW   int          `json:"tile_w"`
	TileH   int          `json:"tile_h"`
	Palette []*tiles.Ref `json:"palette"`
	Layers  [][]int      `json:"layers"`
	SpawnX  int          `json:"spawn_x,omitempty"`
	SpawnY  int          `json:"spawn_y,omitempty"`
}

// LoadLevelFromFS reads an embedded level and interns its palette in reg so
// cells share tile identities with property lists.
func LoadLevelFromFS(name string, reg *tiles.Registry) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(data, reg)
}

func Parse(data []byte, reg *tiles.Registry) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("invalid level dimensions: %dx%d", lvl.Width, lvl.Height)
	}
	for i, layer := range lvl.Layers {
		if len(layer) != lvl.Width*lvl.Height {
			return nil, fmt.Errorf("layer %d has %d cells, want %d", i, len(layer), lvl.Width*lvl.Height)
		}
		for _, v := range layer {
			if v < 0 || v > len(lvl.Palette) {
				return nil, fmt.Errorf("layer %d references palette entry %d of %d", i, v, len(lvl.Palette))
			}
		}
	}
	for i, ref := range lvl.Palette {
		if ref == nil || ref.TileName() == "" {
			return nil, fmt.Errorf("palette entry %d has no name", i+1)
		}
		if reg != nil {
			lvl.Palette[i] = reg.Register(ref)
		}
	}
	return &lvl, nil
}

// TileAt returns the tile of layer at cell (x, y), or nil when the cell is
// empty or out of range.
func (l *Level) TileAt(layer, x, y int) tiles.Tile {
	if l == nil || layer < 0 || layer >= len(l.Layers) || x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return nil
	}
	v := l.Layers[layer][y*l.Width+x]
	if v == 0 {
		return nil
	}
	return l.Palette[v-1]
}

// TopTileAt returns the tile of the highest layer with a non-empty cell at
// (x, y).
func (l *Level) TopTileAt(x, y int) tiles.Tile {
	if l == nil {
		return nil
	}
	for layer := len(l.Layers) - 1; layer >= 0; layer-- {
		if t := l.TileAt(layer, x, y); t != nil {
			return t
		}
	}
	return nil
}
