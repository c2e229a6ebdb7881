package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/hextide/internal/hex"
)

// ErrMalformedCoord reports a snapshot cell key that does not parse as
// an "x,y,z" integer triple.
var ErrMalformedCoord = errors.New("world: malformed coordinate key")

// Snapshot is the structured save form of a grid, shaped for embedding
// in a larger save document: the orientation as its stable ordinal, the
// pixel layout, and every cell keyed by its "x,y,z" cube coordinate.
type Snapshot struct {
	Orientation int                     `json:"orientation"`
	HexSize     float64                 `json:"hex_size"`
	Origin      [2]float64              `json:"origin"`
	Cells       map[string]CellSnapshot `json:"cells"`
}

// CellSnapshot is the save form of a single cell.
type CellSnapshot struct {
	TerrainType  string            `json:"terrain_type"`
	MovementCost float64           `json:"movement_cost"`
	BlocksSight  bool              `json:"blocks_sight"`
	Metadata     map[string]string `json:"metadata"`
}

// UnmarshalJSON fills document-level defaults for fields the payload
// omits: pointy-top orientation, hex size 10 and origin (0, 0).
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	type alias Snapshot
	tmp := alias{HexSize: hex.DefaultSize}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*s = Snapshot(tmp)
	return nil
}

// UnmarshalJSON fills cell-level defaults for fields the payload omits:
// ocean terrain, movement cost 1, no sight blocking, empty metadata.
func (c *CellSnapshot) UnmarshalJSON(data []byte) error {
	type alias CellSnapshot
	tmp := alias{TerrainType: DefaultTerrain, MovementCost: DefaultMoveCost}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if tmp.Metadata == nil {
		tmp.Metadata = map[string]string{}
	}
	*c = CellSnapshot(tmp)
	return nil
}

// Snapshot converts the cell to its save form.
func (c *Cell) Snapshot() CellSnapshot {
	meta := c.Meta
	if meta == nil {
		meta = map[string]string{}
	}
	return CellSnapshot{
		TerrainType:  c.Terrain,
		MovementCost: c.MoveCost,
		BlocksSight:  c.BlocksSight,
		Metadata:     meta,
	}
}

// Cell converts the save form back to a live cell.
func (cs CellSnapshot) Cell() *Cell {
	meta := cs.Metadata
	if meta == nil {
		meta = map[string]string{}
	}
	return &Cell{
		Terrain:     cs.TerrainType,
		MoveCost:    cs.MovementCost,
		BlocksSight: cs.BlocksSight,
		Meta:        meta,
	}
}

// Snapshot converts the grid to its structured save form.
func (g *Grid) Snapshot() Snapshot {
	cells := make(map[string]CellSnapshot, len(g.cells))
	for c, cell := range g.cells {
		key := fmt.Sprintf("%d,%d,%d", c.X, c.Y, c.Z)
		cells[key] = cell.Snapshot()
	}
	return Snapshot{
		Orientation: int(g.layout.Orientation),
		HexSize:     g.layout.Size,
		Origin:      [2]float64{g.layout.OriginX, g.layout.OriginY},
		Cells:       cells,
	}
}

// FromSnapshot rebuilds a grid from its structured save form. Cell keys
// must parse as "x,y,z" integer triples satisfying the cube constraint;
// one bad key fails the whole rebuild and no grid is returned.
func FromSnapshot(s Snapshot) (*Grid, error) {
	layout := hex.Layout{
		Orientation: hex.Orientation(s.Orientation),
		Size:        s.HexSize,
		OriginX:     s.Origin[0],
		OriginY:     s.Origin[1],
	}
	g := New(layout)
	for key, cs := range s.Cells {
		c, err := parseCoordKey(key)
		if err != nil {
			return nil, err
		}
		g.Set(c, cs.Cell())
	}
	return g, nil
}

// EncodeJSON renders the grid as a JSON snapshot document.
func (g *Grid) EncodeJSON() ([]byte, error) {
	data, err := json.Marshal(g.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("world: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeJSON rebuilds a grid from a JSON snapshot document, applying
// the document and cell defaults for any omitted fields.
func DecodeJSON(data []byte) (*Grid, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("world: decode snapshot: %w", err)
	}
	return FromSnapshot(s)
}

func parseCoordKey(key string) (hex.Coord, error) {
	parts := strings.Split(key, ",")
	if len(parts) != 3 {
		return hex.Coord{}, fmt.Errorf("%w: %q", ErrMalformedCoord, key)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return hex.Coord{}, fmt.Errorf("%w: %q", ErrMalformedCoord, key)
		}
		v[i] = n
	}
	c, err := hex.Cube(v[0], v[1], v[2])
	if err != nil {
		return hex.Coord{}, fmt.Errorf("world: cell key %q: %w", key, err)
	}
	return c, nil
}
