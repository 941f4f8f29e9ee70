package world

// TileSnapshot is the flattened, renderer-facing form of a tile.
type TileSnapshot struct {
	X             int      `json:"x"`
	Y             int      `json:"y"`
	Elevation     float64  `json:"elevation"`
	Precipitation float64  `json:"precipitation"`
	Temperature   float64  `json:"temperature"`
	Landmass      bool     `json:"landmass"`
	Walkable      bool     `json:"walkable"`
	Tier          int      `json:"tier"`
	Biome         string   `json:"biome"`
	Edge          EdgeType `json:"edge"`
	HillEdge      EdgeType `json:"hill_edge"`
	Tree          bool     `json:"tree"`
}

type ChunkSnapshot struct {
	Origin            ChunkCoord     `json:"origin"`
	ContainsKeyObject bool           `json:"contains_key_object"`
	KeyObjectPos      *Point         `json:"key_object_pos,omitempty"`
	Active            bool           `json:"active"`
	Objects           []ObjectRecord `json:"objects"`
	Tiles             []TileSnapshot `json:"tiles"`
}

func (t *Tile) Snapshot(tree bool) TileSnapshot {
	biome := ""
	if t.Biome != nil {
		biome = t.Biome.Name
	}
	return TileSnapshot{
		X:             t.Pos.X,
		Y:             t.Pos.Y,
		Elevation:     t.Elevation,
		Precipitation: t.Precipitation,
		Temperature:   t.Temperature,
		Landmass:      t.Landmass,
		Walkable:      t.Walkable,
		Tier:          t.Tier,
		Biome:         biome,
		Edge:          t.Edge,
		HillEdge:      t.HillEdge,
		Tree:          tree,
	}
}

// Snapshot copies the chunk in row-major order (y outer).
func (c *Chunk) Snapshot() ChunkSnapshot {
	out := ChunkSnapshot{
		Origin:            c.Origin,
		ContainsKeyObject: c.ContainsKeyObject,
		Active:            c.Active,
		Objects:           append([]ObjectRecord{}, c.Objects...),
		Tiles:             make([]TileSnapshot, 0, ChunkSize*ChunkSize),
	}
	if c.ContainsKeyObject {
		pos := c.KeyObjectPos
		out.KeyObjectPos = &pos
	}
	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			out.Tiles = append(out.Tiles, c.At(x, y).Snapshot(c.HasTree(x, y)))
		}
	}
	return out
}
