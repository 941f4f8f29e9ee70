package world

type ObjectRecord struct {
	Position Point  `json:"position"`
	Sprite   string `json:"sprite"`
}

type Chunk struct {
	Origin            ChunkCoord
	Tiles             [ChunkSize * ChunkSize]Tile
	TreeMap           [ChunkSize * ChunkSize]bool
	TierMap           [ChunkSize * ChunkSize]int
	ContainsKeyObject bool
	KeyObjectPos      Point
	Objects           []ObjectRecord
	Trees             []string
	Active            bool
}

func NewChunk(origin ChunkCoord) *Chunk {
	c := &Chunk{Origin: origin}
	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			t := &c.Tiles[index(x, y)]
			t.Pos = origin.Abs(Point{X: x, Y: y})
			t.Walkable = true
			t.Edge = EdgeNone
			t.HillEdge = EdgeNone
		}
	}
	return c
}

func index(x, y int) int {
	return y*ChunkSize + x
}

func inChunk(rel Point) bool {
	return rel.X >= 0 && rel.X < ChunkSize && rel.Y >= 0 && rel.Y < ChunkSize
}

func (c *Chunk) Tile(rel Point) (*Tile, bool) {
	if !inChunk(rel) {
		return nil, false
	}
	return &c.Tiles[index(rel.X, rel.Y)], true
}

// At is Tile without the bounds report; rel must lie inside the chunk.
func (c *Chunk) At(x, y int) *Tile {
	return &c.Tiles[index(x, y)]
}

func (c *Chunk) HasTree(x, y int) bool {
	return c.TreeMap[index(x, y)]
}

func (c *Chunk) SetTree(x, y int, v bool) {
	c.TreeMap[index(x, y)] = v
}

func (c *Chunk) TierAt(x, y int) int {
	return c.TierMap[index(x, y)]
}

func (c *Chunk) SetTier(x, y, tier int) {
	c.TierMap[index(x, y)] = tier
}

// PlaceKeyObject marks the chunk as owning the key object at abs.
func (c *Chunk) PlaceKeyObject(abs Point) {
	c.ContainsKeyObject = true
	c.KeyObjectPos = abs
}

// fillObjects rebuilds the decorative records from the tree grid into the
// supplied buffers.
func (c *Chunk) fillObjects(objects []ObjectRecord, trees []string) {
	objects = objects[:0]
	trees = trees[:0]
	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			if !c.HasTree(x, y) {
				continue
			}
			t := c.At(x, y)
			sprite := ""
			if t.Biome != nil {
				sprite = t.Biome.TreeSprite
			}
			objects = append(objects, ObjectRecord{Position: t.Pos, Sprite: sprite})
			trees = append(trees, sprite)
		}
	}
	c.Objects = objects
	c.Trees = trees
}

func (c *Chunk) clearObjects() ([]ObjectRecord, []string) {
	objects, trees := c.Objects[:0], c.Trees[:0]
	c.Objects = nil
	c.Trees = nil
	return objects, trees
}
