package world

import "sort"

// Map owns every chunk of a generated world. After generation it is read-only
// apart from chunk activation state and decorative records.
type Map struct {
	Width          int
	Height         int
	RenderDistance int
	KeyObjects     []KeyObjectRecord

	chunks map[ChunkCoord]*Chunk
	order  []ChunkCoord
	pools  map[string][]Point
}

func NewMap(width, height, renderDistance int) *Map {
	return &Map{
		Width:          width,
		Height:         height,
		RenderDistance: renderDistance,
		chunks:         map[ChunkCoord]*Chunk{},
		pools:          map[string][]Point{},
	}
}

func (m *Map) GetOrCreateChunk(coord ChunkCoord) *Chunk {
	if c, ok := m.chunks[coord]; ok {
		return c
	}
	c := NewChunk(coord)
	m.chunks[coord] = c
	m.order = append(m.order, coord)
	return c
}

func (m *Map) Chunk(coord ChunkCoord) (*Chunk, bool) {
	c, ok := m.chunks[coord]
	return c, ok
}

// Chunks returns chunks in creation order.
func (m *Map) Chunks() []*Chunk {
	out := make([]*Chunk, 0, len(m.order))
	for _, coord := range m.order {
		out = append(out, m.chunks[coord])
	}
	return out
}

func (m *Map) ChunkCount() int {
	return len(m.order)
}

// Tile looks a tile up by chunk-relative position. A missing chunk or an
// out-of-range relative position reports false.
func (m *Map) Tile(rel Point, coord ChunkCoord) (*Tile, bool) {
	c, ok := m.chunks[coord]
	if !ok {
		return nil, false
	}
	return c.Tile(rel)
}

func (m *Map) Contains(abs Point) bool {
	return abs.X >= 0 && abs.X < m.Width && abs.Y >= 0 && abs.Y < m.Height
}

func (m *Map) TileAt(abs Point) (*Tile, bool) {
	if !m.Contains(abs) {
		return nil, false
	}
	return m.Tile(TileToRelativeCoord(abs), TileToChunkCoord(abs))
}

// Clamp pulls a coordinate one step outside the map back onto its border.
func (m *Map) Clamp(abs Point) Point {
	if abs.X < 0 {
		abs.X = 0
	}
	if abs.X >= m.Width {
		abs.X = m.Width - 1
	}
	if abs.Y < 0 {
		abs.Y = 0
	}
	if abs.Y >= m.Height {
		abs.Y = m.Height - 1
	}
	return abs
}

// Neighbor resolves a tile's recorded neighbour. Adjacency must have run.
func (m *Map) Neighbor(t *Tile, d Direction) (*Tile, bool) {
	return m.TileAt(t.Neighbors[d])
}

func (m *Map) ElevationAt(coord ChunkCoord, x, y int) (float64, bool) {
	t, ok := m.Tile(Point{X: x, Y: y}, coord)
	if !ok {
		return 0, false
	}
	return t.Elevation, true
}

func (m *Map) PrecipitationAt(coord ChunkCoord, x, y int) (float64, bool) {
	t, ok := m.Tile(Point{X: x, Y: y}, coord)
	if !ok {
		return 0, false
	}
	return t.Precipitation, true
}

func (m *Map) TemperatureAt(coord ChunkCoord, x, y int) (float64, bool) {
	t, ok := m.Tile(Point{X: x, Y: y}, coord)
	if !ok {
		return 0, false
	}
	return t.Temperature, true
}

// AddToPool appends t to its biome's key-object pool once; repeated calls for
// the same tile are no-ops.
func (m *Map) AddToPool(t *Tile) {
	if t.inPool || t.Biome == nil || t.Biome.Pool == "" {
		return
	}
	t.inPool = true
	m.pools[t.Biome.Pool] = append(m.pools[t.Biome.Pool], t.Pos)
}

func (m *Map) Pool(name string) []Point {
	return m.pools[name]
}

func (m *Map) PoolNames() []string {
	out := make([]string, 0, len(m.pools))
	for name := range m.pools {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
