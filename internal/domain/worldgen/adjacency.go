package worldgen

import "islandgen/internal/domain/world"

// trimLookahead is how far above a tile the trim looks for the tier to resume.
const trimLookahead = 3

// TrimMalformations flattens tier spikes too short to be closed by a top edge:
// a tile raised above the tile below it drops back when the tile three rows up
// is on a different tier. Tiles whose lookahead leaves the chunk are skipped.
// Reads only the cached pre-trim tier grids, so the result does not depend on
// visiting order.
func TrimMalformations(m *world.Map) {
	for _, c := range m.Chunks() {
		for x := 0; x < world.ChunkSize; x++ {
			for y := 0; y+trimLookahead < world.ChunkSize; y++ {
				tier := c.TierAt(x, y)
				prev := tierAt(m, m.Clamp(c.Origin.Abs(world.Point{X: x, Y: y - 1})), tier)
				next := c.TierAt(x, y+trimLookahead)
				if prev < tier && next != tier {
					c.At(x, y).Tier = prev
				}
			}
		}
	}
}

func tierAt(m *world.Map, abs world.Point, fallback int) int {
	c, ok := m.Chunk(world.TileToChunkCoord(abs))
	if !ok {
		return fallback
	}
	rel := world.TileToRelativeCoord(abs)
	return c.TierAt(rel.X, rel.Y)
}

// ResolveNeighbors records the 8 neighbour coordinates of t. Coordinates past
// the map border are clamped back onto it, so border tiles list themselves or
// a border sibling instead of a missing neighbour.
func ResolveNeighbors(m *world.Map, t *world.Tile) {
	for _, d := range world.Directions {
		dx, dy := d.Offset()
		t.Neighbors[d] = m.Clamp(t.Pos.Add(dx, dy))
	}
}

// AssignEdges runs both edge passes for t: biome identity by biome type, and
// hill edges where the neighbour is not lower than t.
func AssignEdges(m *world.Map, t *world.Tile) {
	var biome, hill world.EdgeMask
	for _, d := range world.Directions {
		n, ok := m.Neighbor(t, d)
		if !ok {
			biome[d], hill[d] = true, true
			continue
		}
		biome[d] = sameBiomeType(t.Biome, n.Biome)
		hill[d] = t.Tier <= n.Tier
	}
	t.Edge = world.ClassifyEdge(biome)
	t.HillEdge = world.ClassifyEdge(hill)
}

func sameBiomeType(a, b *world.BiomePreset) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Type == b.Type
}

// BuildAdjacency trims tiers, resolves neighbours for every tile and then
// classifies both edge layers. All synthesis must be finished.
func BuildAdjacency(m *world.Map) {
	TrimMalformations(m)
	chunks := m.Chunks()
	for _, c := range chunks {
		for i := range c.Tiles {
			ResolveNeighbors(m, &c.Tiles[i])
		}
	}
	for _, c := range chunks {
		for i := range c.Tiles {
			AssignEdges(m, &c.Tiles[i])
		}
	}
}
