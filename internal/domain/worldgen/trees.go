package worldgen

import "islandgen/internal/domain/world"

// PlaceTrees keeps a tree wherever the tree field peaks within the tile's biome
// radius. The window is clipped to the chunk and compared with exact equality,
// so equal peaks inside one window each grow a tree. Tree tiles become
// unwalkable. Biomes with a non-positive radius grow nothing.
func PlaceTrees(c *world.Chunk, field *TreeField) {
	var values [world.ChunkSize][world.ChunkSize]float64
	for x := 0; x < world.ChunkSize; x++ {
		for y := 0; y < world.ChunkSize; y++ {
			t := c.At(x, y)
			values[x][y] = field.Sample(t.Pos.X, t.Pos.Y)
		}
	}

	for x := 0; x < world.ChunkSize; x++ {
		for y := 0; y < world.ChunkSize; y++ {
			t := c.At(x, y)
			if t.Biome == nil || t.Biome.TreeRadius <= 0 {
				continue
			}
			r := int(t.Biome.TreeRadius)
			peak := 0.0
			for nx := max(0, x-r); nx <= min(world.ChunkSize-1, x+r); nx++ {
				for ny := max(0, y-r); ny <= min(world.ChunkSize-1, y+r); ny++ {
					if values[nx][ny] >= peak {
						peak = values[nx][ny]
					}
				}
			}
			if values[x][y] == peak {
				c.SetTree(x, y, true)
				t.Walkable = false
			}
		}
	}
}
