package worldgen

import (
	"testing"

	"islandgen/internal/domain/world"
)

func testParams(size int) Params {
	return Params{
		WorldSeed:                271828,
		HeightSeed:               314159,
		PrecipitationSeed:        161803,
		Width:                    size,
		Height:                   size,
		Scale:                    1,
		HeightOctaves:            3,
		HeightFrequency:          1,
		HeightExponent:           1.4,
		PrecipitationOctaves:     3,
		PrecipitationPersistence: 0.5,
		PrecipitationLacunarity:  2,
		TemperatureMultiplier:    1,
		TemperatureLoss:          0.5,
		TreeScale:                16,
		RenderDistance:           64,
	}
}

func testBiomes(t *testing.T) *world.BiomeSet {
	t.Helper()
	set, err := world.NewBiomeSet(world.DefaultBiomes())
	if err != nil {
		t.Fatalf("biome set: %v", err)
	}
	return set
}

// flatMap builds a fully synthesized map with one biome, constant elevation and
// a single tier, without running noise.
func flatMap(size int, biome *world.BiomePreset, tier int) *world.Map {
	m := world.NewMap(size, size, 0)
	for x := 0; x < size; x += world.ChunkSize {
		for y := 0; y < size; y += world.ChunkSize {
			c := m.GetOrCreateChunk(world.ChunkCoord{X: x, Y: y})
			for rx := 0; rx < world.ChunkSize; rx++ {
				for ry := 0; ry < world.ChunkSize; ry++ {
					t := c.At(rx, ry)
					t.Elevation = 0.5
					t.Landmass = true
					t.Biome = biome
					t.Tier = tier
					c.SetTier(rx, ry, tier)
				}
			}
		}
	}
	return m
}

func setTier(m *world.Map, abs world.Point, tier int) {
	c, _ := m.Chunk(world.TileToChunkCoord(abs))
	rel := world.TileToRelativeCoord(abs)
	c.SetTier(rel.X, rel.Y, tier)
	c.At(rel.X, rel.Y).Tier = tier
}

func mustTile(t *testing.T, m *world.Map, abs world.Point) *world.Tile {
	t.Helper()
	tile, ok := m.TileAt(abs)
	if !ok {
		t.Fatalf("missing tile %+v", abs)
	}
	return tile
}
