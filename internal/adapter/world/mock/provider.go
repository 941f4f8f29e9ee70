package mock

import (
	"islandgen/internal/adapter/world/runtime"
	"islandgen/internal/domain/world"
	"islandgen/internal/domain/worldgen"
)

const Size = 64

var (
	Forest = &world.BiomePreset{Name: "forest", Type: "forest", Role: world.RoleLand, TreeRadius: 2, TreeSprite: "oak", Pool: "forest"}
	Ocean  = &world.BiomePreset{Name: "ocean", Type: "ocean", Role: world.RoleOcean}

	KeyObject = world.KeyObjectRecord{Position: world.Point{X: 40, Y: 40}, Biome: "forest"}
)

// Map builds a small fixed world without noise: forest everywhere except an
// ocean strip along x < 4, one tree at (10,10) and one key object.
func Map() *world.Map {
	m := world.NewMap(Size, Size, 32)
	for x := 0; x < Size; x += world.ChunkSize {
		for y := 0; y < Size; y += world.ChunkSize {
			c := m.GetOrCreateChunk(world.ChunkCoord{X: x, Y: y})
			for i := range c.Tiles {
				t := &c.Tiles[i]
				t.Elevation = 0.5
				t.Landmass = true
				t.Tier = world.TierMid
				t.Biome = Forest
				if t.Pos.X < 4 {
					t.Elevation = 0.01
					t.Landmass = false
					t.Tier = world.TierLow
					t.Biome = Ocean
				}
				rel := world.TileToRelativeCoord(t.Pos)
				c.SetTier(rel.X, rel.Y, t.Tier)
			}
		}
	}
	tree, _ := m.TileAt(world.Point{X: 10, Y: 10})
	tree.Walkable = false
	c, _ := m.Chunk(world.ChunkCoord{})
	c.SetTree(10, 10, true)

	worldgen.BuildAdjacency(m)
	worldgen.ApplyKeyObjects(m, []world.KeyObjectRecord{KeyObject})
	m.KeyObjects = []world.KeyObjectRecord{KeyObject}
	return m
}

// NewProvider returns a runtime provider with Map installed.
func NewProvider() *runtime.Provider {
	p := runtime.NewProvider()
	p.Install(Map(), worldgen.Params{WorldSeed: 1, Width: Size, Height: Size, RenderDistance: 32})
	return p
}
