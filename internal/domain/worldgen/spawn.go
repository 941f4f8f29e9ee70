package worldgen

import (
	"math/rand"

	"islandgen/internal/domain/world"
)

const (
	keyObjectGuardRadius = 7
	guardAttempts        = 64
)

// IsSpawnable reports whether an entity may stand on t.
func IsSpawnable(t *world.Tile) bool {
	if t == nil || t.Biome == nil {
		return false
	}
	switch t.Biome.Role {
	case world.RoleOcean, world.RoleLake, world.RoleBeach:
		return false
	}
	return t.Walkable && !t.HasHillEdge()
}

// SpawnableTile picks a uniformly random tile in [min, max). The tile is not
// checked for spawnability; callers retry with IsSpawnable.
func SpawnableTile(m *world.Map, minPos, maxPos world.Point, rng *rand.Rand) (*world.Tile, bool) {
	if maxPos.X <= minPos.X || maxPos.Y <= minPos.Y {
		return nil, false
	}
	pos := world.Point{
		X: minPos.X + rng.Intn(maxPos.X-minPos.X),
		Y: minPos.Y + rng.Intn(maxPos.Y-minPos.Y),
	}
	return m.TileAt(pos)
}

// ClosestWalkable returns the first neighbour on t's tier that can be walked on.
func ClosestWalkable(m *world.Map, t *world.Tile) (*world.Tile, bool) {
	for _, d := range world.Directions {
		n, ok := m.Neighbor(t, d)
		if ok && n != t && n.Tier == t.Tier && n.Walkable {
			return n, true
		}
	}
	return nil, false
}

// TileNearKeyObject picks a spawnable tile of c within the guard radius of its
// key object. Random probes come first; a scan of the window settles it.
func TileNearKeyObject(c *world.Chunk, rng *rand.Rand) (*world.Tile, bool) {
	if !c.ContainsKeyObject {
		return nil, false
	}
	k := world.TileToRelativeCoord(c.KeyObjectPos)
	minX, maxX := max(0, k.X-keyObjectGuardRadius), min(world.ChunkSize-1, k.X+keyObjectGuardRadius)
	minY, maxY := max(0, k.Y-keyObjectGuardRadius), min(world.ChunkSize-1, k.Y+keyObjectGuardRadius)

	for i := 0; i < guardAttempts; i++ {
		x := minX + rng.Intn(maxX-minX+1)
		y := minY + rng.Intn(maxY-minY+1)
		if t := c.At(x, y); t.Pos != c.KeyObjectPos && IsSpawnable(t) {
			return t, true
		}
	}
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			if t := c.At(x, y); t.Pos != c.KeyObjectPos && IsSpawnable(t) {
				return t, true
			}
		}
	}
	return nil, false
}
