package worldgen

import (
	"math/rand"

	"islandgen/internal/domain/world"
)

// MinKeyObjectDistance is the minimum pairwise spacing of key objects.
func MinKeyObjectDistance(width, height int) float64 {
	return float64((width + height) / 8)
}

// IsPlaceable reports whether a key object may sit on t: off the map border and
// with no hill edge on any neighbour.
func IsPlaceable(m *world.Map, t *world.Tile) bool {
	if t.Pos.X <= 0 || t.Pos.X >= m.Width-1 || t.Pos.Y <= 0 || t.Pos.Y >= m.Height-1 {
		return false
	}
	for _, d := range world.Directions {
		n, ok := m.Neighbor(t, d)
		if !ok || n.HasHillEdge() {
			return false
		}
	}
	return true
}

// PlaceKeyObjects places at most one key object per biome pool. Pools and the
// tiles inside them are visited in an rng-shuffled order; a candidate is
// accepted when it is placeable and keeps the minimum distance to every
// earlier placement.
func PlaceKeyObjects(m *world.Map, rng *rand.Rand) []world.KeyObjectRecord {
	return PlaceMissingKeyObjects(m, nil, rng)
}

// PlaceMissingKeyObjects places key objects only for pools that existing does
// not already cover. New placements keep the minimum distance to existing
// records as well as to each other. existing is not modified.
func PlaceMissingKeyObjects(m *world.Map, existing []world.KeyObjectRecord, rng *rand.Rand) []world.KeyObjectRecord {
	names := m.PoolNames()
	rng.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })

	covered := map[string]bool{}
	for _, rec := range existing {
		if pool, ok := recordPool(m, rec); ok {
			covered[pool] = true
		}
	}
	minDist := MinKeyObjectDistance(m.Width, m.Height)
	taken := append([]world.KeyObjectRecord(nil), existing...)
	placed := []world.KeyObjectRecord{}
	for _, name := range names {
		if covered[name] {
			continue
		}
		pool := append([]world.Point(nil), m.Pool(name)...)
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		for _, pos := range pool {
			t, ok := m.TileAt(pos)
			if !ok || !IsPlaceable(m, t) || !farFromAll(pos, taken, minDist) {
				continue
			}
			rec := world.KeyObjectRecord{Position: pos, Biome: t.Biome.Name}
			markKeyObject(m, rec)
			placed = append(placed, rec)
			taken = append(taken, rec)
			break
		}
	}
	return placed
}

func farFromAll(pos world.Point, placed []world.KeyObjectRecord, minDist float64) bool {
	for _, p := range placed {
		if pos.DistanceTo(p.Position) < minDist {
			return false
		}
	}
	return true
}

// ValidKeyObjects filters persisted records down to those that still fit m:
// the position is placeable and its tile belongs to the recorded biome. Only
// the first record of each pool is kept. Records saved for another map size
// or biome table fall out here.
func ValidKeyObjects(m *world.Map, records []world.KeyObjectRecord) []world.KeyObjectRecord {
	seen := map[string]bool{}
	out := make([]world.KeyObjectRecord, 0, len(records))
	for _, rec := range records {
		pool, ok := recordPool(m, rec)
		if !ok || seen[pool] {
			continue
		}
		t, _ := m.TileAt(rec.Position)
		if !IsPlaceable(m, t) {
			continue
		}
		seen[pool] = true
		out = append(out, rec)
	}
	return out
}

// recordPool resolves the pool of the tile under rec, provided the tile's
// biome is the one recorded.
func recordPool(m *world.Map, rec world.KeyObjectRecord) (string, bool) {
	t, ok := m.TileAt(rec.Position)
	if !ok || t.Biome == nil || t.Biome.Name != rec.Biome || t.Biome.Pool == "" {
		return "", false
	}
	return t.Biome.Pool, true
}

// ApplyKeyObjects re-marks chunks for previously persisted records.
func ApplyKeyObjects(m *world.Map, records []world.KeyObjectRecord) {
	for _, rec := range records {
		markKeyObject(m, rec)
	}
}

func markKeyObject(m *world.Map, rec world.KeyObjectRecord) {
	if c, ok := m.Chunk(world.TileToChunkCoord(rec.Position)); ok {
		c.PlaceKeyObject(rec.Position)
	}
}
