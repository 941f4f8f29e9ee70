package worldgen

import "islandgen/internal/domain/world"

const (
	stairRadius    = 30
	stairThreshold = 2
)

// PlaceStairs marks staircases on the lower rim of tier steps. A base tile has
// its top row and side neighbours on its own tier and its bottom row strictly
// lower. Chunks are visited in creation order and columns before rows. A base
// is accepted when it leaves the exclusion square of the last staircase, lies
// within the widening threshold of it, or sits on another tier.
func PlaceStairs(m *world.Map) int {
	placed := 0
	next := world.Point{}
	lastX, lastTier := 0, 0
	for _, c := range m.Chunks() {
		for x := 1; x < world.ChunkSize-1; x++ {
			for y := 1; y < world.ChunkSize-1; y++ {
				if !isStairBase(c, x, y) {
					continue
				}
				abs := c.Origin.Abs(world.Point{X: x, Y: y})
				tier := c.At(x, y).Tier
				if !(abs.X >= next.X || abs.Y >= next.Y || abs.X < lastX+stairThreshold || lastTier != tier) {
					continue
				}
				placed++
				next = abs.Add(stairRadius, stairRadius)
				lastX, lastTier = abs.X, tier
				c.At(x, y).HillEdge = world.EdgeStaircase
				c.At(x, y+1).HillEdge = world.EdgeStaircaseTop
				c.At(x, y-1).HillEdge = world.EdgeStaircaseBot
			}
		}
	}
	return placed
}

func isStairBase(c *world.Chunk, x, y int) bool {
	z := c.TierAt(x, y)
	return c.TierAt(x-1, y+1) == z && c.TierAt(x, y+1) == z && c.TierAt(x+1, y+1) == z &&
		c.TierAt(x-1, y) == z && c.TierAt(x+1, y) == z &&
		c.TierAt(x-1, y-1) < z && c.TierAt(x, y-1) < z && c.TierAt(x+1, y-1) < z
}
