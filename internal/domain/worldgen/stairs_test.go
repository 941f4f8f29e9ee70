package worldgen

import (
	"testing"

	"islandgen/internal/domain/world"
)

func raise(m *world.Map, x0, x1, y0, y1, tier int) {
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			setTier(m, world.Point{X: x, Y: y}, tier)
		}
	}
}

func TestPlaceStairs(t *testing.T) {
	forest := &world.BiomePreset{Name: "forest", Type: "forest", Role: world.RoleLand}
	m := flatMap(64, forest, world.TierLow)
	raise(m, 5, 12, 10, 31, world.TierMid)  // rim bases x=6..11 at y=10
	raise(m, 14, 18, 20, 31, world.TierHigh) // other tier, bases x=15..17 at y=20
	raise(m, 22, 27, 20, 31, world.TierHigh) // same tier inside the exclusion square
	BuildAdjacency(m)

	if got := PlaceStairs(m); got != 9 {
		t.Fatalf("stairs placed got=%d want=9", got)
	}
	cases := []struct {
		pos  world.Point
		want world.EdgeType
	}{
		{world.Point{X: 6, Y: 10}, world.EdgeStaircase},
		{world.Point{X: 6, Y: 11}, world.EdgeStaircaseTop},
		{world.Point{X: 6, Y: 9}, world.EdgeStaircaseBot},
		{world.Point{X: 11, Y: 10}, world.EdgeStaircase},
		{world.Point{X: 16, Y: 20}, world.EdgeStaircase},
		{world.Point{X: 24, Y: 20}, world.EdgeBot},
	}
	for _, tc := range cases {
		if got := mustTile(t, m, tc.pos).HillEdge; got != tc.want {
			t.Fatalf("hill edge at %+v got=%s want=%s", tc.pos, got, tc.want)
		}
	}
}

func TestPlaceStairsOnFlatMap(t *testing.T) {
	forest := &world.BiomePreset{Name: "forest", Type: "forest", Role: world.RoleLand}
	m := flatMap(64, forest, world.TierMid)
	BuildAdjacency(m)
	if got := PlaceStairs(m); got != 0 {
		t.Fatalf("flat map got=%d stairs", got)
	}
}
