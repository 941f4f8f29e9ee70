package worldgen

import (
	"testing"

	"islandgen/internal/domain/world"
)

func TestClassifyWaterAndBeachPriority(t *testing.T) {
	c := NewClassifier(testBiomes(t))
	for _, temp := range []float64{0, 0.5, 1} {
		for _, precip := range []float64{0, 0.5, 1} {
			if got := c.Classify(0.05, precip, temp, false); got.Role != world.RoleOcean {
				t.Fatalf("0.05 off landmass got=%s want ocean", got.Name)
			}
			if got := c.Classify(0.05, precip, temp, true); got.Role != world.RoleLake {
				t.Fatalf("0.05 on landmass got=%s want lake", got.Name)
			}
			if got := c.Classify(0.20, precip, temp, false); got.Role != world.RoleBeach {
				t.Fatalf("0.20 off landmass got=%s want beach", got.Name)
			}
			if got := c.Classify(0.20, precip, temp, true); got.Role != world.RoleLand {
				t.Fatalf("0.20 on landmass got=%s want land", got.Name)
			}
		}
	}
}

func TestClassifyNearestPrototype(t *testing.T) {
	c := NewClassifier(testBiomes(t))
	cases := []struct {
		temp, precip float64
		want         string
	}{
		{0.9, 0.1, "desert"},
		{0.5, 0.6, "forest"},
		{0.85, 0.95, "rainforest"},
		{0.1, 0.4, "tundra"},
	}
	for _, tc := range cases {
		if got := c.Classify(0.6, tc.precip, tc.temp, true); got.Name != tc.want {
			t.Fatalf("(%v,%v) got=%s want=%s", tc.temp, tc.precip, got.Name, tc.want)
		}
	}
}

func TestClassifyTieBreakPrefersEarliestPreset(t *testing.T) {
	set, err := world.NewBiomeSet([]world.BiomePreset{
		{Name: "ocean", Type: "ocean", Role: world.RoleOcean},
		{Name: "beach", Type: "beach", Role: world.RoleBeach},
		{Name: "lake", Type: "lake", Role: world.RoleLake},
		{Name: "first", Type: "a", Role: world.RoleLand, Temperature: 0.4, Precipitation: 0.5},
		{Name: "second", Type: "b", Role: world.RoleLand, Temperature: 0.6, Precipitation: 0.5},
	})
	if err != nil {
		t.Fatalf("biome set: %v", err)
	}
	if got := NewClassifier(set).Classify(0.5, 0.5, 0.5, true); got.Name != "first" {
		t.Fatalf("tie got=%s want=first", got.Name)
	}
}
