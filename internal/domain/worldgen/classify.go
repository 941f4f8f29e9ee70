package worldgen

import (
	"math"

	"islandgen/internal/domain/world"
)

const (
	waterLevel = 0.08
	beachLevel = 0.25
)

type Classifier struct {
	biomes *world.BiomeSet
}

func NewClassifier(biomes *world.BiomeSet) Classifier {
	return Classifier{biomes: biomes}
}

// Classify picks a biome for the given fields. Water and beach are decided by
// elevation alone; every other tile takes the land preset closest in
// (temperature, precipitation), the earliest declared preset winning ties.
func (c Classifier) Classify(elevation, precipitation, temperature float64, landmass bool) *world.BiomePreset {
	if elevation < waterLevel {
		if landmass {
			return c.biomes.Lake()
		}
		return c.biomes.Ocean()
	}
	if elevation <= beachLevel && !landmass {
		return c.biomes.Beach()
	}

	var best *world.BiomePreset
	bestDist := math.Inf(1)
	for _, p := range c.biomes.Presets() {
		if p.Role != world.RoleLand {
			continue
		}
		d := math.Hypot(temperature-p.Temperature, precipitation-p.Precipitation)
		if d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}
