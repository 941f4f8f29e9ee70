package worldgen

import (
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"

	"islandgen/internal/domain/world"
)

const (
	perlinAlpha = 2
	perlinBeta  = 2
)

// NoiseField samples seeded 2D Perlin noise in [0, 1]. One permutation table is
// built per seed and reused.
type NoiseField struct {
	fields map[int64]*perlin.Perlin
}

func NewNoiseField() *NoiseField {
	return &NoiseField{fields: map[int64]*perlin.Perlin{}}
}

// Sample evaluates the field at absolute tile coordinates. Coordinates are
// measured in chunks, then multiplied by scale and the octave frequency.
func (f *NoiseField) Sample(worldX, worldY float64, seed int64, scale, frequency float64) float64 {
	x := worldX / world.ChunkSize * scale * frequency
	y := worldY / world.ChunkSize * scale * frequency
	return normalizePerlin(f.field(seed).Noise2D(x, y))
}

// Octaves sums octaves with amplitude *= persistence and frequency *=
// lacunarity. The sum is not renormalized.
func (f *NoiseField) Octaves(worldX, worldY float64, seed int64, scale float64, octaves int, persistence, lacunarity float64) float64 {
	frequency, amplitude := 1.0, 1.0
	sum := 0.0
	for i := 0; i < octaves; i++ {
		sum += f.Sample(worldX, worldY, seed, scale, frequency) * amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	return sum
}

func (f *NoiseField) field(seed int64) *perlin.Perlin {
	if p, ok := f.fields[seed]; ok {
		return p
	}
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, 1, seed)
	f.fields[seed] = p
	return p
}

// normalizePerlin maps single-octave 2D Perlin output, bounded by ±√½, onto [0, 1].
func normalizePerlin(v float64) float64 {
	n := (v*math.Sqrt2 + 1) / 2
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// TreeField is the auxiliary simplex field trees are thinned against.
type TreeField struct {
	noise opensimplex.Noise
	scale float64
}

func NewTreeField(seed int64, scale float64) *TreeField {
	return &TreeField{noise: opensimplex.NewNormalized(seed), scale: scale}
}

func (t *TreeField) Sample(worldX, worldY int) float64 {
	x := float64(worldX) / world.ChunkSize * t.scale
	y := float64(worldY) / world.ChunkSize * t.scale
	return t.noise.Eval2(x, y)
}
