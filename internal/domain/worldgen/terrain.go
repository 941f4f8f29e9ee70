package worldgen

import "math"

const (
	islandInnerPercent = 2
	islandOuterPercent = 10
)

// Synthesizer derives the per-tile scalar fields.
type Synthesizer struct {
	p     Params
	noise *NoiseField
}

func NewSynthesizer(p Params, noise *NoiseField) *Synthesizer {
	return &Synthesizer{p: p, noise: noise}
}

// MaskedElevation averages the height octaves and applies the island mask. The
// result is the elevation tiers are derived from.
func (s *Synthesizer) MaskedElevation(x, y int) (float64, bool) {
	seed := s.p.WorldSeed + s.p.HeightSeed
	frequency := s.p.HeightFrequency
	amplitude, amplitudeSum, sum := 1.0, 0.0, 0.0
	for i := 0; i < s.p.HeightOctaves; i++ {
		sum += s.noise.Sample(float64(x), float64(y), seed, s.p.Scale, frequency) * amplitude
		frequency *= frequency
		if frequency == 1 {
			frequency = 2
		}
		amplitudeSum += amplitude
		amplitude /= 2
	}
	return IslandMask(sum/amplitudeSum, x, y, s.p.Width, s.p.Height)
}

func (s *Synthesizer) Redistribute(e float64) float64 {
	return Redistribute(e, s.p.HeightExponent)
}

func (s *Synthesizer) Precipitation(x, y int) float64 {
	return s.noise.Octaves(float64(x), float64(y), s.p.WorldSeed+s.p.PrecipitationSeed, s.p.Scale,
		s.p.PrecipitationOctaves, s.p.PrecipitationPersistence, s.p.PrecipitationLacunarity)
}

// Temperature falls with distance from the equator row and with elevation.
func (s *Synthesizer) Temperature(y int, elevation float64) float64 {
	equator := s.p.Height / 2
	latitude := y - equator
	if latitude < 0 {
		latitude = -latitude
	}
	v := float64(latitude)/(float64(s.p.Height)/2)*s.p.TemperatureMultiplier - elevation*s.p.TemperatureLoss
	return clamp01(1 - v)
}

// IslandMask fades elevation towards the map border. Tiles within the inner
// band are forced to sea, tiles beyond the outer band are untouched, and the
// band between scales elevation linearly. The second result reports whether
// the tile is part of the landmass.
func IslandMask(e float64, x, y, width, height int) (float64, bool) {
	half := (width + height) / 2
	inner := half / 100 * islandInnerPercent
	outer := half / 100 * islandOuterPercent

	dist := min(y, x, width-x, height-y)
	if dist <= inner {
		return 0, false
	}
	if dist >= outer {
		return e, true
	}
	factor := float64(dist-inner) / float64(outer-inner)
	return e * factor, factor*e >= landmassThreshold(width, height)
}

func landmassThreshold(width, height int) float64 {
	switch {
	case width >= 512 && height >= 512:
		return 0.1
	case width >= 256 && height >= 256:
		return 0.15
	default:
		return 0.1
	}
}

// Redistribute raises elevation to exponent. A NaN result (negative base with a
// fractional exponent) is recomputed on the magnitude.
func Redistribute(e, exponent float64) float64 {
	v := math.Pow(e, exponent)
	if math.IsNaN(v) {
		v = math.Pow(math.Abs(e), exponent)
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
