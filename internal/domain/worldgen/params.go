package worldgen

import (
	"errors"
	"fmt"

	"islandgen/internal/domain/world"
)

var ErrInvalidParams = errors.New("invalid generation parameters")

// Params is the full parameter set of a generation run. Equal params and an
// equal biome table always produce an identical map.
type Params struct {
	WorldSeed         int64
	HeightSeed        int64
	PrecipitationSeed int64
	Width             int
	Height            int
	Scale             float64

	HeightOctaves   int
	HeightFrequency float64
	HeightExponent  float64

	PrecipitationOctaves     int
	PrecipitationPersistence float64
	PrecipitationLacunarity  float64

	TemperatureMultiplier float64
	TemperatureLoss       float64

	TreeScale      float64
	RenderDistance int
}

func (p Params) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: map size %dx%d", ErrInvalidParams, p.Width, p.Height)
	case p.Width%world.ChunkSize != 0 || p.Height%world.ChunkSize != 0:
		return fmt.Errorf("%w: map size %dx%d is not a multiple of %d", ErrInvalidParams, p.Width, p.Height, world.ChunkSize)
	case p.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive", ErrInvalidParams)
	case p.HeightOctaves <= 0:
		return fmt.Errorf("%w: height octaves must be positive", ErrInvalidParams)
	case p.HeightFrequency <= 0:
		return fmt.Errorf("%w: height frequency must be positive", ErrInvalidParams)
	case p.HeightExponent <= 0:
		return fmt.Errorf("%w: height exponent must be positive", ErrInvalidParams)
	case p.PrecipitationOctaves <= 0:
		return fmt.Errorf("%w: precipitation octaves must be positive", ErrInvalidParams)
	case p.PrecipitationPersistence <= 0 || p.PrecipitationLacunarity <= 0:
		return fmt.Errorf("%w: precipitation persistence and lacunarity must be positive", ErrInvalidParams)
	case p.TreeScale <= 0:
		return fmt.Errorf("%w: tree scale must be positive", ErrInvalidParams)
	case p.RenderDistance < 0:
		return fmt.Errorf("%w: render distance must not be negative", ErrInvalidParams)
	}
	return nil
}
