package ports

import (
	"context"

	"islandgen/internal/domain/world"
	"islandgen/internal/domain/worldgen"
)

// WorldView is the generated world as seen inside a Read or Write callback.
// It must not be retained after the callback returns.
type WorldView struct {
	Map      *world.Map
	Streamer *world.Streamer
	Params   worldgen.Params
}

type WorldProvider interface {
	Install(m *world.Map, params worldgen.Params)
	Read(ctx context.Context, fn func(WorldView) error) error
	Write(ctx context.Context, fn func(WorldView) error) error
}
