package generate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"islandgen/internal/app/ports"
	"islandgen/internal/domain/world"
	"islandgen/internal/domain/worldgen"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var ErrInvalidRequest = errors.New("invalid generate request")

// UseCase builds the world for a parameter set and installs it. Persisted key
// objects of the same seed are re-applied when they still fit the map, pools
// without one get a fresh placement, and the merged set is stored. Chunk snapshots are exported when a chunk repository is set.
type UseCase struct {
	Biomes     *world.BiomeSet
	KeyObjects ports.KeyObjectRepository
	Chunks     ports.ChunkSnapshotRepository
	TxManager  ports.TxManager
	World      ports.WorldProvider
	Metrics    ports.WorldMetrics
	Now        func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if err := req.Params.Validate(); err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	now := u.Now
	if now == nil {
		now = time.Now
	}
	started := now()
	seed := req.Params.WorldSeed

	saved, err := u.KeyObjects.ListBySeed(ctx, seed)
	if err != nil {
		u.recordFailure()
		return Response{}, fmt.Errorf("load key objects: %w", err)
	}

	g, err := worldgen.NewGenerator(req.Params, u.Biomes, worldgen.WithKeyObjects(saved))
	if err != nil {
		u.recordFailure()
		return Response{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	band := -1
	for !g.Done() {
		if err := ctx.Err(); err != nil {
			u.recordFailure()
			return Response{}, err
		}
		pr := g.Step()
		if b := int(pr.Fraction * 10); b != band {
			band = b
			hlog.CtxInfof(ctx, "world %d generation %d%% (%s)", seed, b*10, pr.Phase)
		}
	}
	m := g.Map()

	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if g.KeyObjectsChanged() {
			if err := u.KeyObjects.ReplaceAll(txCtx, seed, m.KeyObjects); err != nil {
				return fmt.Errorf("save key objects: %w", err)
			}
		}
		if u.Chunks == nil {
			return nil
		}
		for _, c := range m.Chunks() {
			if err := u.Chunks.SaveChunk(txCtx, seed, c.Snapshot()); err != nil {
				return fmt.Errorf("save chunk %d,%d: %w", c.Origin.X, c.Origin.Y, err)
			}
		}
		return nil
	})
	if err != nil {
		u.recordFailure()
		return Response{}, err
	}

	u.World.Install(m, req.Params)
	took := now().Sub(started)
	if u.Metrics != nil {
		u.Metrics.RecordGeneration(m.ChunkCount(), g.StairCount(), g.Reloaded(), took)
	}
	reloaded, placed, dropped := g.KeyObjectCounts()
	if dropped > 0 {
		hlog.CtxWarnf(ctx, "world %d dropped %d stored key objects that no longer fit the map", seed, dropped)
	}
	if pools := len(m.PoolNames()); len(m.KeyObjects) < pools {
		hlog.CtxWarnf(ctx, "world %d has key objects for %d of %d biome pools", seed, len(m.KeyObjects), pools)
	}
	hlog.CtxInfof(ctx, "world %d ready: %d chunks, %d stairs, key objects reloaded=%d placed=%d in %s",
		seed, m.ChunkCount(), g.StairCount(), reloaded, placed, took)

	return Response{
		Width:      m.Width,
		Height:     m.Height,
		Seed:       seed,
		Chunks:     m.ChunkCount(),
		Stairs:     g.StairCount(),
		Reloaded:   g.Reloaded(),
		KeyObjects: append([]world.KeyObjectRecord{}, m.KeyObjects...),
		TookMS:     took.Milliseconds(),
	}, nil
}

func (u UseCase) recordFailure() {
	if u.Metrics != nil {
		u.Metrics.RecordGenerationFailure()
	}
}
