package memory

import (
	"context"

	"islandgen/internal/domain/world"
)

type WorldChunkRepo struct {
	store *Store
}

func NewWorldChunkRepo(store *Store) WorldChunkRepo {
	return WorldChunkRepo{store: store}
}

func (r WorldChunkRepo) SaveChunk(ctx context.Context, seed int64, snapshot world.ChunkSnapshot) error {
	return r.store.write(ctx, func() error {
		r.store.chunks[chunkKey{seed: seed, origin: snapshot.Origin}] = snapshot
		return nil
	})
}

func (r WorldChunkRepo) GetChunk(ctx context.Context, seed int64, origin world.ChunkCoord) (world.ChunkSnapshot, bool, error) {
	var (
		snap world.ChunkSnapshot
		ok   bool
	)
	r.store.read(ctx, func() {
		snap, ok = r.store.chunks[chunkKey{seed: seed, origin: origin}]
	})
	return snap, ok, nil
}
