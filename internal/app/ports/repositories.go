package ports

import (
	"context"

	"islandgen/internal/domain/world"
)

type KeyObjectRepository interface {
	ListBySeed(ctx context.Context, seed int64) ([]world.KeyObjectRecord, error)
	// ReplaceAll drops every record of seed and stores records in their place.
	ReplaceAll(ctx context.Context, seed int64, records []world.KeyObjectRecord) error
	MarkCompleted(ctx context.Context, seed int64, biome string) error
}

type ChunkSnapshotRepository interface {
	SaveChunk(ctx context.Context, seed int64, snapshot world.ChunkSnapshot) error
	GetChunk(ctx context.Context, seed int64, origin world.ChunkCoord) (world.ChunkSnapshot, bool, error)
}
