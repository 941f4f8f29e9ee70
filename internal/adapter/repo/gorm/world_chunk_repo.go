package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"islandgen/internal/adapter/repo/gorm/model"
	"islandgen/internal/domain/world"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorldChunkRepo struct {
	db *gorm.DB
}

func NewWorldChunkRepo(db *gorm.DB) WorldChunkRepo {
	return WorldChunkRepo{db: db}
}

func (r WorldChunkRepo) GetChunk(ctx context.Context, seed int64, origin world.ChunkCoord) (world.ChunkSnapshot, bool, error) {
	var row model.WorldChunk
	err := dbFromCtx(ctx, r.db).
		Where(map[string]any{
			"world_seed": seed,
			"chunk_x":    int32(origin.X),
			"chunk_y":    int32(origin.Y),
		}).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return world.ChunkSnapshot{}, false, nil
		}
		return world.ChunkSnapshot{}, false, err
	}
	snap, err := decodeChunkSnapshot(row.Snapshot)
	if err != nil {
		return world.ChunkSnapshot{}, false, err
	}
	snap.Origin = origin
	return snap, true, nil
}

func (r WorldChunkRepo) SaveChunk(ctx context.Context, seed int64, snapshot world.ChunkSnapshot) error {
	b, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	row := model.WorldChunk{
		WorldSeed:         seed,
		ChunkX:            int32(snapshot.Origin.X),
		ChunkY:            int32(snapshot.Origin.Y),
		ContainsKeyObject: snapshot.ContainsKeyObject,
		Snapshot:          b,
		UpdatedAt:         time.Now(),
	}
	return dbFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "world_seed"}, {Name: "chunk_x"}, {Name: "chunk_y"}},
		DoUpdates: clause.AssignmentColumns([]string{"contains_key_object", "snapshot", "updated_at"}),
	}).Create(&row).Error
}

func decodeChunkSnapshot(data []byte) (world.ChunkSnapshot, error) {
	out := world.ChunkSnapshot{}
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return world.ChunkSnapshot{}, err
	}
	return out, nil
}
