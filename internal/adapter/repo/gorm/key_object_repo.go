package gormrepo

import (
	"context"
	"time"

	"islandgen/internal/adapter/repo/gorm/model"
	"islandgen/internal/app/ports"
	"islandgen/internal/domain/world"

	"gorm.io/gorm"
)

type KeyObjectRepo struct {
	db *gorm.DB
}

func NewKeyObjectRepo(db *gorm.DB) KeyObjectRepo {
	return KeyObjectRepo{db: db}
}

func (r KeyObjectRepo) ListBySeed(ctx context.Context, seed int64) ([]world.KeyObjectRecord, error) {
	var rows []model.KeyObject
	if err := dbFromCtx(ctx, r.db).
		Where("world_seed = ?", seed).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]world.KeyObjectRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, world.KeyObjectRecord{
			Position:  world.Point{X: int(m.X), Y: int(m.Y)},
			Biome:     m.Biome,
			Completed: m.Completed,
		})
	}
	return out, nil
}

// ReplaceAll should run inside a transaction so readers never see the seed
// without records.
func (r KeyObjectRepo) ReplaceAll(ctx context.Context, seed int64, records []world.KeyObjectRecord) error {
	db := dbFromCtx(ctx, r.db)
	if err := db.Where("world_seed = ?", seed).Delete(&model.KeyObject{}).Error; err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]model.KeyObject, 0, len(records))
	for _, rec := range records {
		rows = append(rows, model.KeyObject{
			WorldSeed: seed,
			Biome:     rec.Biome,
			X:         int32(rec.Position.X),
			Y:         int32(rec.Position.Y),
			Completed: rec.Completed,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return db.Create(&rows).Error
}

func (r KeyObjectRepo) MarkCompleted(ctx context.Context, seed int64, biome string) error {
	res := dbFromCtx(ctx, r.db).
		Model(&model.KeyObject{}).
		Where("world_seed = ? AND biome = ?", seed, biome).
		Updates(map[string]any{"completed": true, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}
