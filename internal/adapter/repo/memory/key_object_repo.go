package memory

import (
	"context"

	"islandgen/internal/app/ports"
	"islandgen/internal/domain/world"
)

type KeyObjectRepo struct {
	store *Store
}

func NewKeyObjectRepo(store *Store) KeyObjectRepo {
	return KeyObjectRepo{store: store}
}

func (r KeyObjectRepo) ListBySeed(ctx context.Context, seed int64) ([]world.KeyObjectRecord, error) {
	var out []world.KeyObjectRecord
	r.store.read(ctx, func() {
		out = append([]world.KeyObjectRecord{}, r.store.keyObjects[seed]...)
	})
	return out, nil
}

func (r KeyObjectRepo) ReplaceAll(ctx context.Context, seed int64, records []world.KeyObjectRecord) error {
	return r.store.write(ctx, func() error {
		r.store.keyObjects[seed] = append([]world.KeyObjectRecord{}, records...)
		return nil
	})
}

func (r KeyObjectRepo) MarkCompleted(ctx context.Context, seed int64, biome string) error {
	return r.store.write(ctx, func() error {
		for i, rec := range r.store.keyObjects[seed] {
			if rec.Biome == biome {
				r.store.keyObjects[seed][i].Completed = true
				return nil
			}
		}
		return ports.ErrNotFound
	})
}
