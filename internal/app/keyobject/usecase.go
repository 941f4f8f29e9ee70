package keyobject

import (
	"context"
	"errors"
	"strings"

	"islandgen/internal/app/ports"
	"islandgen/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var ErrInvalidRequest = errors.New("invalid key object request")

type CompleteRequest struct {
	Biome string `json:"biome"`
}

type ListResponse struct {
	KeyObjects []world.KeyObjectRecord `json:"key_objects"`
}

type UseCase struct {
	Repo      ports.KeyObjectRepository
	TxManager ports.TxManager
	World     ports.WorldProvider
}

func (u UseCase) List(ctx context.Context) (ListResponse, error) {
	var out ListResponse
	err := u.World.Read(ctx, func(v ports.WorldView) error {
		out.KeyObjects = append([]world.KeyObjectRecord{}, v.Map.KeyObjects...)
		return nil
	})
	return out, err
}

// Complete marks the key object of a biome as completed, both in storage and
// in the live world.
func (u UseCase) Complete(ctx context.Context, req CompleteRequest) (world.KeyObjectRecord, error) {
	biome := strings.TrimSpace(req.Biome)
	if biome == "" {
		return world.KeyObjectRecord{}, ErrInvalidRequest
	}
	var out world.KeyObjectRecord
	err := u.World.Write(ctx, func(v ports.WorldView) error {
		idx := -1
		for i, rec := range v.Map.KeyObjects {
			if rec.Biome == biome {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ports.ErrNotFound
		}
		if v.Map.KeyObjects[idx].Completed {
			return ports.ErrConflict
		}
		if err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
			return u.Repo.MarkCompleted(txCtx, v.Params.WorldSeed, biome)
		}); err != nil {
			return err
		}
		v.Map.KeyObjects[idx].Completed = true
		out = v.Map.KeyObjects[idx]
		hlog.CtxInfof(ctx, "key object %s at %d,%d completed", biome, out.Position.X, out.Position.Y)
		return nil
	})
	return out, err
}
