package stream

import (
	"context"
	"errors"
	"math"

	"islandgen/internal/app/ports"
	"islandgen/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var ErrInvalidRequest = errors.New("invalid stream request")

// defaultUnloadMargin widens the unload radius past the load radius so chunks
// on the boundary do not flap.
const defaultUnloadMargin = 15

type Request struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Response struct {
	Activated   []world.ChunkCoord `json:"activated"`
	Deactivated []world.ChunkCoord `json:"deactivated"`
	Active      []world.ChunkCoord `json:"active"`
}

type UseCase struct {
	World        ports.WorldProvider
	Metrics      ports.WorldMetrics
	UnloadMargin float64
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if math.IsNaN(req.X) || math.IsNaN(req.Y) || math.IsInf(req.X, 0) || math.IsInf(req.Y, 0) {
		return Response{}, ErrInvalidRequest
	}
	margin := u.UnloadMargin
	if margin <= 0 {
		margin = defaultUnloadMargin
	}
	var out Response
	err := u.World.Write(ctx, func(v ports.WorldView) error {
		load := float64(v.Map.RenderDistance)
		delta := v.Streamer.StreamUpdate(req.X, req.Y, load, load+margin)
		out = Response{
			Activated:   delta.Activated,
			Deactivated: delta.Deactivated,
			Active:      v.Streamer.ActiveChunks(),
		}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	if len(out.Activated)+len(out.Deactivated) > 0 {
		hlog.CtxDebugf(ctx, "stream at %.1f,%.1f: +%d -%d chunks", req.X, req.Y, len(out.Activated), len(out.Deactivated))
	}
	if u.Metrics != nil {
		u.Metrics.RecordStream(len(out.Activated), len(out.Deactivated))
	}
	return out, nil
}
