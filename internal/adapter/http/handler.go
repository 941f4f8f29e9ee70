package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"islandgen/internal/app/keyobject"
	"islandgen/internal/app/ports"
	"islandgen/internal/app/query"
	"islandgen/internal/app/stream"
	"islandgen/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

var ErrInvalidQueryParam = errors.New("invalid query parameter")

type Handler struct {
	QueryUC     *query.UseCase
	StreamUC    stream.UseCase
	KeyObjectUC keyobject.UseCase
	KPI         kpiSnapshotProvider

	// AllowOrigins lists origins allowed to call the API from a browser. Empty
	// allows any origin.
	AllowOrigins []string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(newCORSPolicy(h.AllowOrigins).middleware())

	w := s.Group("/api/world")
	w.GET("", h.summary)
	w.GET("/tile", h.tile)
	w.GET("/chunk", h.chunk)
	w.GET("/spawn", h.spawn)
	w.POST("/stream", h.stream)
	w.GET("/key-objects", h.keyObjects)
	w.GET("/key-objects/guard", h.guardTile)
	w.POST("/key-objects/complete", h.completeKeyObject)

	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) summary(c context.Context, ctx *app.RequestContext) {
	resp, err := h.QueryUC.Summary(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) tile(c context.Context, ctx *app.RequestContext) {
	x, y, err := pointQuery(ctx, "x", "y")
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.QueryUC.Tile(c, query.TileRequest{X: x, Y: y})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) chunk(c context.Context, ctx *app.RequestContext) {
	x, y, err := pointQuery(ctx, "x", "y")
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.QueryUC.Chunk(c, query.ChunkRequest{X: x, Y: y})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

// spawn accepts an optional min_x/min_y/max_x/max_y rectangle. Without it the
// default spawn area is searched.
func (h Handler) spawn(c context.Context, ctx *app.RequestContext) {
	var req query.SpawnRequest
	if len(ctx.Query("min_x")) > 0 || len(ctx.Query("max_x")) > 0 {
		minX, minY, err := pointQuery(ctx, "min_x", "min_y")
		if err != nil {
			writeError(ctx, err)
			return
		}
		maxX, maxY, err := pointQuery(ctx, "max_x", "max_y")
		if err != nil {
			writeError(ctx, err)
			return
		}
		req.Min = world.Point{X: minX, Y: minY}
		req.Max = world.Point{X: maxX, Y: maxY}
	}
	resp, err := h.QueryUC.Spawn(c, req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) stream(c context.Context, ctx *app.RequestContext) {
	var body stream.Request
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.StreamUC.Execute(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) keyObjects(c context.Context, ctx *app.RequestContext) {
	resp, err := h.KeyObjectUC.List(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) guardTile(c context.Context, ctx *app.RequestContext) {
	resp, err := h.QueryUC.GuardTile(c, query.GuardRequest{Biome: string(ctx.Query("biome"))})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) completeKeyObject(c context.Context, ctx *app.RequestContext) {
	var body keyobject.CompleteRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	rec, err := h.KeyObjectUC.Complete(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, rec)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func pointQuery(ctx *app.RequestContext, xKey, yKey string) (int, int, error) {
	x, err := intQuery(ctx, xKey)
	if err != nil {
		return 0, 0, err
	}
	y, err := intQuery(ctx, yKey)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func intQuery(ctx *app.RequestContext, key string) (int, error) {
	raw := strings.TrimSpace(string(ctx.Query(key)))
	if raw == "" {
		return 0, errors.Join(ErrInvalidQueryParam, errors.New("missing "+key))
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Join(ErrInvalidQueryParam, errors.New("malformed "+key))
	}
	return v, nil
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrInvalidQueryParam):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_query", err.Error())
	case errors.Is(err, query.ErrInvalidRequest),
		errors.Is(err, stream.ErrInvalidRequest),
		errors.Is(err, keyobject.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	case errors.Is(err, ports.ErrWorldNotReady):
		writeErrorBody(ctx, consts.StatusServiceUnavailable, "world_not_ready", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeErrorBody(ctx, consts.StatusServiceUnavailable, "request_cancelled", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
