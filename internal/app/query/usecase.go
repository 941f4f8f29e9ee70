package query

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"islandgen/internal/app/ports"
	"islandgen/internal/domain/world"
	"islandgen/internal/domain/worldgen"
)

var ErrInvalidRequest = errors.New("invalid query request")

const spawnAttempts = 256

var (
	defaultSpawnMin = world.Point{X: 32, Y: 32}
	defaultSpawnMax = world.Point{X: 96, Y: 96}
)

var directionNames = map[world.Direction]string{
	world.DirLeft:     "left",
	world.DirTopLeft:  "top_left",
	world.DirTop:      "top",
	world.DirTopRight: "top_right",
	world.DirRight:    "right",
	world.DirBotRight: "bot_right",
	world.DirBot:      "bot",
	world.DirBotLeft:  "bot_left",
}

type UseCase struct {
	World   ports.WorldProvider
	Metrics ports.WorldMetrics

	mu  sync.Mutex
	rng *rand.Rand
}

func (u *UseCase) Summary(ctx context.Context) (SummaryResponse, error) {
	var out SummaryResponse
	err := u.World.Read(ctx, func(v ports.WorldView) error {
		out = SummaryResponse{
			Width:          v.Map.Width,
			Height:         v.Map.Height,
			ChunkSize:      world.ChunkSize,
			Chunks:         v.Map.ChunkCount(),
			RenderDistance: v.Map.RenderDistance,
			WorldSeed:      v.Params.WorldSeed,
			HeightSeed:     v.Params.HeightSeed,
			PrecipSeed:     v.Params.PrecipitationSeed,
			ActiveChunks:   v.Streamer.ActiveChunks(),
			KeyObjects:     append([]world.KeyObjectRecord{}, v.Map.KeyObjects...),
		}
		return nil
	})
	return out, err
}

func (u *UseCase) Tile(ctx context.Context, req TileRequest) (TileResponse, error) {
	abs := world.Point{X: req.X, Y: req.Y}
	var out TileResponse
	err := u.World.Read(ctx, func(v ports.WorldView) error {
		tile, ok := v.Map.TileAt(abs)
		u.recordLookup("tile", ok)
		if !ok {
			return ports.ErrNotFound
		}
		c, _ := v.Map.Chunk(world.TileToChunkCoord(abs))
		rel := world.TileToRelativeCoord(abs)
		out = TileResponse{
			Tile:          tile.Snapshot(c.HasTree(rel.X, rel.Y)),
			Chunk:         c.Origin,
			Relative:      rel,
			Neighbors:     make([]Neighbor, 0, len(world.Directions)),
			Spawnable:     worldgen.IsSpawnable(tile),
			KeyObjectHere: c.ContainsKeyObject && c.KeyObjectPos == abs,
		}
		for _, d := range world.Directions {
			out.Neighbors = append(out.Neighbors, Neighbor{Direction: directionNames[d], Pos: tile.Neighbor(d)})
		}
		if n, ok := worldgen.ClosestWalkable(v.Map, tile); ok {
			pos := n.Pos
			out.ClosestWalk = &pos
		}
		return nil
	})
	return out, err
}

// Chunk returns the chunk containing the given tile coordinate.
func (u *UseCase) Chunk(ctx context.Context, req ChunkRequest) (ChunkResponse, error) {
	abs := world.Point{X: req.X, Y: req.Y}
	var out ChunkResponse
	err := u.World.Read(ctx, func(v ports.WorldView) error {
		if !v.Map.Contains(abs) {
			u.recordLookup("chunk", false)
			return ports.ErrNotFound
		}
		c, ok := v.Map.Chunk(world.TileToChunkCoord(abs))
		u.recordLookup("chunk", ok)
		if !ok {
			return ports.ErrNotFound
		}
		out = ChunkResponse{Chunk: c.Snapshot()}
		return nil
	})
	return out, err
}

// Spawn picks a random spawnable tile inside the requested rectangle.
func (u *UseCase) Spawn(ctx context.Context, req SpawnRequest) (SpawnResponse, error) {
	minPos, maxPos := req.Min, req.Max
	if minPos == (world.Point{}) && maxPos == (world.Point{}) {
		minPos, maxPos = defaultSpawnMin, defaultSpawnMax
	}
	if maxPos.X <= minPos.X || maxPos.Y <= minPos.Y {
		return SpawnResponse{}, ErrInvalidRequest
	}
	var out SpawnResponse
	err := u.World.Read(ctx, func(v ports.WorldView) error {
		maxPos.X = min(maxPos.X, v.Map.Width)
		maxPos.Y = min(maxPos.Y, v.Map.Height)
		u.mu.Lock()
		defer u.mu.Unlock()
		rng := u.random()
		for i := 0; i < spawnAttempts; i++ {
			tile, ok := worldgen.SpawnableTile(v.Map, minPos, maxPos, rng)
			if ok && worldgen.IsSpawnable(tile) {
				c, _ := v.Map.Chunk(world.TileToChunkCoord(tile.Pos))
				rel := world.TileToRelativeCoord(tile.Pos)
				out = SpawnResponse{Tile: tile.Snapshot(c.HasTree(rel.X, rel.Y))}
				u.recordLookup("spawn", true)
				return nil
			}
		}
		u.recordLookup("spawn", false)
		return ports.ErrNotFound
	})
	return out, err
}

// GuardTile picks a spawnable tile near the key object of a biome, for
// placing its guards.
func (u *UseCase) GuardTile(ctx context.Context, req GuardRequest) (SpawnResponse, error) {
	biome := strings.TrimSpace(req.Biome)
	if biome == "" {
		return SpawnResponse{}, ErrInvalidRequest
	}
	var out SpawnResponse
	err := u.World.Read(ctx, func(v ports.WorldView) error {
		for _, rec := range v.Map.KeyObjects {
			if rec.Biome != biome {
				continue
			}
			c, ok := v.Map.Chunk(world.TileToChunkCoord(rec.Position))
			if !ok {
				break
			}
			u.mu.Lock()
			tile, ok := worldgen.TileNearKeyObject(c, u.random())
			u.mu.Unlock()
			u.recordLookup("guard", ok)
			if !ok {
				return ports.ErrNotFound
			}
			rel := world.TileToRelativeCoord(tile.Pos)
			out = SpawnResponse{Tile: tile.Snapshot(c.HasTree(rel.X, rel.Y))}
			return nil
		}
		u.recordLookup("guard", false)
		return ports.ErrNotFound
	})
	return out, err
}

// Seed fixes the random source used for spawn picks.
func (u *UseCase) Seed(seed int64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.rng = rand.New(rand.NewSource(seed))
}

func (u *UseCase) random() *rand.Rand {
	if u.rng == nil {
		u.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return u.rng
}

func (u *UseCase) recordLookup(kind string, found bool) {
	if u.Metrics != nil {
		u.Metrics.RecordLookup(kind, found)
	}
}
