package query

import "islandgen/internal/domain/world"

type TileRequest struct {
	X int
	Y int
}

type ChunkRequest struct {
	X int
	Y int
}

// SpawnRequest bounds the search rectangle, max exclusive. A zero rectangle
// selects the default spawn area.
type SpawnRequest struct {
	Min world.Point
	Max world.Point
}

// GuardRequest names the biome whose key object needs a guard spot.
type GuardRequest struct {
	Biome string
}

type Neighbor struct {
	Direction string      `json:"direction"`
	Pos       world.Point `json:"pos"`
}

type TileResponse struct {
	Tile          world.TileSnapshot `json:"tile"`
	Chunk         world.ChunkCoord   `json:"chunk"`
	Relative      world.Point        `json:"relative"`
	Neighbors     []Neighbor         `json:"neighbors"`
	ClosestWalk   *world.Point       `json:"closest_walkable,omitempty"`
	Spawnable     bool               `json:"spawnable"`
	KeyObjectHere bool               `json:"key_object_here"`
}

type ChunkResponse struct {
	Chunk world.ChunkSnapshot `json:"chunk"`
}

type SpawnResponse struct {
	Tile world.TileSnapshot `json:"tile"`
}

type SummaryResponse struct {
	Width          int                     `json:"width"`
	Height         int                     `json:"height"`
	ChunkSize      int                     `json:"chunk_size"`
	Chunks         int                     `json:"chunks"`
	RenderDistance int                     `json:"render_distance"`
	WorldSeed      int64                   `json:"world_seed"`
	HeightSeed     int64                   `json:"height_seed"`
	PrecipSeed     int64                   `json:"precipitation_seed"`
	ActiveChunks   []world.ChunkCoord      `json:"active_chunks"`
	KeyObjects     []world.KeyObjectRecord `json:"key_objects"`
}
