package generate

import (
	"islandgen/internal/domain/world"
	"islandgen/internal/domain/worldgen"
)

type Request struct {
	Params worldgen.Params
}

type Response struct {
	Width      int                     `json:"width"`
	Height     int                     `json:"height"`
	Seed       int64                   `json:"seed"`
	Chunks     int                     `json:"chunks"`
	Stairs     int                     `json:"stairs"`
	Reloaded   bool                    `json:"key_objects_reloaded"`
	KeyObjects []world.KeyObjectRecord `json:"key_objects"`
	TookMS     int64                   `json:"took_ms"`
}
