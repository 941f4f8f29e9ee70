package world

const (
	TierLow  = 0
	TierMid  = 1
	TierHigh = 2
)

// TierForElevation buckets an elevation into a discrete height tier. Bounds are
// exclusive, so exactly 0.25, 0.7 and 1 fall through to the lower tier or to 0.
func TierForElevation(e float64) int {
	switch {
	case e > 0.25 && e < 0.7:
		return TierMid
	case e > 0.7 && e < 1:
		return TierHigh
	default:
		return TierLow
	}
}

type Tile struct {
	Pos           Point
	Elevation     float64
	Precipitation float64
	Temperature   float64
	Landmass      bool
	Walkable      bool
	Tier          int
	Edge          EdgeType
	HillEdge      EdgeType
	Biome         *BiomePreset
	Neighbors     [8]Point

	inPool bool
}

func (t *Tile) Neighbor(d Direction) Point {
	return t.Neighbors[d]
}

func (t *Tile) HasHillEdge() bool {
	return t.HillEdge != "" && t.HillEdge != EdgeNone
}
