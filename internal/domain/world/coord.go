package world

import "math"

// ChunkSize is the edge length of a chunk in tiles.
const ChunkSize = 32

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) DistanceTo(o Point) float64 {
	return math.Hypot(float64(p.X-o.X), float64(p.Y-o.Y))
}

// ChunkCoord is the absolute tile coordinate of a chunk's lower-left corner,
// always a multiple of ChunkSize.
type ChunkCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c ChunkCoord) Abs(rel Point) Point {
	return Point{X: c.X + rel.X, Y: c.Y + rel.Y}
}

func (c ChunkCoord) Center() (float64, float64) {
	return float64(c.X + ChunkSize/2), float64(c.Y + ChunkSize/2)
}

func TileToChunkCoord(abs Point) ChunkCoord {
	return ChunkCoord{
		X: floorDiv(abs.X, ChunkSize) * ChunkSize,
		Y: floorDiv(abs.Y, ChunkSize) * ChunkSize,
	}
}

func TileToRelativeCoord(abs Point) Point {
	c := TileToChunkCoord(abs)
	return Point{X: abs.X - c.X, Y: abs.Y - c.Y}
}

func floorDiv(a, b int) int {
	if a >= 0 {
		return a / b
	}
	return -(((-a) + b - 1) / b)
}
