package world

import "math"

type StreamDelta struct {
	Activated   []ChunkCoord `json:"activated"`
	Deactivated []ChunkCoord `json:"deactivated"`
}

// Streamer activates chunks near an observer and retires distant ones. Record
// buffers of retired chunks are kept for reuse by the next activation.
type Streamer struct {
	m           *Map
	freeObjects [][]ObjectRecord
	freeTrees   [][]string
}

func NewStreamer(m *Map) *Streamer {
	return &Streamer{m: m}
}

// StreamUpdate activates chunks whose centre is closer than load and
// deactivates those farther than unload. Chunks in between keep their state,
// so repeated calls with the same observer change nothing.
func (s *Streamer) StreamUpdate(observerX, observerY, load, unload float64) StreamDelta {
	delta := StreamDelta{Activated: []ChunkCoord{}, Deactivated: []ChunkCoord{}}
	for x := 0; x < s.m.Width; x += ChunkSize {
		for y := 0; y < s.m.Height; y += ChunkSize {
			coord := ChunkCoord{X: x, Y: y}
			c, ok := s.m.Chunk(coord)
			if !ok {
				continue
			}
			cx, cy := coord.Center()
			dist := math.Hypot(cx-observerX, cy-observerY)
			switch {
			case dist < load && !c.Active:
				s.activate(c)
				delta.Activated = append(delta.Activated, coord)
			case dist > unload && c.Active:
				s.deactivate(c)
				delta.Deactivated = append(delta.Deactivated, coord)
			}
		}
	}
	return delta
}

func (s *Streamer) ActiveChunks() []ChunkCoord {
	out := []ChunkCoord{}
	for _, c := range s.m.Chunks() {
		if c.Active {
			out = append(out, c.Origin)
		}
	}
	return out
}

func (s *Streamer) activate(c *Chunk) {
	var objects []ObjectRecord
	var trees []string
	if n := len(s.freeObjects); n > 0 {
		objects = s.freeObjects[n-1]
		s.freeObjects = s.freeObjects[:n-1]
	}
	if n := len(s.freeTrees); n > 0 {
		trees = s.freeTrees[n-1]
		s.freeTrees = s.freeTrees[:n-1]
	}
	c.fillObjects(objects, trees)
	c.Active = true
}

func (s *Streamer) deactivate(c *Chunk) {
	objects, trees := c.clearObjects()
	if cap(objects) > 0 {
		s.freeObjects = append(s.freeObjects, objects)
	}
	if cap(trees) > 0 {
		s.freeTrees = append(s.freeTrees, trees)
	}
	c.Active = false
}
