package worldgen

import (
	"context"
	"math/rand"

	"islandgen/internal/domain/world"
)

type Phase string

const (
	PhaseElevation     Phase = "elevation"
	PhasePrecipitation Phase = "precipitation"
	PhaseTemperature   Phase = "temperature"
	PhaseTrees         Phase = "trees"
	PhaseAdjacency     Phase = "adjacency"
	PhaseKeyObjects    Phase = "key_objects"
	PhaseStairs        Phase = "stairs"
	PhaseDone          Phase = "done"
)

var columnPhases = []Phase{PhaseElevation, PhasePrecipitation, PhaseTemperature, PhaseTrees}

type Progress struct {
	Phase    Phase
	Fraction float64
}

type Option func(*Generator)

// WithKeyObjects supplies persisted key-object records. Records that still fit
// the generated map are re-applied; pools without one get a fresh placement.
func WithKeyObjects(records []world.KeyObjectRecord) Option {
	return func(g *Generator) {
		g.saved = append([]world.KeyObjectRecord(nil), records...)
	}
}

// Generator runs the generation phases one step at a time. Each of the four
// per-chunk phases takes one step per chunk column over the whole map; the
// adjacency phase starts only once trees are done everywhere. Adjacency, key
// objects and stairs take one step each.
type Generator struct {
	params     Params
	biomes     *world.BiomeSet
	m          *world.Map
	synth      *Synthesizer
	classifier Classifier
	trees      *TreeField
	rng        *rand.Rand

	saved    []world.KeyObjectRecord
	reloaded int
	placed   int
	dropped  int
	stairs   int

	phase      int
	column     int
	steps      int
	totalSteps int
}

func NewGenerator(p Params, biomes *world.BiomeSet, opts ...Option) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if biomes == nil {
		return nil, world.ErrInvalidBiomeSet
	}
	columns := p.Width / world.ChunkSize
	g := &Generator{
		params:     p,
		biomes:     biomes,
		m:          world.NewMap(p.Width, p.Height, p.RenderDistance),
		synth:      NewSynthesizer(p, NewNoiseField()),
		classifier: NewClassifier(biomes),
		trees:      NewTreeField(p.WorldSeed, p.TreeScale),
		rng:        rand.New(rand.NewSource(p.WorldSeed)),
		totalSteps: columns*len(columnPhases) + 3,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Generator) Phase() Phase {
	if g.phase < len(columnPhases) {
		return columnPhases[g.phase]
	}
	switch g.phase - len(columnPhases) {
	case 0:
		return PhaseAdjacency
	case 1:
		return PhaseKeyObjects
	case 2:
		return PhaseStairs
	}
	return PhaseDone
}

func (g *Generator) Done() bool {
	return g.Phase() == PhaseDone
}

// Step runs the next unit of work and reports the phase it belonged to.
func (g *Generator) Step() Progress {
	phase := g.Phase()
	switch phase {
	case PhaseDone:
		return Progress{Phase: PhaseDone, Fraction: 1}
	case PhaseElevation, PhasePrecipitation, PhaseTemperature, PhaseTrees:
		g.runColumn(phase, g.column*world.ChunkSize)
		g.column++
		if g.column*world.ChunkSize >= g.params.Width {
			g.column = 0
			g.phase++
		}
	case PhaseAdjacency:
		BuildAdjacency(g.m)
		g.phase++
	case PhaseKeyObjects:
		g.placeKeyObjects()
		g.phase++
	case PhaseStairs:
		g.stairs = PlaceStairs(g.m)
		g.phase++
	}
	g.steps++
	return Progress{Phase: phase, Fraction: float64(g.steps) / float64(g.totalSteps)}
}

func (g *Generator) runColumn(phase Phase, x int) {
	for y := 0; y < g.params.Height; y += world.ChunkSize {
		c := g.m.GetOrCreateChunk(world.ChunkCoord{X: x, Y: y})
		switch phase {
		case PhaseElevation:
			g.elevation(c)
		case PhasePrecipitation:
			g.precipitation(c)
		case PhaseTemperature:
			g.temperature(c)
		case PhaseTrees:
			g.classify(c)
			PlaceTrees(c, g.trees)
		}
	}
}

func (g *Generator) elevation(c *world.Chunk) {
	for x := 0; x < world.ChunkSize; x++ {
		for y := 0; y < world.ChunkSize; y++ {
			t := c.At(x, y)
			e, landmass := g.synth.MaskedElevation(t.Pos.X, t.Pos.Y)
			tier := world.TierForElevation(e)
			t.Elevation = g.synth.Redistribute(e)
			t.Landmass = landmass
			t.Tier = tier
			c.SetTier(x, y, tier)
		}
	}
}

func (g *Generator) precipitation(c *world.Chunk) {
	for i := range c.Tiles {
		t := &c.Tiles[i]
		t.Precipitation = g.synth.Precipitation(t.Pos.X, t.Pos.Y)
	}
}

func (g *Generator) temperature(c *world.Chunk) {
	for i := range c.Tiles {
		t := &c.Tiles[i]
		t.Temperature = g.synth.Temperature(t.Pos.Y, t.Elevation)
	}
}

// classify assigns biomes column by column so pool order follows generation
// order.
func (g *Generator) classify(c *world.Chunk) {
	for x := 0; x < world.ChunkSize; x++ {
		for y := 0; y < world.ChunkSize; y++ {
			t := c.At(x, y)
			t.Biome = g.classifier.Classify(t.Elevation, t.Precipitation, t.Temperature, t.Landmass)
			g.m.AddToPool(t)
		}
	}
}

func (g *Generator) placeKeyObjects() {
	kept := ValidKeyObjects(g.m, g.saved)
	ApplyKeyObjects(g.m, kept)
	fresh := PlaceMissingKeyObjects(g.m, kept, g.rng)
	g.reloaded = len(kept)
	g.dropped = len(g.saved) - len(kept)
	g.placed = len(fresh)
	g.m.KeyObjects = append(kept, fresh...)
}

func (g *Generator) Map() *world.Map { return g.m }

// Reloaded reports whether any key object came from persisted records.
func (g *Generator) Reloaded() bool { return g.reloaded > 0 }

// KeyObjectsChanged reports whether the key objects differ from the persisted
// records: some were placed fresh or some saved records no longer fit.
func (g *Generator) KeyObjectsChanged() bool { return g.placed > 0 || g.dropped > 0 }

// KeyObjectCounts returns how many key objects were reloaded, freshly placed
// and dropped as stale.
func (g *Generator) KeyObjectCounts() (reloaded, placed, dropped int) {
	return g.reloaded, g.placed, g.dropped
}

func (g *Generator) StairCount() int { return g.stairs }

// Generate runs every phase to completion. progress, when set, is called after
// each step. A cancelled context stops between steps and the partial map is
// dropped.
func Generate(ctx context.Context, p Params, biomes *world.BiomeSet, progress func(Progress), opts ...Option) (*world.Map, error) {
	g, err := NewGenerator(p, biomes, opts...)
	if err != nil {
		return nil, err
	}
	for !g.Done() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pr := g.Step()
		if progress != nil {
			progress(pr)
		}
	}
	return g.Map(), nil
}
