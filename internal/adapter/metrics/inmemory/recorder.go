package inmemory

import (
	"sync"
	"time"
)

type Snapshot struct {
	GenerationTotal    uint64            `json:"generation_total"`
	GenerationFailure  uint64            `json:"generation_failure"`
	GenerationReloaded uint64            `json:"generation_reloaded"`
	LastChunks         int               `json:"last_chunks"`
	LastStairs         int               `json:"last_stairs"`
	LastGenerationMS   int64             `json:"last_generation_ms"`
	StreamUpdates      uint64            `json:"stream_updates"`
	ChunksActivated    uint64            `json:"chunks_activated"`
	ChunksDeactivated  uint64            `json:"chunks_deactivated"`
	LookupFound        map[string]uint64 `json:"lookup_found"`
	LookupMissed       map[string]uint64 `json:"lookup_missed"`
}

type Recorder struct {
	mu          sync.Mutex
	generations uint64
	failures    uint64
	reloads     uint64
	lastChunks  int
	lastStairs  int
	lastTook    time.Duration
	streams     uint64
	activated   uint64
	deactivated uint64
	found       map[string]uint64
	missed      map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		found:  map[string]uint64{},
		missed: map[string]uint64{},
	}
}

func (r *Recorder) RecordGeneration(chunks, stairs int, reloaded bool, took time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generations++
	if reloaded {
		r.reloads++
	}
	r.lastChunks = chunks
	r.lastStairs = stairs
	r.lastTook = took
}

func (r *Recorder) RecordGenerationFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures++
}

func (r *Recorder) RecordStream(activated, deactivated int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.streams++
	r.activated += uint64(activated)
	r.deactivated += uint64(deactivated)
}

func (r *Recorder) RecordLookup(kind string, found bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if found {
		r.found[kind]++
		return
	}
	r.missed[kind]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		GenerationTotal:    r.generations,
		GenerationFailure:  r.failures,
		GenerationReloaded: r.reloads,
		LastChunks:         r.lastChunks,
		LastStairs:         r.lastStairs,
		LastGenerationMS:   r.lastTook.Milliseconds(),
		StreamUpdates:      r.streams,
		ChunksActivated:    r.activated,
		ChunksDeactivated:  r.deactivated,
		LookupFound:        make(map[string]uint64, len(r.found)),
		LookupMissed:       make(map[string]uint64, len(r.missed)),
	}
	for k, v := range r.found {
		out.LookupFound[k] = v
	}
	for k, v := range r.missed {
		out.LookupMissed[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
