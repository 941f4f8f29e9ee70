package inmemory

import (
	"testing"
	"time"

	"islandgen/internal/app/ports"
)

var _ ports.WorldMetrics = (*Recorder)(nil)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordGeneration(64, 9, false, 1500*time.Millisecond)
	r.RecordGeneration(64, 7, true, 20*time.Millisecond)
	r.RecordGenerationFailure()
	r.RecordStream(4, 0)
	r.RecordStream(2, 3)
	r.RecordLookup("tile", true)
	r.RecordLookup("tile", true)
	r.RecordLookup("tile", false)
	r.RecordLookup("spawn", false)

	s := r.Snapshot()
	if s.GenerationTotal != 2 || s.GenerationFailure != 1 || s.GenerationReloaded != 1 {
		t.Fatalf("generation counters got=%+v", s)
	}
	if s.LastChunks != 64 || s.LastStairs != 7 || s.LastGenerationMS != 20 {
		t.Fatalf("expected last generation values, got chunks=%d stairs=%d ms=%d", s.LastChunks, s.LastStairs, s.LastGenerationMS)
	}
	if s.StreamUpdates != 2 || s.ChunksActivated != 6 || s.ChunksDeactivated != 3 {
		t.Fatalf("stream counters got=%+v", s)
	}
	if s.LookupFound["tile"] != 2 || s.LookupMissed["tile"] != 1 || s.LookupMissed["spawn"] != 1 {
		t.Fatalf("lookup counters got found=%v missed=%v", s.LookupFound, s.LookupMissed)
	}
}

func TestRecorderSnapshotIsCopy(t *testing.T) {
	r := NewRecorder()
	r.RecordLookup("chunk", true)
	s := r.Snapshot()
	s.LookupFound["chunk"] = 99
	if got := r.Snapshot().LookupFound["chunk"]; got != 1 {
		t.Fatalf("snapshot aliases recorder state: got=%d want=1", got)
	}
}
