package memory

import (
	"context"
	"sync"

	"islandgen/internal/domain/world"
)

type chunkKey struct {
	seed   int64
	origin world.ChunkCoord
}

type Store struct {
	mu         sync.RWMutex
	keyObjects map[int64][]world.KeyObjectRecord
	chunks     map[chunkKey]world.ChunkSnapshot
}

func NewStore() *Store {
	return &Store{
		keyObjects: make(map[int64][]world.KeyObjectRecord),
		chunks:     make(map[chunkKey]world.ChunkSnapshot),
	}
}

type txKeyType struct{}

var txKey = txKeyType{}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey).(bool)
	return v
}

// read and write take the store lock unless ctx already runs inside RunInTx,
// which holds it for the whole transaction.
func (s *Store) read(ctx context.Context, fn func()) {
	if !inTx(ctx) {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn()
}

func (s *Store) write(ctx context.Context, fn func() error) error {
	if !inTx(ctx) {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn()
}
