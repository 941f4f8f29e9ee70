package runtime

import (
	"context"
	"sync"

	"islandgen/internal/app/ports"
	"islandgen/internal/domain/world"
	"islandgen/internal/domain/worldgen"
)

// Provider holds the generated world for the lifetime of the process. Reads
// share a lock; streaming and key-object updates take it exclusively.
type Provider struct {
	mu       sync.RWMutex
	m        *world.Map
	streamer *world.Streamer
	params   worldgen.Params
}

func NewProvider() *Provider {
	return &Provider{}
}

// Install swaps in a freshly generated map. Streaming state starts empty.
func (p *Provider) Install(m *world.Map, params worldgen.Params) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m = m
	p.streamer = world.NewStreamer(m)
	p.params = params
}

func (p *Provider) Ready() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.m != nil
}

func (p *Provider) Read(ctx context.Context, fn func(ports.WorldView) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.m == nil {
		return ports.ErrWorldNotReady
	}
	return fn(p.view())
}

func (p *Provider) Write(ctx context.Context, fn func(ports.WorldView) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.m == nil {
		return ports.ErrWorldNotReady
	}
	return fn(p.view())
}

func (p *Provider) view() ports.WorldView {
	return ports.WorldView{Map: p.m, Streamer: p.streamer, Params: p.params}
}
