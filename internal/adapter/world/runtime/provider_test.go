package runtime

import (
	"context"
	"errors"
	"sync"
	"testing"

	"islandgen/internal/app/ports"
	"islandgen/internal/domain/world"
	"islandgen/internal/domain/worldgen"
)

func TestProvider_NotReadyBeforeInstall(t *testing.T) {
	p := NewProvider()
	if p.Ready() {
		t.Fatalf("expected provider to start empty")
	}
	err := p.Read(context.Background(), func(ports.WorldView) error { return nil })
	if !errors.Is(err, ports.ErrWorldNotReady) {
		t.Fatalf("expected ErrWorldNotReady, got %v", err)
	}
	err = p.Write(context.Background(), func(ports.WorldView) error { return nil })
	if !errors.Is(err, ports.ErrWorldNotReady) {
		t.Fatalf("expected ErrWorldNotReady, got %v", err)
	}
}

func TestProvider_InstallExposesMapAndStreamer(t *testing.T) {
	p := NewProvider()
	m := world.NewMap(64, 64, 32)
	m.GetOrCreateChunk(world.ChunkCoord{})
	p.Install(m, worldgen.Params{WorldSeed: 5})

	err := p.Read(context.Background(), func(v ports.WorldView) error {
		if v.Map != m || v.Streamer == nil || v.Params.WorldSeed != 5 {
			t.Fatalf("unexpected view: %+v", v)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
}

func TestProvider_PropagatesCallbackError(t *testing.T) {
	p := NewProvider()
	p.Install(world.NewMap(32, 32, 32), worldgen.Params{})
	wantErr := errors.New("boom")
	if err := p.Write(context.Background(), func(ports.WorldView) error { return wantErr }); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestProvider_RejectsCancelledContext(t *testing.T) {
	p := NewProvider()
	p.Install(world.NewMap(32, 32, 32), worldgen.Params{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Read(ctx, func(ports.WorldView) error { return nil }); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestProvider_ConcurrentStreamAndRead(t *testing.T) {
	p := NewProvider()
	m := world.NewMap(128, 128, 32)
	for x := 0; x < 128; x += world.ChunkSize {
		for y := 0; y < 128; y += world.ChunkSize {
			m.GetOrCreateChunk(world.ChunkCoord{X: x, Y: y})
		}
	}
	p.Install(m, worldgen.Params{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = p.Write(context.Background(), func(v ports.WorldView) error {
				v.Streamer.StreamUpdate(float64(i*16), float64(i*16), 32, 47)
				return nil
			})
		}(i)
		go func() {
			defer wg.Done()
			_ = p.Read(context.Background(), func(v ports.WorldView) error {
				_ = v.Streamer.ActiveChunks()
				return nil
			})
		}()
	}
	wg.Wait()
}
