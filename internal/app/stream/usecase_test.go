package stream

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"islandgen/internal/adapter/world/mock"
	"islandgen/internal/app/ports"
	"islandgen/internal/domain/world"
)

func TestUseCase_ActivatesOnceAndUnloadsAfterMove(t *testing.T) {
	metrics := &streamMetrics{}
	uc := UseCase{World: mock.NewProvider(), Metrics: metrics}

	first, err := uc.Execute(context.Background(), Request{X: 16, Y: 16})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(first.Activated) == 0 || first.Activated[0] != (world.ChunkCoord{}) {
		t.Fatalf("expected origin chunk to activate, got %+v", first.Activated)
	}

	again, err := uc.Execute(context.Background(), Request{X: 16, Y: 16})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(again.Activated) != 0 || len(again.Deactivated) != 0 {
		t.Fatalf("repeat update changed state: %+v", again)
	}
	if len(again.Active) != len(first.Active) {
		t.Fatalf("active set changed: %v vs %v", again.Active, first.Active)
	}

	far, err := uc.Execute(context.Background(), Request{X: 200, Y: 200})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(far.Active) != 0 || len(far.Deactivated) != len(first.Active) {
		t.Fatalf("expected every chunk to unload: %+v", far)
	}
	if metrics.calls != 3 || metrics.activated != len(first.Activated) {
		t.Fatalf("metrics got calls=%d activated=%d", metrics.calls, metrics.activated)
	}
}

func TestUseCase_UnloadMargin(t *testing.T) {
	cases := []struct {
		name       string
		margin     float64
		wantActive bool
	}{
		{name: "default margin keeps chunk", margin: 0, wantActive: true},
		{name: "narrow margin drops chunk", margin: 5, wantActive: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := UseCase{World: mock.NewProvider(), UnloadMargin: tc.margin}
			if _, err := uc.Execute(context.Background(), Request{X: 16, Y: 16}); err != nil {
				t.Fatalf("execute: %v", err)
			}
			resp, err := uc.Execute(context.Background(), Request{X: 56, Y: 16})
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			active := false
			for _, c := range resp.Active {
				if c == (world.ChunkCoord{}) {
					active = true
				}
			}
			if active != tc.wantActive {
				t.Fatalf("origin chunk active got=%v want=%v (%+v)", active, tc.wantActive, resp)
			}
		})
	}
}

func TestUseCase_RejectsNonFinitePosition(t *testing.T) {
	uc := UseCase{World: mock.NewProvider()}
	for _, req := range []Request{{X: math.NaN()}, {Y: math.Inf(1)}} {
		if _, err := uc.Execute(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest, got %v", err)
		}
	}
}

type streamMetrics struct {
	calls     int
	activated int
}

func (m *streamMetrics) RecordGeneration(_, _ int, _ bool, _ time.Duration) {}
func (m *streamMetrics) RecordGenerationFailure()                          {}
func (m *streamMetrics) RecordStream(activated, _ int) {
	m.calls++
	m.activated += activated
}
func (m *streamMetrics) RecordLookup(_ string, _ bool) {}

var _ ports.WorldMetrics = (*streamMetrics)(nil)
