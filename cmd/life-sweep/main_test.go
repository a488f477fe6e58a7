package main

import (
	"context"
	"errors"
	"testing"

	"fade-life/internal/sims/life"
)

func TestRunScenarioDeterministic(t *testing.T) {
	cfg := life.Config{VisibleWidth: 32, VisibleHeight: 24, Margin: 2}
	sc := scenario{seed: 3, seeding: seeding{name: "random"}}
	a, err := runScenario(context.Background(), cfg, sc, 50, 10, 0.1)
	if err != nil {
		t.Fatalf("runScenario: %v", err)
	}
	b, err := runScenario(context.Background(), cfg, sc, 50, 10, 0.1)
	if err != nil {
		t.Fatalf("runScenario: %v", err)
	}
	if a.initialPop != b.initialPop || a.finalPop != b.finalPop || a.peakPop != b.peakPop {
		t.Fatalf("results differ: %+v vs %+v", a, b)
	}
	if a.peakPop < a.initialPop {
		t.Fatal("peak population must include the initial population")
	}
}

func TestRunScenarioExtinction(t *testing.T) {
	cfg := life.Config{VisibleWidth: 16, VisibleHeight: 16, Margin: 1}
	sc := scenario{seed: 1, seeding: seeding{name: "noise", noise: true, threshold: 10}}
	res, err := runScenario(context.Background(), cfg, sc, 20, 5, 0.1)
	if err != nil {
		t.Fatalf("runScenario: %v", err)
	}
	if res.initialPop != 0 || res.extinctAt != 1 {
		t.Fatalf("empty seeding should go extinct on the first step: %+v", res)
	}
}

func TestRunScenarioHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := life.Config{VisibleWidth: 16, VisibleHeight: 16, Margin: 1}
	sc := scenario{seed: 2, seeding: seeding{name: "noise", noise: true, threshold: -10}}
	_, err := runScenario(ctx, cfg, sc, 200, 500, 0.1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
