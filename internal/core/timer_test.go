package core

import (
	"testing"
	"time"
)

func TestAccumulatorFiresAfterInterval(t *testing.T) {
	a := NewAccumulator(60 * time.Millisecond)
	if a.Advance(30 * time.Millisecond) {
		t.Fatal("fired before the interval elapsed")
	}
	if a.Advance(30 * time.Millisecond) {
		t.Fatal("fired at exactly the interval; threshold is exclusive")
	}
	if !a.Advance(10 * time.Millisecond) {
		t.Fatal("expected a step once the interval was exceeded")
	}
	if got := a.Elapsed(); got != 10*time.Millisecond {
		t.Fatalf("carry-over = %v, want 10ms", got)
	}
}

func TestAccumulatorSingleStepPerAdvance(t *testing.T) {
	a := NewAccumulator(10 * time.Millisecond)
	if !a.Advance(100 * time.Millisecond) {
		t.Fatal("expected a step")
	}
	if got := a.Elapsed(); got != 90*time.Millisecond {
		t.Fatalf("elapsed = %v, want 90ms", got)
	}
	steps := 0
	for a.Advance(0) {
		steps++
	}
	if steps != 8 {
		t.Fatalf("drained %d steps, want 8", steps)
	}
}

func TestAccumulatorDefaultsAndReset(t *testing.T) {
	a := NewAccumulator(0)
	if a.Interval() != 60*time.Millisecond {
		t.Fatalf("default interval = %v", a.Interval())
	}
	a.Advance(-time.Second)
	if a.Elapsed() != 0 {
		t.Fatal("negative deltas must be ignored")
	}
	a.Advance(20 * time.Millisecond)
	a.Reset()
	if a.Elapsed() != 0 {
		t.Fatal("Reset should drop accumulated time")
	}
}
