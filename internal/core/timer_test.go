package core

import (
	"testing"
	"time"
)

func TestFixedStepPacesSteps(t *testing.T) {
	clock := time.Unix(100, 0)
	fs := NewFixedStep(4)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should fire")
	}
	if fs.ShouldStep() {
		t.Fatal("no time passed, should not fire")
	}
	clock = clock.Add(100 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("100ms is below the 250ms step")
	}
	clock = clock.Add(150 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("250ms accumulated, expected a step")
	}
}

func TestFixedStepRateFallback(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step != time.Second {
		t.Fatalf("expected 1s fallback step, got %v", fs.step)
	}
}
