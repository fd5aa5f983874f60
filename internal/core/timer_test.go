package core

import (
	"testing"
	"time"
)

func TestFixedStepCadence(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped after half an interval")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not step after a full interval")
	}
}

func TestFixedStepDefaultRate(t *testing.T) {
	fs := NewFixedStep(0)
	if got, want := fs.Interval(), time.Second/60; got != want {
		t.Fatalf("interval = %v, expected %v", got, want)
	}
}
