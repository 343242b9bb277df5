package util

import (
	"testing"
	"time"
)

func TestFramePacer(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	pacer := NewFramePacer(16*time.Millisecond, start)

	if got := pacer.Remaining(start); got != 0 {
		t.Fatalf("remaining before first tick = %v; want 0", got)
	}
	if got := pacer.Tick(start); got != 0 {
		t.Fatalf("first elapsed = %v; want 0", got)
	}
	if got := pacer.Remaining(start.Add(6 * time.Millisecond)); got != 10*time.Millisecond {
		t.Fatalf("remaining = %v; want 10ms", got)
	}
	if got := pacer.Remaining(start.Add(20 * time.Millisecond)); got != 0 {
		t.Fatalf("remaining after deadline = %v; want 0", got)
	}
	if got := pacer.Tick(start.Add(25 * time.Millisecond)); got != 0.025 {
		t.Fatalf("elapsed = %v; want 0.025", got)
	}
	if got := pacer.Tick(start); got != 0 {
		t.Fatalf("elapsed for a clock going backwards = %v; want 0", got)
	}
}
