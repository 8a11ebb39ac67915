package game

import (
	"math"
	"testing"
)

func vecNear(a, b vec2, tol float64) bool {
	return math.Abs(a.x-b.x) <= tol && math.Abs(a.y-b.y) <= tol
}

func TestDelayRingZeroCapacityPassesThrough(t *testing.T) {
	r := newDelayRing(0)
	out := r.push(vec2{3, -4})
	if out != (vec2{3, -4}) {
		t.Fatalf("push with no delay = %+v, want the delta back", out)
	}
	if r.len() != 0 {
		t.Fatalf("len = %d, want 0", r.len())
	}
}

func TestDelayRingCapacityClamped(t *testing.T) {
	r := newDelayRing(maxDelayFrames * 3)
	for i := 0; i < maxDelayFrames+5; i++ {
		r.push(vec2{1, 0})
	}
	if r.len() != maxDelayFrames {
		t.Fatalf("len = %d, want clamped capacity %d", r.len(), maxDelayFrames)
	}
}

func TestDelayRingPartialDrain(t *testing.T) {
	r := newDelayRing(4)
	r.push(vec2{10, 0})

	// Half a tick consumes half the entry's weight and leaves the rest.
	out := r.drain(minTick / 2)
	if !vecNear(out, vec2{5, 0}, 1e-9) {
		t.Fatalf("half drain = %+v, want {5 0}", out)
	}
	if r.len() != 1 {
		t.Fatalf("len after partial drain = %d, want 1", r.len())
	}

	out = r.drain(minTick)
	if !vecNear(out, vec2{5, 0}, 1e-9) {
		t.Fatalf("second drain = %+v, want the remaining {5 0}", out)
	}
	if r.len() != 0 {
		t.Fatalf("len after full drain = %d, want 0", r.len())
	}
}

func TestDelayRingDrainSpansEntries(t *testing.T) {
	r := newDelayRing(4)
	r.push(vec2{2, 0})
	r.push(vec2{0, 6})

	// One and a half ticks: all of the first entry, half of the second.
	out := r.drain(minTick * 1.5)
	if !vecNear(out, vec2{2, 3}, 1e-9) {
		t.Fatalf("drain = %+v, want {2 3}", out)
	}
	if r.len() != 1 {
		t.Fatalf("len = %d, want 1", r.len())
	}
}

func TestDelayRingPushWhenFullFlushesOldest(t *testing.T) {
	r := newDelayRing(2)
	if out := r.push(vec2{1, 0}); out != (vec2{}) {
		t.Fatalf("first push flushed %+v", out)
	}
	if out := r.push(vec2{2, 0}); out != (vec2{}) {
		t.Fatalf("second push flushed %+v", out)
	}
	out := r.push(vec2{3, 0})
	if !vecNear(out, vec2{1, 0}, 1e-9) {
		t.Fatalf("push over capacity flushed %+v, want the oldest {1 0}", out)
	}
	if r.len() != 2 {
		t.Fatalf("len = %d, want 2", r.len())
	}
}

func TestDelayRingFlushReturnsEverything(t *testing.T) {
	r := newDelayRing(3)
	r.push(vec2{1, 1})
	r.push(vec2{2, -1})
	r.drain(minTick / 2) // consume half of the first entry

	out := r.flush()
	if !vecNear(out, vec2{2.5, -0.5}, 1e-9) {
		t.Fatalf("flush = %+v, want {2.5 -0.5}", out)
	}
	if r.len() != 0 {
		t.Fatalf("len after flush = %d, want 0", r.len())
	}
}
