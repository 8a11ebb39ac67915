package game

// delayEntry is one buffered drag delta with the replay time it has left.
type delayEntry struct {
	delta  vec2
	budget float64
}

// delayRing is a fixed-capacity ring of recent drag deltas. Each entry is
// replayed over one minimum input tick; draining with a frame time shorter
// than that consumes only a fraction of the head entry, so sub-frame deltas
// are spread out instead of lost. The ring never grows past its capacity:
// pushing while full flushes the oldest entry immediately.
type delayRing struct {
	entries [maxDelayFrames]delayEntry
	start   int
	count   int
	cap     int
}

// newDelayRing creates a ring holding at most capacity entries, clamped to
// the fixed backing array size.
func newDelayRing(capacity int) delayRing {
	if capacity < 0 {
		capacity = 0
	}
	if capacity > maxDelayFrames {
		capacity = maxDelayFrames
	}
	return delayRing{cap: capacity}
}

func (r *delayRing) len() int {
	return r.count
}

// push appends a delta with a fresh time budget. If the ring is full the
// oldest entry is dequeued and its remaining weighted delta returned, so
// no motion is ever dropped.
func (r *delayRing) push(delta vec2) vec2 {
	var flushed vec2
	if r.cap == 0 {
		// No delay configured; everything passes straight through.
		return delta
	}
	if r.count == r.cap {
		head := &r.entries[r.start]
		flushed = head.delta.scale(head.budget / minTick)
		r.start = (r.start + 1) % maxDelayFrames
		r.count--
	}
	r.entries[(r.start+r.count)%maxDelayFrames] = delayEntry{delta: delta, budget: minTick}
	r.count++
	return flushed
}

// drain consumes up to dt of buffered time front-to-back and returns the
// time-weighted sum of the consumed delta portions. Exhausted entries are
// dequeued; a partially-consumed head entry keeps its remaining budget.
func (r *delayRing) drain(dt float64) vec2 {
	var out vec2
	for r.count > 0 && dt > 0 {
		head := &r.entries[r.start]
		take := dt
		if take > head.budget {
			take = head.budget
		}
		out = out.add(head.delta.scale(take / minTick))
		head.budget -= take
		dt -= take
		if head.budget <= 0 {
			r.start = (r.start + 1) % maxDelayFrames
			r.count--
		}
	}
	return out
}

// flush drains whatever remains regardless of time and empties the ring.
func (r *delayRing) flush() vec2 {
	var out vec2
	for r.count > 0 {
		head := &r.entries[r.start]
		out = out.add(head.delta.scale(head.budget / minTick))
		r.start = (r.start + 1) % maxDelayFrames
		r.count--
	}
	return out
}

func (r *delayRing) clear() {
	r.start = 0
	r.count = 0
}
