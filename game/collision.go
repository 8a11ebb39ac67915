package game

import "math"

// Wall identifiers, also used as wall-hit history slots. wallNone marks an
// empty slot.
const (
	wallNone uint8 = iota
	wallFloor
	wallCeiling
	wallRight
	wallLeft
)

// wall describes one side of the box: which axis it constrains, whether its
// plane sits at the positive or negative half extent, and the spin sign
// convention its tangent direction uses.
type wall struct {
	id           uint8
	axis         int     // 0 = x, 1 = y
	sign         float64 // +1 for the wall at +halfExtent, -1 for -halfExtent
	invertedSpin bool
}

var boxWalls = [4]wall{
	{wallFloor, 1, 1, false},
	{wallCeiling, 1, -1, true},
	{wallRight, 0, 1, true},
	{wallLeft, 0, -1, false},
}

// wallContact records one wall the ball touches after a resolved sub-step.
// newlyActive authorizes the normal-velocity reflection; a re-touch across
// chained sub-steps only re-runs the spin update.
type wallContact struct {
	id          uint8
	axis        int
	sign        float64
	inverted    bool
	newlyActive bool
}

func comp(v vec2, axis int) float64 {
	if axis == 0 {
		return v.x
	}
	return v.y
}

func setComp(v *vec2, axis int, value float64) {
	if axis == 0 {
		v.x = value
	} else {
		v.y = value
	}
}

// penetration returns the signed distance from the ball surface to the wall
// plane. Zero or negative means the ball penetrates the wall. offset is the
// ball radius plus the wall gap.
func penetration(pos vec2, w wall, half vec2, offset float64) float64 {
	return (comp(half, w.axis) - offset) - w.sign*comp(pos, w.axis)
}

// contactFraction returns which fraction of the step was spent beyond the
// wall plane, assuming near-linear motion between the old and new position.
// A step that ends exactly on the plane yields 0; a step that started on it
// yields 1.
func contactFraction(oldPos, pos vec2, w wall, half vec2, offset float64) float64 {
	plane := comp(half, w.axis) - offset
	travel := w.sign * (comp(pos, w.axis) - comp(oldPos, w.axis))
	if travel <= 0 {
		// Not moving into the wall this step; nothing to rewind.
		return 0
	}
	beyond := w.sign*comp(pos, w.axis) - plane
	return clamp(beyond/travel, 0, 1)
}

func hitsContain(hits *[2]uint8, id uint8) bool {
	return hits[0] == id || hits[1] == id
}

func rotateHits(hits *[2]uint8) {
	hits[1] = hits[0]
	hits[0] = wallNone
}

// resolveCollisions takes the free-flight result of one sub-step and rewinds
// it to the earliest real wall contact. It returns the corrected position
// and velocity, the sub-step length that was actually resolved, and the
// walls in contact at the corrected position.
//
// Walls already present in the hit history are considered resolved by a
// previous sub-step: they neither drive the rewind nor re-authorize a
// bounce, which keeps a resting contact from zeroing the step size or
// re-amplifying velocity.
func resolveCollisions(oldPos, pos, oldVel, vel vec2, dt float64, half vec2, offset float64, hits *[2]uint8) (vec2, vec2, float64, [4]wallContact, int) {
	rotateHits(hits)

	var backAxis [2]float64
	for _, w := range boxWalls {
		if penetration(pos, w, half, offset) > 0 {
			continue
		}
		if hitsContain(hits, w.id) {
			continue
		}
		f := contactFraction(oldPos, pos, w, half, offset)
		if f > backAxis[w.axis] {
			backAxis[w.axis] = f
		}
	}

	back := math.Max(backAxis[0], backAxis[1])
	newDt := dt * (1 - back)

	// Rewind each axis by the shared back amount, but only if a wall on
	// that axis demanded it.
	if backAxis[0] > 0 {
		pos.x = lerp(pos.x, oldPos.x, back)
		vel.x = lerp(vel.x, oldVel.x, back)
	}
	if backAxis[1] > 0 {
		pos.y = lerp(pos.y, oldPos.y, back)
		vel.y = lerp(vel.y, oldVel.y, back)
	}

	// Re-check at the corrected position with a small tolerance for
	// floating-point residue, snapping each touching wall onto its plane.
	// Corner contacts resolve both walls in sequence.
	var contacts [4]wallContact
	n := 0
	for _, w := range boxWalls {
		if penetration(pos, w, half, offset) > contactEpsilon {
			continue
		}
		setComp(&pos, w.axis, w.sign*(comp(half, w.axis)-offset))
		newly := !hitsContain(hits, w.id)
		if newly {
			hits[0] = w.id
		}
		contacts[n] = wallContact{id: w.id, axis: w.axis, sign: w.sign, inverted: w.invertedSpin, newlyActive: newly}
		n++
	}

	return pos, vel, newDt, contacts, n
}
