package game

// bounceSpin computes the spin and tangential velocity of the ball after a
// wall contact. The contact couples the ball's translation along the wall
// with its rotation: part of the tangential speed is converted into spin
// and the surface speed of the resulting rotation feeds back into the
// tangential velocity.
//
// weight*friction controls how much the existing spin resists the change
// (a heavy, grippy ball keeps more of its own rotation), while friction
// alone blends the spin towards the pure-rolling rate implied by the
// contact speed. inverted flips the sign convention for the walls whose
// tangent direction runs opposite to the shared axis orientation.
func bounceSpin(ballVelocity, boxVelocity, spin, radius, weight, friction float64, inverted bool) (newSpin, newTangential float64) {
	if radius < radiusFloor {
		radius = radiusFloor
	}

	total := ballVelocity + boxVelocity
	if inverted {
		total = -total
	}

	impliedSpin := total / radius
	blendedSpin := lerp(impliedSpin, spin, weight*friction)

	surfaceVelocity := blendedSpin * radius
	if inverted {
		surfaceVelocity = -surfaceVelocity
	}

	newSpin = lerp(spin, impliedSpin, friction)
	newTangential = surfaceVelocity - boxVelocity
	return newSpin, newTangential
}
