package game

// smoothDamp moves current towards target with a second-order filter tuned
// to the critically damped regime, so the output settles as fast as possible
// without overshooting. velocity is the filter's accumulator and doubles as
// the smoothed velocity signal consumed by the physics.
//
// The exponential is a rational approximation of e^-x, accurate for the
// small x values a per-frame call produces.
// See Game Programming Gems 4, chapter 1.10.
func smoothDamp(current, target float64, velocity *float64, smoothness, dt float64) float64 {
	if smoothness == 0 {
		// Degenerate case: no smoothing, report the instantaneous velocity.
		if dt != 0 {
			*velocity = (target - current) / dt
		}
		return target
	}

	omega := 2.0 / smoothness
	x := omega * dt
	exp := 1.0 / (1.0 + x + 0.48*x*x + 0.235*x*x*x)
	delta := current - target
	temp := (*velocity + omega*delta) * dt
	*velocity = (*velocity - omega*temp) * exp
	return target + (delta+temp)*exp
}

// smoothDampVec2 applies smoothDamp independently to each axis.
func smoothDampVec2(current, target vec2, velocity *vec2, smoothness, dt float64) vec2 {
	return vec2{
		x: smoothDamp(current.x, target.x, &velocity.x, smoothness, dt),
		y: smoothDamp(current.y, target.y, &velocity.y, smoothness, dt),
	}
}

// boxMotion is the per-frame container velocity sample handed to the
// physics: the raw (or delay-replayed) drag velocity for kinematic
// coupling, and the heavier-damped signal used for bounce response and
// impact volume. Both are in container-local terms, so a window moving
// right shows up as the box moving left past the ball.
type boxMotion struct {
	visual   vec2
	smoothed vec2
}
