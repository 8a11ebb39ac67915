package game

import "math"

// Ball is the single simulated body. Positions are in container-local
// coordinates with the origin at the box center and +y pointing down;
// velocity stays in world terms so the box can move underneath the ball.
type Ball struct {
	pos         vec2
	vel         vec2
	rotation    float64 // visual spin angle, wrapped to [0, 2π)
	rotationVel float64
	radius      float64

	// Per-axis impact cooldowns, in seconds. They keep one physical
	// contact from re-triggering a sound across chained sub-steps.
	cooldown [2]float64
}

// ImpactEvent reports a wall hit loud enough to be audible. Axis is 0 for a
// side-wall hit and 1 for floor/ceiling; Volume is in [0, 1) before the
// master volume is applied.
type ImpactEvent struct {
	Axis   int
	Volume float64
}

// NewBall creates a ball resting against the ceiling at the horizontal
// center, so it drops into view on the first simulated frame.
func NewBall(radius float64, boxHalf vec2) *Ball {
	return &Ball{
		pos:    vec2{0, -boxHalf.y},
		radius: radius,
	}
}

// Step advances the simulation by at most dt seconds and returns the time
// that remains unresolved after the earliest wall contact, plus at most one
// impact event. The caller is expected to loop until the residual is
// exhausted or the sub-step cap is reached.
//
// visualBoxVel couples the box motion kinematically into the position
// integral so the ball rides the moving window; smoothedBoxVel is the
// heavier-damped signal used for bounce response and impact volume. Both
// are container-local. hits threads the two-slot wall history between
// sub-steps.
func (b *Ball) Step(dt float64, s *Settings, visualBoxVel, smoothedBoxVel vec2, hits *[2]uint8, boxHalf vec2, soundReady bool) (float64, *ImpactEvent) {
	b.cooldown[0] = math.Max(0, b.cooldown[0]-dt)
	b.cooldown[1] = math.Max(0, b.cooldown[1]-dt)

	radius := math.Max(b.radius, radiusFloor)
	offset := radius + wallOffset

	oldPos := b.pos
	oldVel := b.vel

	// Gravity, then exponential air friction, then the speed cap.
	b.vel.y += s.GravityStrength * 1000 * dt
	b.vel = b.vel.scale(1 - s.AirFriction*clamp(dt, 0, 1))

	maxSpeed := s.MaxVelocity * 1000
	if speed := b.vel.length(); speed > maxSpeed {
		b.vel = b.vel.scale(maxSpeed / speed)
	}

	// The box velocity is added kinematically, not as a force.
	b.pos = b.pos.add(b.vel.add(visualBoxVel).scale(dt))

	pos, vel, newDt, contacts, n := resolveCollisions(oldPos, b.pos, oldVel, b.vel, dt, boxHalf, offset, hits)
	b.pos = pos
	b.vel = vel

	b.rotation += b.rotationVel * newDt
	b.rotation = math.Mod(b.rotation, 2*math.Pi)
	if b.rotation < 0 {
		b.rotation += 2 * math.Pi
	}

	var hitSpeed [2]float64
	for i := 0; i < n; i++ {
		c := contacts[i]

		// Contact speed is sampled before the reflection so chained walls
		// in a corner each report their own incident speed.
		total := b.vel.add(smoothedBoxVel)
		hitSpeed[c.axis] = math.Max(hitSpeed[c.axis], math.Abs(comp(total, c.axis)))

		if c.newlyActive {
			normal := comp(b.vel, c.axis)
			setComp(&b.vel, c.axis, -normal*s.BallBounciness-comp(smoothedBoxVel, c.axis))
		}

		// The spin update runs even on a re-touched wall so the tangential
		// velocity stays consistent with the rolling contact.
		tangent := 1 - c.axis
		newSpin, newTangential := bounceSpin(
			comp(b.vel, tangent),
			comp(smoothedBoxVel, tangent),
			b.rotationVel,
			radius,
			s.BallWeight,
			s.BallFriction,
			c.inverted,
		)
		b.rotationVel = newSpin
		setComp(&b.vel, tangent, newTangential)
	}

	event := b.impactEvent(s, hitSpeed, boxHalf, soundReady)

	return dt - newDt, event
}

// impactEvent decides whether this sub-step's loudest contact should make a
// sound, and at what volume.
func (b *Ball) impactEvent(s *Settings, hitSpeed [2]float64, boxHalf vec2, soundReady bool) *ImpactEvent {
	axis := 0
	if hitSpeed[1] > hitSpeed[0] {
		axis = 1
	}

	if !soundReady || hitSpeed[axis] <= s.MinHitSpeed || b.cooldown[axis] > 0 {
		return nil
	}

	// Hits near the middle of the longer wall ring louder than corner hits.
	speed := (hitSpeed[axis] - s.MinHitSpeed) / hitSpeedScale
	speed *= 1 + b.cornerDistance(boxHalf)/cornerBonusScale
	volume := 1 - math.Exp(-(speed * speed * s.SoundDensity * s.SoundDensity))

	b.cooldown[axis] = minTick
	return &ImpactEvent{Axis: axis, Volume: volume}
}

// cornerDistance measures how far the ball sits from the nearest box
// corner, normalized against the longer half extent.
func (b *Ball) cornerDistance(boxHalf vec2) float64 {
	longer := math.Max(boxHalf.x, boxHalf.y)
	invX := math.Abs(b.pos.x) + longer - boxHalf.x
	invY := math.Abs(b.pos.y) + longer - boxHalf.y
	return longer - math.Min(invX, invY)
}

// Position returns the ball center in container-local coordinates.
func (b *Ball) Position() (float64, float64) {
	return b.pos.x, b.pos.y
}

// Rotation returns the visual spin angle in [0, 2π).
func (b *Ball) Rotation() float64 {
	return b.rotation
}

// Radius returns the ball radius in simulation units.
func (b *Ball) Radius() float64 {
	return b.radius
}

// SetRadius applies a settings change at runtime. Negative values are
// clamped away; the spin math additionally floors the radius on use.
func (b *Ball) SetRadius(radius float64) {
	b.radius = math.Max(radius, 0)
}
