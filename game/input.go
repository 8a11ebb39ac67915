package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// dragController owns all per-frame window-drag state: the grab anchor, the
// critically damped spring that makes the window trail the cursor, and the
// delay ring that replays drag deltas a few ticks late. Everything is in
// screen pixels; the physics converts to simulation units at the boundary.
type dragController struct {
	dragging bool

	// anchor is the cursor position inside the window at grab time.
	anchor vec2

	// windowVel is the spring accumulator and the smoothed drag velocity.
	windowVel vec2

	// internalPos is the smoothed window position; visualPos is what the
	// user sees (equal to internalPos unless smoothing is hidden).
	internalPos vec2
	visualPos   vec2

	// displayPos is where the window is actually placed after delay replay.
	displayPos vec2

	delay    delayRing
	delayCap int
}

// update polls the mouse, moves the window, and returns the container
// motion sample for this frame plus how far the window was dragged.
func (d *dragController) update(s *Settings, dt float64) (boxMotion, float64) {
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	mx, my := ebiten.CursorPosition()
	wx, wy := ebiten.WindowPosition()
	screenMouse := vec2{float64(wx + mx), float64(wy + my)}

	var rawDelta vec2
	if pressed {
		if !d.dragging {
			d.dragging = true
			d.anchor = vec2{float64(mx), float64(my)}
			d.windowVel = vec2{}
			d.internalPos = screenMouse.sub(d.anchor)
			d.visualPos = d.internalPos
			d.displayPos = vec2{float64(wx), float64(wy)}
			if d.delayCap != s.DelayFrames {
				d.delay = newDelayRing(s.DelayFrames)
				d.delayCap = s.DelayFrames
			} else {
				d.delay.clear()
			}
		}

		target := screenMouse.sub(d.anchor)
		newInternal := smoothDampVec2(d.internalPos, target, &d.windowVel, s.BoxWeight, dt)
		newVisual := newInternal
		if s.HideSmoothing {
			newVisual = target
		}
		rawDelta = newVisual.sub(d.visualPos)
		d.internalPos = newInternal
		d.visualPos = newVisual

		// Quick turn keeps the spring from carrying the window past a
		// cursor that has already reversed direction.
		if s.QuickTurn {
			if target.x > d.visualPos.x {
				d.windowVel.x = math.Max(d.windowVel.x, 0)
			} else if target.x < d.visualPos.x {
				d.windowVel.x = math.Min(d.windowVel.x, 0)
			}
			if target.y > d.visualPos.y {
				d.windowVel.y = math.Max(d.windowVel.y, 0)
			} else if target.y < d.visualPos.y {
				d.windowVel.y = math.Min(d.windowVel.y, 0)
			}
		}

		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	} else {
		d.dragging = false
		d.windowVel = vec2{}
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}

	// Delay replay: while configured, drag deltas reach the window (and
	// the physics) one ring budget late. After release the residue keeps
	// draining so no motion is lost.
	moveDelta := rawDelta
	if s.DelayFrames > 0 {
		if d.dragging {
			flushed := d.delay.push(rawDelta)
			moveDelta = flushed.add(d.delay.drain(dt))
		} else if d.delay.len() > 0 {
			moveDelta = d.delay.drain(dt)
		} else {
			moveDelta = vec2{}
		}
	}

	if d.dragging || moveDelta != (vec2{}) {
		d.displayPos = d.displayPos.add(moveDelta)
		ebiten.SetWindowPosition(int(math.Round(d.displayPos.x)), int(math.Round(d.displayPos.y)))
	}

	// A window moving right is, to the ball, a box moving left.
	var motion boxMotion
	if dt > 0 {
		motion.visual = moveDelta.scale(-1 / dt)
	}
	motion.smoothed = d.windowVel.scale(-1)

	return motion, rawDelta.length()
}
