package game

import "image/color"

// Physics constants
const (
	// fpsLimit bounds the configurable frame cap; one tick at this rate is
	// the smallest resolvable input interval.
	fpsLimit = 500

	// minTick is one minimum input tick in seconds. Impact cooldowns and
	// delay-ring budgets are measured in this unit.
	minTick = 1.0 / fpsLimit

	// subStepEpsilon is the residual time below which a frame is considered
	// fully resolved.
	subStepEpsilon = 0.00001

	// maxSubSteps caps the collision sub-step loop per frame.
	maxSubSteps = 10

	// contactEpsilon is the penetration tolerance when re-checking walls
	// after backtracking.
	contactEpsilon = 0.01

	// radiusFloor keeps the spin math away from a division by zero.
	radiusFloor = 0.001

	// wallOffset is the gap between the inner wall plane and the rendered
	// wall surface, in simulation units.
	wallOffset = 10.0
)

// Impact sound tuning
const (
	// hitSpeedScale normalizes contact speed before the volume curve.
	hitSpeedScale = 450.0

	// cornerBonusScale controls how much a center-of-wall hit is boosted
	// over a corner hit.
	cornerBonusScale = 200.0
)

// Drag input constants
const (
	// startupGraceFrames delays physics until loading hiccups are over.
	startupGraceFrames = 2

	// dragHintDistance is how far the window must travel before the drag
	// hint is considered understood.
	dragHintDistance = 100.0

	// dragHintWait is how long to leave a new user alone before showing
	// the drag hint, in seconds.
	dragHintWait = 7.25

	// maxDelayFrames bounds the drag delay ring.
	maxDelayFrames = 10
)

// Color constants
var (
	colorBackground = color.NRGBA{R: 0x2e, G: 0x2e, B: 0x32, A: 255}
	colorWallLeft   = color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 255}
	colorWallRight  = color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 255}
	colorWallTop    = color.NRGBA{R: 0xba, G: 0xba, B: 0xba, A: 255}
	colorWallBottom = color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 255}
	colorBall       = color.NRGBA{R: 0xd4, G: 0x54, B: 0x3c, A: 255}
	colorBallMarker = color.NRGBA{R: 0x8e, G: 0x2f, B: 0x20, A: 255}
	colorHintText   = color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 220}
)
