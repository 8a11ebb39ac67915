package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game wires the drag input, the physics, the renderer and the impact
// player into ebiten's game loop. It owns every piece of frame state: the
// ball, the wall-hit history, and the drag controller.
type Game struct {
	settings     Settings
	settingsPath string

	ball     *Ball
	wallHits [2]uint8

	drag     dragController
	audio    *ImpactPlayer
	renderer *Renderer

	// framesAfterStart counts the startup grace frames that run with dt=0
	// so a slow window-creation frame cannot launch the ball.
	framesAfterStart int

	timeSinceStart    float64
	totalDragDistance float64
	lastUpdateTime    time.Time
}

// NewGame creates the game from a settings snapshot. settingsPath may be
// empty to disable persistence (used by tests).
func NewGame(settings Settings, settingsPath string) *Game {
	return &Game{
		settings:       settings,
		settingsPath:   settingsPath,
		ball:           NewBall(settings.BallRadius, settings.BoxHalf()),
		audio:          NewImpactPlayer(),
		renderer:       NewRenderer(),
		lastUpdateTime: time.Now(),
	}
}

// Update advances one frame: poll the drag input, run the physics sub-step
// loop, and play whatever impacts it produced.
func (g *Game) Update() error {
	now := time.Now()
	realDt := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	dt := realDt * g.settings.SpeedMul
	if g.framesAfterStart < startupGraceFrames {
		g.framesAfterStart++
		dt = 0
	}
	g.timeSinceStart += dt

	motion, dragDist := g.drag.update(&g.settings, dt)

	g.totalDragDistance += dragDist
	if !g.settings.UnderstandsMoving && g.totalDragDistance > dragHintDistance {
		g.settings.UnderstandsMoving = true
		if g.settingsPath != "" {
			// Persistence is best effort; the toy keeps running without it.
			_ = WriteSettingsFile(g.settingsPath, g.settings)
		}
	}

	for _, ev := range g.stepPhysics(dt, motion) {
		g.audio.Play(ev.Volume * g.settings.AudioVolume)
	}

	return nil
}

// stepPhysics feeds the residual time back into the integrator until the
// frame is resolved or the sub-step cap is hit; leftover motion past the
// cap is dropped, never carried into the next frame.
func (g *Game) stepPhysics(dt float64, motion boxMotion) []ImpactEvent {
	// Drag velocities are measured in screen pixels; the simulation runs
	// in half-pixel units, hence the doubling.
	visual := motion.visual.scale(2)
	smoothed := motion.smoothed.scale(2)
	boxHalf := g.settings.BoxHalf()

	var events []ImpactEvent
	remaining := dt
	for steps := 0; remaining > subStepEpsilon && steps < maxSubSteps; steps++ {
		var ev *ImpactEvent
		remaining, ev = g.ball.Step(remaining, &g.settings, visual, smoothed, &g.wallHits, boxHalf, g.audio.Ready())
		if ev != nil {
			events = append(events, *ev)
		}
	}
	return events
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	showHint := !g.settings.UnderstandsMoving && g.timeSinceStart > dragHintWait
	g.renderer.Draw(screen, g.ball, &g.settings, showHint)
}

// Layout reports the fixed window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.settings.BoxWidth), int(g.settings.BoxHeight)
}
