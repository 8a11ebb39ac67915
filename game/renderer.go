package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Renderer draws the box interior and the ball. The simulation runs in
// doubled coordinates (the box spans [-w, w] x [-h, h] across a w-by-h
// pixel window), so everything here scales by one half.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw renders one frame.
func (r *Renderer) Draw(screen *ebiten.Image, ball *Ball, s *Settings, showHint bool) {
	screen.Fill(colorBackground)

	w := float32(s.BoxWidth)
	h := float32(s.BoxHeight)
	t := float32(s.BoxThickness) / 2

	// Each wall gets its own shade so the box reads as a lit interior.
	vector.DrawFilledRect(screen, 0, 0, t, h, colorWallLeft, false)
	vector.DrawFilledRect(screen, w-t, 0, t, h, colorWallRight, false)
	vector.DrawFilledRect(screen, 0, 0, w, t, colorWallTop, false)
	vector.DrawFilledRect(screen, 0, h-t, w, t, colorWallBottom, false)

	bx, by := ball.Position()
	cx := float32((bx + s.BoxWidth) / 2)
	cy := float32((by + s.BoxHeight) / 2)
	radius := float32(ball.Radius() / 2)

	vector.DrawFilledCircle(screen, cx, cy, radius, colorBall, true)

	// A small off-center dot makes the spin visible.
	rot := ball.Rotation()
	markerDist := radius * 0.55
	mx := cx + float32(math.Cos(rot))*markerDist
	my := cy + float32(math.Sin(rot))*markerDist
	vector.DrawFilledCircle(screen, mx, my, radius*0.18, colorBallMarker, true)

	if showHint {
		msg := "click and drag the window"
		face := basicfont.Face7x13
		width := len(msg) * face.Advance
		text.Draw(screen, msg, face, (int(w)-width)/2, int(h)-int(t)-12, colorHintText)
	}
}
