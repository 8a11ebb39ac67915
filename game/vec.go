package game

import "math"

// vec2 represents a 2D vector
type vec2 struct {
	x float64
	y float64
}

func (v vec2) add(o vec2) vec2 {
	return vec2{v.x + o.x, v.y + o.y}
}

func (v vec2) sub(o vec2) vec2 {
	return vec2{v.x - o.x, v.y - o.y}
}

func (v vec2) scale(s float64) vec2 {
	return vec2{v.x * s, v.y * s}
}

func (v vec2) length() float64 {
	return math.Hypot(v.x, v.y)
}

// lerp linearly interpolates from a to b by t
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp limits v to the range [lo, hi]
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
