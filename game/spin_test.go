package game

import (
	"math"
	"testing"
)

func TestBounceSpinZeroFrictionKeepsState(t *testing.T) {
	spin, tangential := bounceSpin(200, 0, 3, 90, 0.65, 0, false)
	if spin != 3 {
		t.Errorf("spin with zero friction = %f, want 3", spin)
	}
	if math.Abs(tangential-200) > 1e-9 {
		t.Errorf("tangential with zero friction = %f, want 200", tangential)
	}
}

func TestBounceSpinFullFrictionAdoptsRolling(t *testing.T) {
	// weight 0, friction 1: spin becomes the pure-rolling rate for the
	// contact speed and the tangential velocity is untouched.
	spin, tangential := bounceSpin(180, 0, 0, 90, 0, 1, false)
	want := 180.0 / 90.0
	if math.Abs(spin-want) > 1e-9 {
		t.Errorf("spin = %f, want %f", spin, want)
	}
	if math.Abs(tangential-180) > 1e-9 {
		t.Errorf("tangential = %f, want 180", tangential)
	}
}

func TestBounceSpinHeavyBallResistsChange(t *testing.T) {
	// weight 1, friction 1: the surface velocity comes entirely from the
	// existing spin, so a spinning ball on a still floor kicks itself
	// sideways.
	spin, tangential := bounceSpin(0, 0, 4, 90, 1, 1, false)
	if spin != 0 {
		t.Errorf("spin = %f, want 0 (implied rate for zero contact speed)", spin)
	}
	if math.Abs(tangential-4*90) > 1e-9 {
		t.Errorf("tangential = %f, want %f", tangential, 4*90.0)
	}
}

func TestBounceSpinInvertedFlipsSign(t *testing.T) {
	spin, _ := bounceSpin(150, 0, 0, 90, 0, 1, false)
	invSpin, _ := bounceSpin(150, 0, 0, 90, 0, 1, true)
	if math.Abs(spin+invSpin) > 1e-9 {
		t.Errorf("inverted spin %f is not the negation of %f", invSpin, spin)
	}
}

func TestBounceSpinBoxVelocityEntersContact(t *testing.T) {
	// A still ball on a moving floor picks up spin from the relative
	// surface speed and gets dragged along.
	spin, tangential := bounceSpin(0, 300, 0, 90, 0, 1, false)
	want := 300.0 / 90.0
	if math.Abs(spin-want) > 1e-9 {
		t.Errorf("spin = %f, want %f", spin, want)
	}
	if math.Abs(tangential-0) > 1e-9 {
		t.Errorf("tangential = %f, want 0 (rolling with the floor)", tangential)
	}
}

func TestBounceSpinTinyRadiusStaysFinite(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
	}{
		{"Zero", 0},
		{"Negative", -5},
		{"Subfloor", radiusFloor / 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spin, tangential := bounceSpin(500, -200, 7, tt.radius, 0.65, 0.75, true)
			if math.IsInf(spin, 0) || math.IsNaN(spin) {
				t.Errorf("spin not finite: %f", spin)
			}
			if math.IsInf(tangential, 0) || math.IsNaN(tangential) {
				t.Errorf("tangential not finite: %f", tangential)
			}
		})
	}
}
