package game

import (
	"math"
	"testing"
)

func TestSmoothDampZeroSmoothnessBypass(t *testing.T) {
	velocity := 123.0
	result := smoothDamp(40, 100, &velocity, 0, 0.016)
	if result != 100 {
		t.Fatalf("result = %f, want the raw target 100", result)
	}
	want := (100.0 - 40.0) / 0.016
	if math.Abs(velocity-want) > 1e-9 {
		t.Fatalf("velocity = %f, want %f", velocity, want)
	}
}

func TestSmoothDampZeroSmoothnessZeroDt(t *testing.T) {
	// The divide-by-zero degenerate case: dt 0 must leave the velocity
	// accumulator alone.
	velocity := 5.0
	result := smoothDamp(40, 100, &velocity, 0, 0)
	if result != 100 {
		t.Fatalf("result = %f, want 100", result)
	}
	if velocity != 5 {
		t.Fatalf("velocity = %f, want untouched 5", velocity)
	}
}

func TestSmoothDampIdempotentAtRest(t *testing.T) {
	// Constant zero delta keeps the accumulator at exactly zero.
	velocity := 0.0
	current := 250.0
	for i := 0; i < 20; i++ {
		current = smoothDamp(current, 250, &velocity, 0.05, 1.0/60)
		if velocity != 0 {
			t.Fatalf("velocity drifted to %g on call %d, want exactly 0", velocity, i+1)
		}
		if current != 250 {
			t.Fatalf("position drifted to %g on call %d", current, i+1)
		}
	}
}

func TestSmoothDampConvergesWithoutRinging(t *testing.T) {
	velocity := 0.0
	current := 0.0
	const target = 500.0

	overshoot := 0.0
	for i := 0; i < 300; i++ {
		current = smoothDamp(current, target, &velocity, 0.05, 1.0/60)
		if current > target {
			overshoot = math.Max(overshoot, current-target)
		}
	}

	if math.Abs(current-target) > 1e-3 {
		t.Errorf("did not converge: current = %f, target = %f", current, target)
	}
	if math.Abs(velocity) > 1e-3 {
		t.Errorf("velocity did not settle: %f", velocity)
	}
	// Critically damped: any overshoot should be numerical noise, not a
	// visible oscillation.
	if overshoot > target*0.01 {
		t.Errorf("overshoot = %f, want under 1%% of the travel", overshoot)
	}
}

func TestSmoothDampVec2AxesIndependent(t *testing.T) {
	velocity := vec2{}
	current := vec2{0, 100}
	result := smoothDampVec2(current, vec2{0, 100}, &velocity, 0.05, 1.0/60)
	if result != current {
		t.Errorf("at-rest axes moved: %+v", result)
	}

	result = smoothDampVec2(current, vec2{50, 100}, &velocity, 0.05, 1.0/60)
	if result.x == 0 {
		t.Errorf("x axis did not respond to its target")
	}
	if result.y != 100 || velocity.y != 0 {
		t.Errorf("y axis moved without a delta: pos %f vel %f", result.y, velocity.y)
	}
}
