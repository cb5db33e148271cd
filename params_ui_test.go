package main

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cannonball/physics"
)

func TestSliderEchoLeavesLevelUntouched(t *testing.T) {
	cases := []struct {
		name    string
		radius  float64
		gravity cp.Vector
	}{
		{"fractional", 0.65, cp.Vector{Y: 9.81}},
		{"above_range", 7.3, cp.Vector{X: 30, Y: 60}},
		{"below_range", 0.02, cp.Vector{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl := physics.NewLevel(physics.NewBall(cp.Vector{}, c.radius, 1), c.gravity)

			if applyRadiusStep(lvl, radiusStep(lvl.Ball.Radius)) {
				t.Fatalf("radius echo reported a change")
			}
			if applyGravityStep(lvl, gravityStep(lvl.Gravity.Length())) {
				t.Fatalf("gravity echo reported a change")
			}
			if lvl.Ball.Radius != c.radius || lvl.Gravity != c.gravity {
				t.Fatalf("level changed: radius=%v gravity=%v", lvl.Ball.Radius, lvl.Gravity)
			}
		})
	}
}

func TestSliderMoveAppliesValue(t *testing.T) {
	lvl := physics.NewLevel(physics.NewBall(cp.Vector{}, 1, 1), cp.Vector{Y: 9.81})

	if !applyRadiusStep(lvl, 25) {
		t.Fatalf("radius move not applied")
	}
	if math.Abs(lvl.Ball.Radius-2.5) > 1e-9 {
		t.Fatalf("radius = %v, want 2.5", lvl.Ball.Radius)
	}

	if !applyGravityStep(lvl, 20) {
		t.Fatalf("gravity move not applied")
	}
	if math.Abs(lvl.Gravity.Y-20) > 1e-9 || lvl.Gravity.X != 0 {
		t.Fatalf("gravity = %v, want (0,20)", lvl.Gravity)
	}
}

func TestSliderSteps(t *testing.T) {
	cases := []struct {
		radius, gravity float64
		wantR, wantG    int
	}{
		{1, 10, 10, 10},
		{0.65, 9.81, 7, 10},
		{9, 80, maxRadius, maxGravity},
		{0, -1, minRadius, 0},
	}
	for _, c := range cases {
		if got := radiusStep(c.radius); got != c.wantR {
			t.Fatalf("radiusStep(%v) = %d, want %d", c.radius, got, c.wantR)
		}
		if got := gravityStep(c.gravity); got != c.wantG {
			t.Fatalf("gravityStep(%v) = %d, want %d", c.gravity, got, c.wantG)
		}
	}
}
