package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func floorLedge(k float64) *Ledge {
	return NewLedge(cp.Vector{X: -10, Y: 0}, cp.Vector{X: 10, Y: 0}, k, 0.5)
}

func TestBallResolveCollisionResponse(t *testing.T) {
	cases := []struct {
		name string
		k    float64
		want cp.Vector
	}{
		{"elastic", 1, cp.Vector{X: 3, Y: -5}},
		{"inelastic", 0, cp.Vector{X: 3, Y: 0}},
		{"quarter_restitution_halves_normal_speed", 0.25, cp.Vector{X: 3, Y: -2.5}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBall(cp.Vector{X: 0, Y: -1.4}, 1, 10)
			b.Velocity = cp.Vector{X: 3, Y: 5}
			if !b.ResolveCollision(floorLedge(c.k)) {
				t.Fatalf("expected a collision")
			}
			if !nearVec(b.Velocity, c.want) {
				t.Fatalf("velocity = %v, want %v", b.Velocity, c.want)
			}
		})
	}
}

func TestBallResolveCollisionNonPenetration(t *testing.T) {
	starts := []cp.Vector{
		{X: 0, Y: -1.4},
		{X: 2, Y: -0.6},
		{X: 10.8, Y: -0.3},
		{X: -10.2, Y: 0.9},
	}
	for _, p := range starts {
		l := floorLedge(0.5)
		b := NewBall(p, 1, 1)
		b.Velocity = cp.Vector{X: 1, Y: 2}
		if !b.ResolveCollision(l) {
			t.Fatalf("start %v: expected a collision", p)
		}
		if d := l.DistanceTo(b.Position).Length(); d < b.Radius {
			t.Fatalf("start %v: distance to surface %v < radius %v", p, d, b.Radius)
		}
		if d := l.DistanceTo(b.Position).Length(); d > b.Radius+1e-6 {
			t.Fatalf("start %v: ball pushed too far (%v)", p, d)
		}
	}
}

func TestBallResolveCollisionMiss(t *testing.T) {
	b := NewBall(cp.Vector{X: 0, Y: -3}, 1, 1)
	b.Velocity = cp.Vector{X: 1, Y: 1}
	if b.ResolveCollision(floorLedge(1)) {
		t.Fatalf("ball 2.5 units from the surface should not collide")
	}
	if b.Velocity != (cp.Vector{X: 1, Y: 1}) || b.Position != (cp.Vector{X: 0, Y: -3}) {
		t.Fatalf("a miss must not mutate the ball")
	}
}

func TestBallResolveCollisionDegenerate(t *testing.T) {
	l := NewLedge(cp.Vector{X: 0, Y: 0}, cp.Vector{X: 0, Y: 0}, 1, 0.5)
	b := NewBall(cp.Vector{X: 0.2, Y: 0.1}, 1, 1)
	b.Velocity = cp.Vector{X: 0, Y: 4}
	if b.ResolveCollision(l) {
		t.Fatalf("zero-length ledge should not produce a contact")
	}
	if !isFinite(b.Position) || !isFinite(b.Velocity) {
		t.Fatalf("ball state became non-finite: %+v", b)
	}
	if b.ResolveCollision(nil) {
		t.Fatalf("nil ledge should not collide")
	}
}

func TestBallResolveCollisionCentreOnSegment(t *testing.T) {
	floor := NewLedge(cp.Vector{X: -10, Y: 0}, cp.Vector{X: 10, Y: 0}, 1, 0.5)
	b := NewBall(cp.Vector{X: 5, Y: 0}, 1, 1)
	b.Velocity = cp.Vector{X: 1, Y: 2}
	if b.ResolveCollision(floor) {
		t.Fatalf("centre on the segment has no normal and should report no contact")
	}
	if b.Position != (cp.Vector{X: 5, Y: 0}) || b.Velocity != (cp.Vector{X: 1, Y: 2}) {
		t.Fatalf("ball changed: pos=%v vel=%v", b.Position, b.Velocity)
	}
}

func TestBallIntegrate(t *testing.T) {
	b := NewBall(cp.Vector{X: 1, Y: 2}, 1, 1)
	b.Velocity = cp.Vector{X: 4, Y: -2}
	b.Integrate(0.5)
	if !nearVec(b.Position, cp.Vector{X: 3, Y: 1}) {
		t.Fatalf("position = %v, want (3,1)", b.Position)
	}
}

func TestBallSetRadius(t *testing.T) {
	b := NewBall(cp.Vector{}, 1, 1)
	for _, r := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		b.SetRadius(r)
		if b.Radius != 1 {
			t.Fatalf("SetRadius(%v) changed radius to %v", r, b.Radius)
		}
	}
	b.SetRadius(2.5)
	if b.Radius != 2.5 {
		t.Fatalf("radius = %v, want 2.5", b.Radius)
	}
}

func TestAimTriangle(t *testing.T) {
	b := NewBall(cp.Vector{X: 0, Y: 0}, 1, 1)
	left, right, apex := AimTriangle(b, cp.Vector{X: 0, Y: 10})
	if apex != (cp.Vector{X: 0, Y: 10}) {
		t.Fatalf("apex = %v", apex)
	}
	if !near(left.Sub(right).Length(), 2) || !near(left.Y, 0) || !near(right.Y, 0) {
		t.Fatalf("base should be the horizontal diameter, got %v %v", left, right)
	}

	left, right, _ = AimTriangle(b, b.Position)
	if !isFinite(left) || !isFinite(right) {
		t.Fatalf("anchor on the ball should collapse safely, got %v %v", left, right)
	}
}
