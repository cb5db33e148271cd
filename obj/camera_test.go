package obj

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestCameraScreenWorldRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		zoom   float64
		target cp.Vector
		world  cp.Vector
	}{
		{"origin", 24, cp.Vector{}, cp.Vector{X: 0, Y: 0}},
		{"offset_target", 24, cp.Vector{X: 5, Y: 5}, cp.Vector{X: 7, Y: 3}},
		{"zoomed_out", 1, cp.Vector{X: -3, Y: 2}, cp.Vector{X: 100, Y: -50}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := NewCamera(800, 480, c.zoom)
			cam.SetTarget(c.target)
			x, y := cam.WorldToScreen(c.world)
			got := cam.ScreenToWorld(x, y)
			if math.Abs(got.X-c.world.X) > 1e-9 || math.Abs(got.Y-c.world.Y) > 1e-9 {
				t.Fatalf("round trip = %v, want %v", got, c.world)
			}
		})
	}
}

func TestCameraTargetIsScreenCenter(t *testing.T) {
	cam := NewCamera(800, 480, 24)
	cam.SetTarget(cp.Vector{X: 5, Y: 5})
	x, y := cam.WorldToScreen(cp.Vector{X: 5, Y: 5})
	if x != 400 || y != 240 {
		t.Fatalf("target drawn at (%v,%v), want screen center", x, y)
	}
	x, _ = cam.WorldToScreen(cp.Vector{X: 6, Y: 5})
	if x != 424 {
		t.Fatalf("one unit right = %v px, want 424", x)
	}
}

func TestCameraSetZoomIgnoresNonPositive(t *testing.T) {
	cam := NewCamera(800, 480, 10)
	cam.SetZoom(0)
	cam.SetZoom(-4)
	if cam.Zoom() != 10 {
		t.Fatalf("zoom = %v, want 10", cam.Zoom())
	}
	if NewCamera(800, 480, 0).Zoom() != 1 {
		t.Fatalf("invalid initial zoom should fall back to 1")
	}
}

func TestCameraClampToScreen(t *testing.T) {
	cam := NewCamera(800, 480, 10)
	cases := []struct {
		x, y         float64
		wantX, wantY float64
	}{
		{-5, 100, 0, 100},
		{900, -1, 800, 0},
		{400, 500, 400, 480},
		{10, 20, 10, 20},
	}
	for _, c := range cases {
		x, y := cam.ClampToScreen(c.x, c.y)
		if x != c.wantX || y != c.wantY {
			t.Fatalf("ClampToScreen(%v,%v) = (%v,%v), want (%v,%v)", c.x, c.y, x, y, c.wantX, c.wantY)
		}
	}
}
