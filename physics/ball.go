package physics

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
)

// contactBias pushes a resolved ball just past the surface so the next test
// does not report the same contact again.
const contactBias = 1e-8

type Ball struct {
	Position cp.Vector
	Velocity cp.Vector
	Radius   float64
	Mass     float64
}

func NewBall(position cp.Vector, radius, mass float64) *Ball {
	return &Ball{Position: position, Radius: radius, Mass: mass}
}

// SetRadius ignores non-positive and non-finite values.
func (b *Ball) SetRadius(r float64) {
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return
	}
	b.Radius = r
}

// Integrate advances the position by the current velocity.
func (b *Ball) Integrate(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Mult(dt))
}

// ResolveCollision pushes the ball out of l and reflects the normal part of its
// velocity scaled by sqrt(l.K). Tangential velocity is kept. A contact with no
// defined normal is ignored and reported as no contact: a degenerate ledge, or
// a ball centre lying exactly on the surface.
func (b *Ball) ResolveCollision(l *Ledge) bool {
	if l == nil {
		return false
	}
	offset := l.DistanceTo(b.Position)
	if offset.LengthSq() > b.Radius*b.Radius {
		return false
	}
	n := normalize(offset)
	if n.LengthSq() == 0 {
		return false
	}

	b.Position = b.Position.Sub(offset).Add(n.Mult(b.Radius + contactBias))

	vn := n.Mult(n.Dot(b.Velocity))
	vt := b.Velocity.Sub(vn)
	b.Velocity = vt.Sub(vn.Mult(math.Sqrt(l.K)))
	return true
}

func (b *Ball) Draw(s Surface, clr color.Color) {
	s.DrawCircle(b.Position, b.Radius, clr)
}

// AimTriangle returns the launch indicator: the ball's diameter perpendicular
// to the pull direction, and the anchor as apex.
func AimTriangle(b *Ball, anchor cp.Vector) (left, right, apex cp.Vector) {
	n := normalize(b.Position.Sub(anchor).ReversePerp()).Mult(b.Radius)
	return b.Position.Sub(n), b.Position.Add(n), anchor
}
