package physics

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
)

const ledgeOutlineWidth = 1

// Ledge is a static segment collider thickened into a capsule.
// K is the restitution coefficient in [0,1].
type Ledge struct {
	A, B      cp.Vector
	K         float64
	Thickness float64
}

// NewLedge clamps k into [0,1]. A negative or non-finite thickness becomes 0.
func NewLedge(a, b cp.Vector, k, thickness float64) *Ledge {
	if math.IsNaN(thickness) || math.IsInf(thickness, 0) {
		thickness = 0
	}
	l := &Ledge{A: a, B: b, Thickness: math.Max(thickness, 0)}
	l.SetRestitution(k)
	return l
}

// SetRestitution stores k clamped into [0,1].
func (l *Ledge) SetRestitution(k float64) {
	if math.IsNaN(k) {
		k = 0
	}
	l.K = cp.Clamp01(k)
}

// AdjustRestitution adds delta to K and clamps the result.
func (l *Ledge) AdjustRestitution(delta float64) {
	l.SetRestitution(l.K + delta)
}

// Degenerate reports whether both endpoints coincide.
func (l *Ledge) Degenerate() bool {
	return l.B.Sub(l.A).LengthSq() == 0
}

// DistanceTo returns the offset from the closest point of the capsule surface
// to p. A zero-length ledge yields the zero vector.
func (l *Ledge) DistanceTo(p cp.Vector) cp.Vector {
	if l.Degenerate() {
		return cp.Vector{}
	}
	line := l.B.Sub(l.A)
	t := cp.Clamp01(p.Sub(l.A).Dot(line) / line.LengthSq())
	dist := p.Sub(l.A.Add(line.Mult(t)))
	return dist.Sub(normalize(dist).Mult(l.Thickness))
}

// Outline returns the two sides of the capsule, offset by Thickness along the
// segment normal.
func (l *Ledge) Outline() (left, right [2]cp.Vector) {
	n := normalize(l.B.Sub(l.A).ReversePerp()).Mult(l.Thickness)
	left = [2]cp.Vector{l.A.Add(n), l.B.Add(n)}
	right = [2]cp.Vector{l.A.Sub(n), l.B.Sub(n)}
	return left, right
}

// Draw renders the end caps and both sides. Ledges without thickness are invisible.
func (l *Ledge) Draw(s Surface, clr color.Color) {
	if l.Thickness <= 0 {
		return
	}
	s.DrawCircle(l.A, l.Thickness, clr)
	s.DrawCircle(l.B, l.Thickness, clr)
	left, right := l.Outline()
	s.DrawLine(left[0], left[1], ledgeOutlineWidth, clr)
	s.DrawLine(right[0], right[1], ledgeOutlineWidth, clr)
}
