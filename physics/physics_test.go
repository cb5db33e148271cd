package physics

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func nearVec(a, b cp.Vector) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func isFinite(v cp.Vector) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

type drawCall struct {
	kind   string
	points []cp.Vector
	size   float64
	clr    color.Color
}

// recordingSurface captures draw calls instead of rasterizing them.
type recordingSurface struct {
	calls []drawCall
}

func (r *recordingSurface) DrawCircle(center cp.Vector, radius float64, clr color.Color) {
	r.calls = append(r.calls, drawCall{kind: "circle", points: []cp.Vector{center}, size: radius, clr: clr})
}

func (r *recordingSurface) DrawLine(a, b cp.Vector, width float64, clr color.Color) {
	r.calls = append(r.calls, drawCall{kind: "line", points: []cp.Vector{a, b}, size: width, clr: clr})
}

func (r *recordingSurface) DrawTriangle(a, b, c cp.Vector, clr color.Color) {
	r.calls = append(r.calls, drawCall{kind: "triangle", points: []cp.Vector{a, b, c}, clr: clr})
}

func (r *recordingSurface) count(kind string) int {
	n := 0
	for _, c := range r.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}
