package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Level owns the ball, the ledges in insertion order and a gravity acceleration.
type Level struct {
	Ball    *Ball
	Ledges  []*Ledge
	Gravity cp.Vector
}

func NewLevel(ball *Ball, gravity cp.Vector, ledges ...*Ledge) *Level {
	lvl := &Level{Ball: ball, Gravity: gravity}
	for _, l := range ledges {
		lvl.AddLedge(l)
	}
	return lvl
}

// AddLedge appends l. Ledges are never removed.
func (lvl *Level) AddLedge(l *Ledge) {
	if l == nil {
		return
	}
	lvl.Ledges = append(lvl.Ledges, l)
}

// SetGravityMagnitude rescales gravity, keeping its direction (down when zero).
func (lvl *Level) SetGravityMagnitude(g float64) {
	if math.IsNaN(g) {
		return
	}
	dir := normalize(lvl.Gravity)
	if dir.LengthSq() == 0 {
		dir = cp.Vector{X: 0, Y: 1}
	}
	lvl.Gravity = dir.Mult(math.Max(g, 0))
}

// Update advances the simulation by dt and returns the number of contacts.
// Ledges are resolved one after another in insertion order, once each.
func (lvl *Level) Update(dt float64) int {
	if lvl == nil || lvl.Ball == nil {
		return 0
	}
	lvl.Ball.Velocity = lvl.Ball.Velocity.Add(lvl.Gravity.Mult(dt))
	lvl.Ball.Integrate(dt)

	contacts := 0
	for _, l := range lvl.Ledges {
		if lvl.Ball.ResolveCollision(l) {
			contacts++
		}
	}
	return contacts
}

func (lvl *Level) DrawLedges(s Surface, pal Palette) {
	for _, l := range lvl.Ledges {
		l.Draw(s, pal.LedgeColor(l.K))
	}
}
