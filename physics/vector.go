package physics

import "github.com/jakecoffman/cp"

// normalize returns the unit vector of v, or the zero vector when v has no length.
func normalize(v cp.Vector) cp.Vector {
	lsq := v.LengthSq()
	if lsq == 0 {
		return cp.Vector{}
	}
	return v.Mult(1 / v.Length())
}
