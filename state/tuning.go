package state

// Tuning holds the interaction constants.
type Tuning struct {
	// LaunchScale multiplies the ball-to-anchor vector into a launch velocity.
	LaunchScale float64
	// RestitutionStep is the change of k per wheel notch while drawing.
	RestitutionStep float64
	// LedgeThickness is the capsule radius of drawn ledges.
	LedgeThickness float64
	// ZoomStep is the zoom change per wheel notch while playing.
	ZoomStep float64
	MinZoom  float64
	MaxZoom  float64
	// FollowRate is the camera blend rate per second toward the ball.
	FollowRate float64
}

func DefaultTuning() Tuning {
	return Tuning{
		LaunchScale:     2,
		RestitutionStep: 0.02,
		LedgeThickness:  0.5,
		ZoomStep:        0.5,
		MinZoom:         1,
		MaxZoom:         100,
		FollowRate:      10,
	}
}
