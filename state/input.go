package state

import "github.com/jakecoffman/cp"

// Input is the snapshot of one frame of pointer input.
type Input struct {
	// Pointer is the pointer in world coordinates, clamped to the viewport.
	Pointer cp.Vector
	// RawPointer is the pointer in world coordinates without clamping.
	RawPointer cp.Vector

	PrimaryPressed    bool
	PrimaryReleased   bool
	SecondaryPressed  bool
	SecondaryReleased bool

	// Wheel is the vertical scroll delta for this frame.
	Wheel float64
	// HasAuthority is false while an overlay panel owns the pointer.
	HasAuthority bool

	// Dt is the elapsed time of the frame in seconds.
	Dt float64
}

// Camera is the view the Play state frames the ball with.
type Camera interface {
	Zoom() float64
	SetZoom(z float64)
	Target() cp.Vector
	SetTarget(p cp.Vector)
}
