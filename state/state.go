package state

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/cannonball/physics"
)

type Mode int

const (
	ModePlay Mode = iota
	ModeDrag
	ModeDraw
)

func (m Mode) String() string {
	switch m {
	case ModePlay:
		return "play"
	case ModeDrag:
		return "drag"
	case ModeDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// State is the active interaction mode plus the transient data of that mode.
// Anchor is only meaningful in ModeDrag and Ledge only in ModeDraw.
type State struct {
	Mode   Mode
	Anchor cp.Vector
	Ledge  *physics.Ledge
}

// Effect reports what an Update did to the level.
type Effect int

const (
	EffectNone Effect = iota
	// EffectStep means the level advanced by one tick.
	EffectStep
	// EffectLaunch means the ball was given a launch velocity.
	EffectLaunch
	// EffectCommit means the ledge under construction was added to the level.
	EffectCommit
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectStep:
		return "step"
	case EffectLaunch:
		return "launch"
	case EffectCommit:
		return "commit"
	default:
		return "unknown"
	}
}

func Play() State {
	return State{Mode: ModePlay}
}

func Drag(anchor cp.Vector) State {
	return State{Mode: ModeDrag, Anchor: anchor}
}

// Draw starts a new ledge at p with both endpoints equal and full restitution.
func Draw(p cp.Vector, thickness float64) State {
	return State{Mode: ModeDraw, Ledge: physics.NewLedge(p, p, 1, thickness)}
}

// Update runs one frame of the active mode and returns the next state.
func Update(s State, lvl *physics.Level, cam Camera, in Input, t Tuning) (State, Effect) {
	if lvl == nil || lvl.Ball == nil {
		return s, EffectNone
	}
	switch s.Mode {
	case ModeDrag:
		return updateDrag(s, lvl, in, t)
	case ModeDraw:
		return updateDraw(s, lvl, in, t)
	default:
		return updatePlay(s, lvl, cam, in, t)
	}
}

func updatePlay(s State, lvl *physics.Level, cam Camera, in Input, t Tuning) (State, Effect) {
	if in.HasAuthority {
		if in.PrimaryPressed {
			return Drag(in.RawPointer), EffectNone
		}
		if in.SecondaryPressed {
			return Draw(in.Pointer, t.LedgeThickness), EffectNone
		}
	}

	lvl.Update(in.Dt)

	if cam != nil {
		if in.HasAuthority && in.Wheel != 0 {
			cam.SetZoom(cp.Clamp(cam.Zoom()+in.Wheel*t.ZoomStep, t.MinZoom, t.MaxZoom))
		}
		blend := cp.Clamp01(t.FollowRate * in.Dt)
		cam.SetTarget(cam.Target().Lerp(lvl.Ball.Position, blend))
	}
	return Play(), EffectStep
}

func updateDrag(s State, lvl *physics.Level, in Input, t Tuning) (State, Effect) {
	s.Anchor = in.RawPointer
	if in.PrimaryReleased {
		lvl.Ball.Velocity = lvl.Ball.Position.Sub(s.Anchor).Mult(t.LaunchScale)
		return Play(), EffectLaunch
	}
	return s, EffectNone
}

func updateDraw(s State, lvl *physics.Level, in Input, t Tuning) (State, Effect) {
	if s.Ledge == nil {
		return Play(), EffectNone
	}
	s.Ledge.B = in.Pointer
	s.Ledge.AdjustRestitution(in.Wheel * t.RestitutionStep)
	if in.SecondaryReleased {
		lvl.AddLedge(s.Ledge)
		return Play(), EffectCommit
	}
	return s, EffectNone
}

// Render draws the level and the overlay of the active mode.
func Render(s State, lvl *physics.Level, surf physics.Surface, pal physics.Palette) {
	if lvl == nil || surf == nil {
		return
	}
	lvl.DrawLedges(surf, pal)
	if lvl.Ball != nil {
		if s.Mode == ModeDrag {
			a, b, c := physics.AimTriangle(lvl.Ball, s.Anchor)
			surf.DrawTriangle(a, b, c, pal.Ball)
		}
		lvl.Ball.Draw(surf, pal.Ball)
	}
	if s.Mode == ModeDraw && s.Ledge != nil {
		s.Ledge.Draw(surf, pal.LedgeColor(s.Ledge.K))
	}
}
