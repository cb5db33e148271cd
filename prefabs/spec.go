package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cannonball/physics"
	"github.com/milk9111/cannonball/state"
	"gopkg.in/yaml.v3"
)

// DefaultLevel is the embedded room used when no level is given.
const DefaultLevel = "room.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2Spec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

type RoomSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type BallSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
}

type LedgeSpec struct {
	A         Vec2Spec `yaml:"a"`
	B         Vec2Spec `yaml:"b"`
	K         float64  `yaml:"k"`
	Thickness float64  `yaml:"thickness"`
}

// TuningSpec overrides state.DefaultTuning. Omitted fields keep the default;
// an explicit 0 is kept as 0.
type TuningSpec struct {
	LaunchScale     *float64 `yaml:"launch_scale"`
	RestitutionStep *float64 `yaml:"restitution_step"`
	LedgeThickness  *float64 `yaml:"ledge_thickness"`
	ZoomStep        *float64 `yaml:"zoom_step"`
	MinZoom         *float64 `yaml:"min_zoom"`
	MaxZoom         *float64 `yaml:"max_zoom"`
	FollowRate      *float64 `yaml:"follow_rate"`
}

type PaletteSpec struct {
	Background YAMLColor `yaml:"background"`
	Ball       YAMLColor `yaml:"ball"`
	Soft       YAMLColor `yaml:"soft"`
	Hard       YAMLColor `yaml:"hard"`
	Cursor     YAMLColor `yaml:"cursor"`
}

// LevelSpec describes the starting room, the ball and the interaction tuning.
type LevelSpec struct {
	Name    string      `yaml:"name"`
	Room    RoomSpec    `yaml:"room"`
	Gravity Vec2Spec    `yaml:"gravity"`
	Ball    BallSpec    `yaml:"ball"`
	Ledges  []LedgeSpec `yaml:"ledges"`
	Script  string      `yaml:"script"`
	Tuning  TuningSpec  `yaml:"tuning"`
	Palette PaletteSpec `yaml:"palette"`
}

// LoadLevelSpec loads and validates a level. Missing tuning values fall back
// to the defaults.
func LoadLevelSpec(name string) (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: invalid level %s: %w", name, err)
	}
	return &spec, nil
}

// Validate reports the first value that would break a level invariant.
func (s *LevelSpec) Validate() error {
	if err := finite("ball", s.Ball.X, s.Ball.Y, s.Ball.Radius, s.Ball.Mass); err != nil {
		return err
	}
	if err := finite("gravity", s.Gravity.X, s.Gravity.Y); err != nil {
		return err
	}
	if s.Ball.Radius <= 0 {
		return fmt.Errorf("ball radius must be positive, got %v", s.Ball.Radius)
	}
	if s.Ball.Mass <= 0 {
		return fmt.Errorf("ball mass must be positive, got %v", s.Ball.Mass)
	}
	for i, l := range s.Ledges {
		if err := l.validate(); err != nil {
			return fmt.Errorf("ledge %d: %w", i, err)
		}
	}
	t := s.StateTuning()
	if err := finite("tuning", t.LaunchScale, t.RestitutionStep, t.LedgeThickness, t.ZoomStep, t.MinZoom, t.MaxZoom, t.FollowRate); err != nil {
		return err
	}
	if t.MinZoom <= 0 || t.MaxZoom < t.MinZoom {
		return fmt.Errorf("zoom range [%v, %v] is invalid", t.MinZoom, t.MaxZoom)
	}
	if t.LedgeThickness < 0 {
		return errors.New("ledge thickness must not be negative")
	}
	return nil
}

func (l LedgeSpec) validate() error {
	if err := finite("geometry", l.A.X, l.A.Y, l.B.X, l.B.Y, l.K, l.Thickness); err != nil {
		return err
	}
	if l.K < 0 || l.K > 1 {
		return fmt.Errorf("restitution %v outside [0,1]", l.K)
	}
	if l.Thickness < 0 {
		return fmt.Errorf("thickness %v is negative", l.Thickness)
	}
	return nil
}

func finite(what string, vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s contains non-finite value %v", what, v)
		}
	}
	return nil
}

func (l LedgeSpec) Ledge() *physics.Ledge {
	return physics.NewLedge(l.A.Vector(), l.B.Vector(), l.K, l.Thickness)
}

// Build creates the level: the listed ledges first, then the ones emitted by
// the room script, if any.
func (s *LevelSpec) Build() (*physics.Level, error) {
	ball := physics.NewBall(cp.Vector{X: s.Ball.X, Y: s.Ball.Y}, s.Ball.Radius, s.Ball.Mass)
	lvl := physics.NewLevel(ball, s.Gravity.Vector())
	for _, l := range s.Ledges {
		lvl.AddLedge(l.Ledge())
	}
	if strings.TrimSpace(s.Script) == "" {
		return lvl, nil
	}
	extra, err := RunRoomScript(s.Script, s.Room)
	if err != nil {
		return nil, err
	}
	for i, l := range extra {
		if err := l.validate(); err != nil {
			return nil, fmt.Errorf("prefabs: script %s ledge %d: %w", s.Script, i, err)
		}
		lvl.AddLedge(l.Ledge())
	}
	return lvl, nil
}

func (s *LevelSpec) StateTuning() state.Tuning {
	t := state.DefaultTuning()
	override := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	override(&t.LaunchScale, s.Tuning.LaunchScale)
	override(&t.RestitutionStep, s.Tuning.RestitutionStep)
	override(&t.LedgeThickness, s.Tuning.LedgeThickness)
	override(&t.ZoomStep, s.Tuning.ZoomStep)
	override(&t.MinZoom, s.Tuning.MinZoom)
	override(&t.MaxZoom, s.Tuning.MaxZoom)
	override(&t.FollowRate, s.Tuning.FollowRate)
	return t
}

func (s *LevelSpec) PhysicsPalette() physics.Palette {
	p := physics.DefaultPalette()
	override := func(dst *color.Color, c YAMLColor) {
		if c.Color != nil {
			*dst = c.Color
		}
	}
	override(&p.Background, s.Palette.Background)
	override(&p.Ball, s.Palette.Ball)
	override(&p.Soft, s.Palette.Soft)
	override(&p.Hard, s.Palette.Hard)
	override(&p.Cursor, s.Palette.Cursor)
	return p
}

// MarshalLedges encodes ledges in the same shape as the ledges block of a level.
func MarshalLedges(ledges []*physics.Ledge) ([]byte, error) {
	out := struct {
		Ledges []LedgeSpec `yaml:"ledges"`
	}{Ledges: make([]LedgeSpec, 0, len(ledges))}
	for _, l := range ledges {
		if l == nil {
			continue
		}
		out.Ledges = append(out.Ledges, LedgeSpec{
			A:         Vec2Spec{X: l.A.X, Y: l.A.Y},
			B:         Vec2Spec{X: l.B.X, Y: l.B.Y},
			K:         l.K,
			Thickness: l.Thickness,
		})
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal ledges: %w", err)
	}
	return data, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
