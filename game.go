package main

import (
	"fmt"
	"log"

	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/cannonball/common"
	"github.com/milk9111/cannonball/obj"
	"github.com/milk9111/cannonball/physics"
	"github.com/milk9111/cannonball/prefabs"
	"github.com/milk9111/cannonball/state"
)

type Options struct {
	Level  string
	Debug  bool
	Watch  bool
	Width  int
	Height int
}

type Game struct {
	frames int
	debug  bool

	screenW int
	screenH int

	levelName string
	level     *physics.Level
	state     state.State
	tuning    state.Tuning
	palette   physics.Palette

	camera  *obj.Camera
	input   *obj.Input
	params  *ParamsUI
	watcher *prefabs.Watcher
}

func NewGame(opts Options) (*Game, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = common.BaseWidth, common.BaseHeight
	}

	name := opts.Level
	spec, lvl, err := loadLevel(name)
	if err != nil && name != prefabs.DefaultLevel {
		log.Printf("failed to load level %s: %v", name, err)
		name = prefabs.DefaultLevel
		spec, lvl, err = loadLevel(name)
	}
	if err != nil {
		return nil, err
	}

	camera := obj.NewCamera(opts.Width, opts.Height, float64(opts.Height)/20)
	camera.SetTarget(lvl.Ball.Position)

	g := &Game{
		debug:     opts.Debug,
		screenW:   opts.Width,
		screenH:   opts.Height,
		levelName: name,
		level:     lvl,
		state:     state.Play(),
		tuning:    spec.StateTuning(),
		palette:   spec.PhysicsPalette(),
		camera:    camera,
		input:     obj.NewInput(camera),
	}
	g.params = NewParamsUI(lvl)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.DiskDir(name))
		if err != nil {
			log.Printf("watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func loadLevel(name string) (*prefabs.LevelSpec, *physics.Level, error) {
	spec, err := prefabs.LoadLevelSpec(name)
	if err != nil {
		return nil, nil, err
	}
	lvl, err := spec.Build()
	if err != nil {
		return nil, nil, err
	}
	return spec, lvl, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("watcher close: %v", err)
		}
	}
}

func (g *Game) Update() error {
	g.frames++
	dt := 1 / float64(ebiten.TPS())

	g.pollWatcher()

	g.params.Update()
	g.input.Update(dt, !ebuiinput.UIHovered)

	if g.input.CopyPressed {
		if err := copyLedges(g.level.Ledges); err != nil {
			log.Printf("copy ledges: %v", err)
		} else if g.debug {
			log.Printf("copied %d ledges to the clipboard", len(g.level.Ledges))
		}
	}
	if g.input.ReloadPressed {
		g.reload()
	}

	var effect state.Effect
	g.state, effect = state.Update(g.state, g.level, g.camera, g.input.Frame, g.tuning)
	if g.debug {
		if msg := effectLog(g.frames, effect, g.level); msg != "" {
			log.Print(msg)
		}
	}
	return nil
}

// effectLog describes a launch or a committed ledge for the debug log. Other
// effects return "".
func effectLog(frame int, effect state.Effect, lvl *physics.Level) string {
	switch effect {
	case state.EffectLaunch:
		v := lvl.Ball.Velocity
		return fmt.Sprintf("frame %d: launch velocity=(%.2f, %.2f)", frame, v.X, v.Y)
	case state.EffectCommit:
		if len(lvl.Ledges) == 0 {
			return ""
		}
		i := len(lvl.Ledges) - 1
		l := lvl.Ledges[i]
		return fmt.Sprintf("frame %d: ledge %d (%.2f, %.2f)-(%.2f, %.2f) k=%.2f", frame, i, l.A.X, l.A.Y, l.B.X, l.B.Y, l.K)
	default:
		return ""
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		if _, ok := g.watcher.Poll(); !ok {
			break
		}
		changed = true
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("watch: %v", err)
	default:
	}
	if changed {
		g.reload()
	}
}

// reload re-reads the level file and applies tuning, colors, gravity and ball
// radius. The ball position and the ledges drawn so far are kept.
func (g *Game) reload() {
	spec, err := prefabs.LoadLevelSpec(g.levelName)
	if err != nil {
		log.Printf("reload %s: %v", g.levelName, err)
		return
	}
	g.tuning = spec.StateTuning()
	g.palette = spec.PhysicsPalette()
	g.level.Gravity = spec.Gravity.Vector()
	g.level.Ball.SetRadius(spec.Ball.Radius)
	g.params.Sync()
	if g.debug {
		log.Printf("reloaded %s", g.levelName)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)

	surface := obj.NewScreen(screen, g.camera)
	state.Render(g.state, g.level, surface, g.palette)

	g.params.Draw(screen)
	surface.DrawCursor(g.input.ScreenX, g.input.ScreenY, g.palette.Cursor)

	ebitenutil.DebugPrint(screen, g.hud())
}

func (g *Game) hud() string {
	s := fmt.Sprintf("FPS: %.1f  mode: %s  ledges: %d", ebiten.ActualFPS(), g.state.Mode, len(g.level.Ledges))
	if g.state.Mode == state.ModeDraw && g.state.Ledge != nil {
		s += fmt.Sprintf("  k: %.2f", g.state.Ledge.K)
	}
	return s
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
