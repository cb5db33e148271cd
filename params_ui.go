package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/cannonball/physics"
	"golang.org/x/image/font/basicfont"
)

const (
	// radiusSteps is the number of slider steps per world unit of radius.
	radiusSteps = 10
	minRadius   = 1  // 0.1 units
	maxRadius   = 50 // 5 units
	maxGravity  = 50
)

// ParamsUI is the slider panel in the top-right corner that edits the ball
// radius and the gravity magnitude while the game runs.
type ParamsUI struct {
	ui    *ebitenui.UI
	level *physics.Level

	radiusSlider  *widget.Slider
	gravitySlider *widget.Slider
	radiusText    *widget.Text
	gravityText   *widget.Text
}

func NewParamsUI(lvl *physics.Level) *ParamsUI {
	p := &ParamsUI{level: lvl}

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	ui := &ebitenui.UI{}
	ui.PrimaryTheme = &widget.Theme{
		SliderTheme: &widget.SliderParams{
			TrackImage: &widget.SliderTrackImage{
				Idle:  imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}),
				Hover: imageui.NewNineSliceColor(color.NRGBA{R: 0x70, G: 0x70, B: 0x70, A: 0xff}),
			},
			HandleImage: &widget.ButtonImage{
				Idle:    imageui.NewNineSliceColor(color.NRGBA{R: 0xb4, G: 0xb4, B: 0xb4, A: 0xff}),
				Hover:   imageui.NewNineSliceColor(color.NRGBA{R: 0xdc, G: 0xdc, B: 0xdc, A: 0xff}),
				Pressed: imageui.NewNineSliceColor(color.NRGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xff}),
			},
		},
	}

	p.radiusText = widget.NewText(widget.TextOpts.Text(radiusLabel(lvl.Ball.Radius), &face, white))
	p.radiusSlider = widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(minRadius, maxRadius),
		widget.SliderOpts.InitialCurrent(radiusStep(lvl.Ball.Radius)),
		widget.SliderOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 14)),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			if applyRadiusStep(p.level, args.Current) {
				p.radiusText.Label = radiusLabel(p.level.Ball.Radius)
			}
		}),
	)

	p.gravityText = widget.NewText(widget.TextOpts.Text(gravityLabel(lvl.Gravity.Length()), &face, white))
	p.gravitySlider = widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(0, maxGravity),
		widget.SliderOpts.InitialCurrent(gravityStep(lvl.Gravity.Length())),
		widget.SliderOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 14)),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			if applyGravityStep(p.level, args.Current) {
				p.gravityText.Label = gravityLabel(p.level.Gravity.Length())
			}
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(p.radiusText)
	panel.AddChild(p.radiusSlider)
	panel.AddChild(p.gravityText)
	panel.AddChild(p.gravitySlider)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	ui.Container = root
	p.ui = ui

	return p
}

// Sync moves the sliders to the level's current radius and gravity. The
// change events this triggers leave the level untouched.
func (p *ParamsUI) Sync() {
	p.radiusSlider.Current = radiusStep(p.level.Ball.Radius)
	p.radiusText.Label = radiusLabel(p.level.Ball.Radius)

	p.gravitySlider.Current = gravityStep(p.level.Gravity.Length())
	p.gravityText.Label = gravityLabel(p.level.Gravity.Length())
}

func (p *ParamsUI) Update() {
	p.ui.Update()
}

func (p *ParamsUI) Draw(screen *ebiten.Image) {
	p.ui.Draw(screen)
}

// radiusStep is the slider position showing radius r.
func radiusStep(r float64) int {
	return min(max(int(math.Round(r*radiusSteps)), minRadius), maxRadius)
}

func gravityStep(g float64) int {
	return min(max(int(math.Round(g)), 0), maxGravity)
}

// applyRadiusStep sets the ball radius from a slider position. A position that
// only reflects the current radius changes nothing and reports false.
func applyRadiusStep(lvl *physics.Level, step int) bool {
	if step == radiusStep(lvl.Ball.Radius) {
		return false
	}
	lvl.Ball.SetRadius(float64(step) / radiusSteps)
	return true
}

// applyGravityStep is applyRadiusStep for the gravity magnitude.
func applyGravityStep(lvl *physics.Level, step int) bool {
	if step == gravityStep(lvl.Gravity.Length()) {
		return false
	}
	lvl.SetGravityMagnitude(float64(step))
	return true
}

func radiusLabel(r float64) string {
	return fmt.Sprintf("radius: %.1f", r)
}

func gravityLabel(g float64) string {
	return fmt.Sprintf("gravity: %.0f", g)
}
