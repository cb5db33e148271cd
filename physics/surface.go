package physics

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cannonball/common"
	"golang.org/x/image/colornames"
)

// Surface receives draw calls in world coordinates. Line width is in screen pixels.
type Surface interface {
	DrawCircle(center cp.Vector, radius float64, clr color.Color)
	DrawLine(a, b cp.Vector, width float64, clr color.Color)
	DrawTriangle(a, b, c cp.Vector, clr color.Color)
}

// Palette holds the colors used to draw a level.
// Ledges blend from Soft (k=0) to Hard (k=1).
type Palette struct {
	Background color.Color
	Ball       color.Color
	Soft       color.Color
	Hard       color.Color
	Cursor     color.Color
}

func DefaultPalette() Palette {
	return Palette{
		Background: colornames.Black,
		Ball:       color.NRGBA{R: 0, G: 121, B: 241, A: 255},
		Soft:       colornames.Red,
		Hard:       colornames.Lime,
		Cursor:     colornames.White,
	}
}

func (p Palette) LedgeColor(k float64) color.Color {
	return common.LerpColor(p.Soft, p.Hard, k)
}
