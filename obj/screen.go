package obj

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

var whiteSubImage *ebiten.Image

// solidSource returns a 1x1 white source image for untextured triangles.
func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Screen draws world-space primitives onto an ebiten image through a camera.
type Screen struct {
	dst    *ebiten.Image
	camera *Camera
}

func NewScreen(dst *ebiten.Image, camera *Camera) *Screen {
	return &Screen{dst: dst, camera: camera}
}

func (s *Screen) DrawCircle(center cp.Vector, radius float64, clr color.Color) {
	x, y := s.camera.WorldToScreen(center)
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(radius*s.camera.Zoom()), clr, true)
}

func (s *Screen) DrawLine(a, b cp.Vector, width float64, clr color.Color) {
	ax, ay := s.camera.WorldToScreen(a)
	bx, by := s.camera.WorldToScreen(b)
	vector.StrokeLine(s.dst, float32(ax), float32(ay), float32(bx), float32(by), float32(width), clr, true)
}

func (s *Screen) DrawTriangle(a, b, c cp.Vector, clr color.Color) {
	nc := color.NRGBAModel.Convert(clr).(color.NRGBA)
	r, g, bl, al := float32(nc.R)/0xff, float32(nc.G)/0xff, float32(nc.B)/0xff, float32(nc.A)/0xff

	vs := make([]ebiten.Vertex, 0, 3)
	for _, p := range []cp.Vector{a, b, c} {
		x, y := s.camera.WorldToScreen(p)
		vs = append(vs, ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: bl,
			ColorA: al,
		})
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(vs, []uint16{0, 1, 2}, solidSource(), op)
}

// DrawCursor draws the pointer marker in screen pixels.
func (s *Screen) DrawCursor(x, y float64, clr color.Color) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), 2, clr, true)
}
