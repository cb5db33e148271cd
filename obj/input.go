package obj

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/cannonball/state"
)

// Input polls ebiten once per frame and keeps the snapshot the state machine reads.
type Input struct {
	// Frame is the pointer snapshot of the current frame.
	Frame state.Input
	// CopyPressed is true on the frame Ctrl+C was pressed.
	CopyPressed bool
	// ReloadPressed is true on the frame F5 was pressed.
	ReloadPressed bool
	// ScreenX/Y are the clamped cursor position in screen pixels.
	ScreenX float64
	ScreenY float64

	camera *Camera
}

func NewInput(camera *Camera) *Input {
	return &Input{camera: camera}
}

// Update samples the pointer, buttons and wheel. hasAuthority is false while
// an overlay panel is under the pointer.
func (i *Input) Update(dt float64, hasAuthority bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	mx, my := ebiten.CursorPosition()
	rawX, rawY := float64(mx), float64(my)
	i.ScreenX, i.ScreenY = i.camera.ClampToScreen(rawX, rawY)

	_, wheelY := ebiten.Wheel()

	i.Frame = state.Input{
		Pointer:           i.camera.ScreenToWorld(i.ScreenX, i.ScreenY),
		RawPointer:        i.camera.ScreenToWorld(rawX, rawY),
		PrimaryPressed:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		PrimaryReleased:   inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		SecondaryPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		SecondaryReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight),
		Wheel:             wheelY,
		HasAuthority:      hasAuthority,
		Dt:                dt,
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	i.CopyPressed = ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC)
	i.ReloadPressed = inpututil.IsKeyJustPressed(ebiten.KeyF5)
}
