package common

import "image/color"

const (
	BaseWidth  = 800
	BaseHeight = 480
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpColor blends two colors channel by channel in straight alpha.
// t is clamped to [0,1].
func LerpColor(a, b color.Color, t float64) color.NRGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	ca := color.NRGBAModel.Convert(a).(color.NRGBA)
	cb := color.NRGBAModel.Convert(b).(color.NRGBA)
	mix := func(x, y uint8) uint8 {
		return uint8(Lerp(float64(x), float64(y), t) + 0.5)
	}
	return color.NRGBA{
		R: mix(ca.R, cb.R),
		G: mix(ca.G, cb.G),
		B: mix(ca.B, cb.B),
		A: mix(ca.A, cb.A),
	}
}
