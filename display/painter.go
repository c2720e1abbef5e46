package display

import (
	"image"
	"image/color"
)

type Color = color.NRGBA

type Align int

const (
	AlignTopLeft Align = iota
	AlignTopCenter
)

// Painter is what widgets draw with.
type Painter interface {
	Bounds() image.Rectangle
	FillVerticalGradient(rect image.Rectangle, from, to color.NRGBA)
	FillRoundedRect(rect image.Rectangle, radius float64, fill, stroke color.NRGBA, lineWidth float64)
	// Text draws text horizontally centred on x with its baseline at y.
	Text(x, y int, text string, f Font, c color.NRGBA)
	TextInRect(rect image.Rectangle, align Align, text string, f Font, c color.NRGBA)
}

func White(alpha uint8) color.NRGBA {
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: alpha}
}

func Black(alpha uint8) color.NRGBA {
	return color.NRGBA{A: alpha}
}

func RGB(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
