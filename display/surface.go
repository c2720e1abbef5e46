package display

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Surface is an RGBA frame that widgets paint into.
type Surface struct {
	Img *image.RGBA
}

func NewSurface(width, height int) *Surface {
	return &Surface{Img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (s *Surface) Bounds() image.Rectangle {
	return s.Img.Bounds()
}

func (s *Surface) Clear(c color.Color) {
	draw.Draw(s.Img, s.Img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *Surface) FillVerticalGradient(rect image.Rectangle, from, to color.NRGBA) {
	rect = rect.Intersect(s.Img.Bounds())
	h := rect.Dy()
	if h <= 0 {
		return
	}
	for i := 0; i < h; i++ {
		t := float64(i) / float64(h)
		row := image.Rect(rect.Min.X, rect.Min.Y+i, rect.Max.X, rect.Min.Y+i+1)
		draw.Draw(s.Img, row, image.NewUniform(lerp(from, to, t)), image.Point{}, draw.Over)
	}
}

func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func (s *Surface) FillRoundedRect(rect image.Rectangle, radius float64, fill, stroke color.NRGBA, lineWidth float64) {
	gc := draw2dimg.NewGraphicContext(s.Img)
	gc.SetFillColor(fill)
	gc.SetStrokeColor(stroke)
	gc.SetLineWidth(lineWidth)
	draw2dkit.RoundedRectangle(gc,
		float64(rect.Min.X), float64(rect.Min.Y),
		float64(rect.Max.X), float64(rect.Max.Y),
		radius*2, radius*2)
	if lineWidth > 0 && stroke.A > 0 {
		gc.FillStroke()
	} else {
		gc.Fill()
	}
}

func (s *Surface) drawer(f Font, c color.NRGBA) (*font.Drawer, bool) {
	face, err := Face(f)
	if err != nil {
		slog.Error("could not load font face", "error", err)
		return nil, false
	}
	return &font.Drawer{Dst: s.Img, Src: image.NewUniform(c), Face: face}, true
}

func (s *Surface) Text(x, y int, text string, f Font, c color.NRGBA) {
	d, ok := s.drawer(f, c)
	if !ok {
		return
	}
	width := d.MeasureString(text).Round()
	d.Dot = fixed.P(x-width/2, y)
	d.DrawString(text)
}

func (s *Surface) TextInRect(rect image.Rectangle, align Align, text string, f Font, c color.NRGBA) {
	d, ok := s.drawer(f, c)
	if !ok {
		return
	}
	baseline := rect.Min.Y + d.Face.Metrics().Ascent.Round()
	x := rect.Min.X
	if align == AlignTopCenter {
		x = rect.Min.X + (rect.Dx()-d.MeasureString(text).Round())/2
	}
	d.Dot = fixed.P(x, baseline)
	d.DrawString(text)
}

// MeasureText reports the advance width of text in pixels.
func MeasureText(text string, f Font) int {
	face, err := Face(f)
	if err != nil {
		return 0
	}
	return font.MeasureString(face, text).Round()
}

// LineHeight is ascent plus descent for f.
func LineHeight(f Font) int {
	face, err := Face(f)
	if err != nil {
		return 0
	}
	m := face.Metrics()
	return (m.Ascent + m.Descent).Round()
}
