package vehicleinfo

import (
	"image"
	"regexp"

	"pfeifer.dev/dashd/display"
)

var (
	background    = display.RGB(0x33, 0x33, 0x33)
	titleFont     = display.NewFontWeight(75, display.BoldItalic)
	primarySize   = 60.0
	secondarySize = 42.0
	sunTimesSize  = 56.0
	boldRun       = regexp.MustCompile(`<b>(.*?)</b>`)
)

const (
	marginX = 80
	marginY = 50
)

type run struct {
	text string
	bold bool
}

func runs(line string) []run {
	out := []run{}
	last := 0
	for _, m := range boldRun.FindAllStringSubmatchIndex(line, -1) {
		if m[0] > last {
			out = append(out, run{text: line[last:m[0]]})
		}
		out = append(out, run{text: line[m[2]:m[3]], bold: true})
		last = m[1]
	}
	if last < len(line) {
		out = append(out, run{text: line[last:]})
	}
	return out
}

// drawBlock lays rich text out line by line from top and returns the y below
// the last line.
func drawBlock(p display.Painter, x, top int, rich string, size float64) int {
	regular := display.NewFont(size)
	bold := display.NewFontWeight(size, display.Bold)
	lineHeight := display.LineHeight(regular)

	y := top
	for _, line := range lineBreak.Split(rich, -1) {
		cx := x
		for _, r := range runs(line) {
			f := regular
			if r.bold {
				f = bold
			}
			text := tag.ReplaceAllString(r.text, "")
			p.TextInRect(image.Rect(cx, y, cx+display.MeasureText(text, f), y+lineHeight), display.AlignTopLeft, text, f, display.White(255))
			cx += display.MeasureText(text, f)
		}
		y += lineHeight
	}
	return y
}

func blockHeight(rich string, size float64) int {
	return len(lineBreak.Split(rich, -1)) * display.LineHeight(display.NewFont(size))
}

// Render paints the panel into rect: title, primary and secondary details
// from the top, sun times pinned to the bottom.
func (p *Panel) Render(painter display.Painter, rect image.Rectangle) {
	painter.FillRoundedRect(rect, 10, background, background, 0)

	x := rect.Min.X + marginX
	y := rect.Min.Y + marginY

	painter.TextInRect(image.Rect(x, y, rect.Max.X-marginX, y+display.LineHeight(titleFont)), display.AlignTopLeft, Title, titleFont, display.White(255))
	y += display.LineHeight(titleFont) + 50

	y = drawBlock(painter, x, y, p.Primary, primarySize)
	y += 30
	drawBlock(painter, x, y, p.Secondary, secondarySize)

	bottom := rect.Max.Y - marginY - blockHeight(p.SunTimes, sunTimesSize)
	drawBlock(painter, x, bottom, p.SunTimes, sunTimesSize)
}
