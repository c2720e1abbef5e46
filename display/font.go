package display

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

type Weight int

const (
	Regular Weight = iota
	DemiBold
	Bold
	BoldItalic
)

// Font is a pixel size plus weight.
type Font struct {
	Size   float64
	Weight Weight
}

func NewFont(size float64) Font {
	return Font{Size: size, Weight: Regular}
}

func NewFontWeight(size float64, weight Weight) Font {
	return Font{Size: size, Weight: weight}
}

var (
	parseOnce sync.Once
	parseErr  error
	fonts     map[Weight]*sfnt.Font

	facesMu sync.Mutex
	faces   = map[Font]font.Face{}
)

func parseFonts() {
	fonts = map[Weight]*sfnt.Font{}
	for weight, ttf := range map[Weight][]byte{
		Regular:    goregular.TTF,
		DemiBold:   gomedium.TTF,
		Bold:       gobold.TTF,
		BoldItalic: gobolditalic.TTF,
	} {
		f, err := opentype.Parse(ttf)
		if err != nil {
			parseErr = errors.Wrap(err, "parse font")
			return
		}
		fonts[weight] = f
	}
}

// Face returns a cached face for f.
func Face(f Font) (font.Face, error) {
	parseOnce.Do(parseFonts)
	if parseErr != nil {
		return nil, parseErr
	}

	facesMu.Lock()
	defer facesMu.Unlock()
	if face, ok := faces[f]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(fonts[f.Weight], &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create font face")
	}
	faces[f] = face
	return face, nil
}
