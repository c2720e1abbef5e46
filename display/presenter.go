package display

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Presenter puts a finished frame in front of the user.
type Presenter interface {
	Present(img image.Image) error
}

// PNGPresenter atomically replaces a PNG file with every frame, for
// displays driven by an external viewer.
type PNGPresenter struct {
	Path string
}

func (p PNGPresenter) Present(img image.Image) error {
	dir := filepath.Dir(p.Path)
	file, err := os.CreateTemp(dir, ".tmp_frame_"+filepath.Base(p.Path))
	if err != nil {
		return errors.Wrap(err, "could not create temp frame file")
	}
	tmpName := file.Name()
	defer os.Remove(tmpName)

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return errors.Wrap(err, "could not encode frame")
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(err, "could not close frame file")
	}
	return errors.Wrap(os.Rename(tmpName, p.Path), "could not move frame into place")
}

type PresenterFunc func(image.Image) error

func (f PresenterFunc) Present(img image.Image) error {
	return f(img)
}
