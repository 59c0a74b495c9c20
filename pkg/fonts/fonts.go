// Package fonts provides the font used to print categories on the board.
//
// The default is the Go Regular TrueType font shipped with golang.org/x/image,
// compiled into the binary so rendering works without any installed fonts.
// A different TrueType file can be supplied with [Load].
package fonts

import (
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ecbingo/ecbingo/pkg/errors"
)

// DefaultSize is the point size of category labels.
const DefaultSize = 40

// RegularTTF returns the embedded default font data.
func RegularTTF() []byte {
	return goregular.TTF
}

var (
	regular     *truetype.Font
	regularErr  error
	regularOnce sync.Once
)

// Regular returns the parsed default font. The result is cached after the
// first call.
func Regular() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = truetype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// Parse parses TrueType font data.
func Parse(data []byte) (*truetype.Font, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse font")
	}
	return f, nil
}

// Load reads a TrueType font from path, or returns the default font when
// path is empty.
func Load(path string) (*truetype.Font, error) {
	if path == "" {
		return Regular()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read font")
	}
	return Parse(data)
}

// Face returns a face of f at size points, rasterized at 72 DPI so that one
// point equals one pixel on the canvas.
func Face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
