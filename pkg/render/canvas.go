package render

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"

	"github.com/ecbingo/ecbingo/pkg/board"
	"github.com/ecbingo/ecbingo/pkg/errors"
	"github.com/ecbingo/ecbingo/pkg/fonts"
)

const (
	headerSize = 160
	freeSize   = 56
	borderGray = 0.25
)

// LoadCanvas reads the base canvas image from path.
func LoadCanvas(path string) (image.Image, error) {
	img, err := gg.LoadImage(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "load base canvas %s", path)
	}
	return img, nil
}

// StandardCanvas draws a blank board for g: a white card with the BINGO
// header over the columns, a bordered square per cell and FREE in the
// center. Labels and markers are drawn on top by [Renderer.Render].
func StandardCanvas(g Grid, f *truetype.Font) image.Image {
	size := g.CanvasSize()
	dc := gg.NewContext(size.X, size.Y)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(borderGray, borderGray, borderGray)
	dc.SetLineWidth(6)
	for col := range board.Width {
		for row := 1; row <= board.Height; row++ {
			p, _ := board.NewPoint(board.Columns[col], row)
			c := g.Cell(p)
			dc.DrawRectangle(float64(c.Min.X), float64(c.Min.Y), float64(c.Dx()), float64(c.Dy()))
			dc.Stroke()
		}
	}

	header := fonts.Face(f, headerSize)
	defer header.Close()
	dc.SetFontFace(header)
	dc.SetRGB(0, 0, 0)
	top := g.Cell(board.MustParsePoint("B1")).Min.Y
	for col := range board.Width {
		p, _ := board.NewPoint(board.Columns[col], 1)
		c := g.Cell(p)
		cx := float64(c.Min.X+c.Max.X) / 2
		dc.DrawStringAnchored(string(board.Columns[col]), cx, float64(top)/2, 0.5, 0.5)
	}

	free := fonts.Face(f, freeSize)
	defer free.Close()
	dc.SetFontFace(free)
	c := g.Cell(board.FreeSpace)
	dc.DrawStringAnchored("FREE", float64(c.Min.X+c.Max.X)/2, float64(c.Min.Y+c.Max.Y)/2, 0.5, 0.5)

	return dc.Image()
}
