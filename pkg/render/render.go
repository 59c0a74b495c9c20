package render

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	_ "golang.org/x/image/webp" // emotes are often served as webp

	"github.com/ecbingo/ecbingo/pkg/board"
	"github.com/ecbingo/ecbingo/pkg/errors"
)

// lineSpacing multiplies the font height to get the distance between label lines.
const lineSpacing = 1.1

// Option configures a Renderer.
type Option func(*Renderer)

// WithGrid overrides the cell geometry (default [StandardGrid]).
func WithGrid(g Grid) Option { return func(r *Renderer) { r.grid = g } }

// WithWrapWidth sets the label width in characters (default 10).
func WithWrapWidth(n int) Option { return func(r *Renderer) { r.wrap = n } }

// WithTextColor sets the label color (default black).
func WithTextColor(c color.Color) Option { return func(r *Renderer) { r.ink = c } }

// Renderer composites boards onto a fixed base canvas. It never modifies the
// canvas and is safe for concurrent use; renders are serialized because font
// faces cache glyphs internally.
type Renderer struct {
	mu     sync.Mutex
	canvas image.Image
	face   font.Face
	grid   Grid
	wrap   int
	ink    color.Color
}

// New creates a Renderer drawing on canvas with labels set in face.
func New(canvas image.Image, face font.Face, opts ...Option) *Renderer {
	r := &Renderer{
		canvas: canvas,
		face:   face,
		grid:   StandardGrid(),
		wrap:   DefaultWrapWidth,
		ink:    color.Black,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Grid returns the renderer's cell geometry.
func (r *Renderer) Grid() Grid { return r.grid }

// Render draws b's categories and markers onto a copy of the base canvas.
// An undecodable marker fails with CORRUPT_RECORD naming the cell.
func (r *Renderer) Render(b *board.Board) (image.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dc := gg.NewContextForImage(r.canvas)
	r.drawLabels(dc, b)
	if err := r.drawMarkers(dc, b); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func (r *Renderer) drawLabels(dc *gg.Context, b *board.Board) {
	dc.SetFontFace(r.face)
	dc.SetColor(r.ink)
	step := dc.FontHeight() * lineSpacing

	cats := b.Categories()
	for i, p := range board.Points() {
		a := r.grid.Anchor(p)
		for j, line := range Wrap(cats[i], r.wrap) {
			dc.DrawString(line, float64(a.X), float64(a.Y)+float64(j)*step)
		}
	}
}

func (r *Renderer) drawMarkers(dc *gg.Context, b *board.Board) error {
	box := r.grid.MarkerBox()
	for _, p := range b.Markers() {
		blob, _ := b.Marker(p)
		img, err := DecodeMarker(blob)
		if err != nil {
			return errors.Wrap(errors.ErrCodeCorruptRecord, err, "marker %s", p)
		}
		size := Fit(img.Bounds().Size(), box)
		scaled := imaging.Resize(img, size.X, size.Y, imaging.Lanczos)
		at := r.grid.MarkerOrigin(p)
		dc.DrawImage(scaled, at.X, at.Y)
	}
	return nil
}

// DecodeMarker decodes a marker blob. PNG, JPEG, GIF (first frame), WebP,
// BMP and TIFF are supported.
func DecodeMarker(blob []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(blob))
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Empty() {
		return nil, errors.New(errors.ErrCodeCorruptRecord, "marker image is empty")
	}
	return img, nil
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}
