package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math/rand/v2"
	"testing"

	"github.com/ecbingo/ecbingo/pkg/board"
	"github.com/ecbingo/ecbingo/pkg/errors"
	"github.com/ecbingo/ecbingo/pkg/fonts"
)

func solidPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func whiteCanvas(g Grid) image.Image {
	size := g.CanvasSize()
	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	f, err := fonts.Regular()
	if err != nil {
		t.Fatal(err)
	}
	return New(whiteCanvas(StandardGrid()), fonts.Face(f, fonts.DefaultSize))
}

func newBoard(t *testing.T) *board.Board {
	t.Helper()
	pool := make([]string, 30)
	for i := range pool {
		pool[i] = "Category number " + string(rune('A'+i))
	}
	b, err := board.Create(pool, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func isRed(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r>>8 > 200 && g>>8 < 60 && b>>8 < 60
}

func TestRenderSize(t *testing.T) {
	r := newTestRenderer(t)
	img, err := r.Render(newBoard(t))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got, want := img.Bounds().Size(), StandardGrid().CanvasSize(); got != want {
		t.Errorf("size = %v, want %v", got, want)
	}
}

func TestRenderDrawsLabels(t *testing.T) {
	r := newTestRenderer(t)
	img, err := r.Render(newBoard(t))
	if err != nil {
		t.Fatal(err)
	}

	g := StandardGrid()
	for _, p := range board.Points() {
		a := g.Anchor(p)
		// First label line sits just above the anchor baseline.
		area := image.Rect(a.X, a.Y-fonts.DefaultSize, a.X+g.CellSize()-2*labelInsetX, a.Y+5)
		if !hasInk(img, area) {
			t.Errorf("no label ink near %s", p)
		}
	}

	free := g.Cell(board.FreeSpace)
	if hasInk(img, free) {
		t.Error("free space should not carry a label")
	}
}

func hasInk(img image.Image, area image.Rectangle) bool {
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r>>8 < 128 {
				return true
			}
		}
	}
	return false
}

func TestRenderDrawsMarkers(t *testing.T) {
	r := newTestRenderer(t)
	p := board.MustParsePoint("G2")
	b, err := newBoard(t).Mark(p, solidPNG(t, 64, 32, color.RGBA{255, 0, 0, 255}))
	if err != nil {
		t.Fatal(err)
	}

	img, err := r.Render(b)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	// 64x32 scales to 128x64 at the marker origin.
	at := StandardGrid().MarkerOrigin(p)
	if c := img.At(at.X+64, at.Y+32); !isRed(c) {
		t.Errorf("marker center = %v, want red", c)
	}
	if c := img.At(at.X+64, at.Y+100); isRed(c) {
		t.Errorf("pixel below scaled marker = %v, should not be red", c)
	}

	other := StandardGrid().MarkerOrigin(board.MustParsePoint("G3"))
	if c := img.At(other.X+64, other.Y+32); isRed(c) {
		t.Error("unmarked cell should have no marker")
	}
}

func TestRenderCorruptMarker(t *testing.T) {
	r := newTestRenderer(t)
	b, _ := newBoard(t).Mark(board.MustParsePoint("B1"), []byte("definitely not an image"))

	_, err := r.Render(b)
	if !errors.Is(err, errors.ErrCodeCorruptRecord) {
		t.Errorf("Render() error = %v, want CORRUPT_RECORD", err)
	}
}

func TestRenderLeavesCanvasUntouched(t *testing.T) {
	canvas := whiteCanvas(StandardGrid())
	f, _ := fonts.Regular()
	r := New(canvas, fonts.Face(f, fonts.DefaultSize))
	if _, err := r.Render(newBoard(t)); err != nil {
		t.Fatal(err)
	}
	if hasInk(canvas, canvas.Bounds()) {
		t.Error("Render() drew on the base canvas")
	}
}

func TestStandardCanvas(t *testing.T) {
	f, err := fonts.Regular()
	if err != nil {
		t.Fatal(err)
	}
	g := StandardGrid()
	img := StandardCanvas(g, f)
	if got := img.Bounds().Size(); got != g.CanvasSize() {
		t.Errorf("size = %v, want %v", got, g.CanvasSize())
	}

	// Header band carries the BINGO letters.
	top := g.Cell(board.MustParsePoint("B1")).Min.Y
	if !hasInk(img, image.Rect(0, 0, img.Bounds().Dx(), top-4)) {
		t.Error("header is blank")
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, whiteCanvas(StandardGrid())); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not PNG: %v", err)
	}
	if img.Bounds().Size() != StandardGrid().CanvasSize() {
		t.Error("size changed in encoding")
	}
}

func TestDecodeMarker(t *testing.T) {
	if _, err := DecodeMarker(solidPNG(t, 3, 3, color.Black)); err != nil {
		t.Errorf("DecodeMarker(png) error: %v", err)
	}
	if _, err := DecodeMarker(nil); err == nil {
		t.Error("DecodeMarker(nil) should fail")
	}
}

func TestRenderOptions(t *testing.T) {
	f, err := fonts.Regular()
	if err != nil {
		t.Fatal(err)
	}
	red := color.RGBA{255, 0, 0, 255}
	b := newBoard(t)
	p := board.MustParsePoint("B1")
	a := StandardGrid().Anchor(p)
	firstLine := image.Rect(a.X, a.Y-fonts.DefaultSize, a.X+StandardGrid().CellSize()-2*labelInsetX, a.Y+5)
	secondLine := image.Rect(a.X, a.Y+15, a.X+StandardGrid().CellSize()-2*labelInsetX, a.Y+55)

	wrapped, err := New(whiteCanvas(StandardGrid()), fonts.Face(f, fonts.DefaultSize), WithTextColor(red)).Render(b)
	if err != nil {
		t.Fatal(err)
	}
	if !hasColor(wrapped, firstLine, isRed) {
		t.Error("label not drawn in the configured color")
	}
	if !hasColor(wrapped, secondLine, isRed) {
		t.Error("default width should wrap the B1 label onto a second line")
	}

	wide, err := New(whiteCanvas(StandardGrid()), fonts.Face(f, fonts.DefaultSize), WithWrapWidth(30)).Render(b)
	if err != nil {
		t.Fatal(err)
	}
	if hasInk(wide, secondLine) {
		t.Error("wrap width 30 should keep the B1 label on one line")
	}
}

func hasColor(img image.Image, area image.Rectangle, match func(color.Color) bool) bool {
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if match(img.At(x, y)) {
				return true
			}
		}
	}
	return false
}
