package render

import (
	"image"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/ecbingo/ecbingo/pkg/board"
)

func TestAnchor(t *testing.T) {
	g := StandardGrid()
	tests := []struct {
		point string
		want  image.Point
	}{
		{"B1", image.Pt(284, 327)},
		{"B5", image.Pt(284, 1387)},
		{"I2", image.Pt(548, 592)},
		{"N4", image.Pt(813, 1121)},
		{"G3", image.Pt(1078, 857)},
		{"O5", image.Pt(1342, 1387)},
	}
	for _, tt := range tests {
		t.Run(tt.point, func(t *testing.T) {
			if got := g.Anchor(board.MustParsePoint(tt.point)); got != tt.want {
				t.Errorf("Anchor(%s) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestAnchorInjective(t *testing.T) {
	g := StandardGrid()
	seen := map[image.Point]board.Point{}
	for _, p := range board.Points() {
		a := g.Anchor(p)
		if prev, ok := seen[a]; ok {
			t.Errorf("%s and %s share anchor %v", prev, p, a)
		}
		seen[a] = p
	}
}

func TestMarkerOrigin(t *testing.T) {
	g := StandardGrid()
	p := board.MustParsePoint("B4")
	a := g.Anchor(p)
	if got, want := g.MarkerOrigin(p), image.Pt(a.X+128-65, a.Y+25); got != want {
		t.Errorf("MarkerOrigin(B4) = %v, want %v", got, want)
	}
	if got := g.MarkerBox(); got != image.Pt(128, 128) {
		t.Errorf("MarkerBox() = %v, want (128,128)", got)
	}
}

func TestCellsInsideCanvas(t *testing.T) {
	g := StandardGrid()
	bounds := image.Rectangle{Max: g.CanvasSize()}
	var cells []image.Rectangle
	for _, p := range append(board.Points(), board.FreeSpace) {
		c := g.Cell(p)
		if !c.In(bounds) {
			t.Errorf("cell %s %v outside canvas %v", p, c, bounds)
		}
		m := image.Rectangle{Min: g.MarkerOrigin(p), Max: g.MarkerOrigin(p).Add(g.MarkerBox())}
		if !m.In(c) {
			t.Errorf("marker box %v of %s leaves its cell %v", m, p, c)
		}
		for _, other := range cells {
			if c.Overlaps(other) {
				t.Errorf("cell %s overlaps %v", p, other)
			}
		}
		cells = append(cells, c)
	}
}

func TestFit(t *testing.T) {
	box := image.Pt(128, 128)
	tests := []struct {
		src, want image.Point
	}{
		{image.Pt(256, 256), image.Pt(128, 128)},
		{image.Pt(64, 32), image.Pt(128, 64)},
		{image.Pt(32, 64), image.Pt(64, 128)},
		{image.Pt(1000, 10), image.Pt(128, 1)},
		{image.Pt(10, 3000), image.Pt(1, 128)},
		{image.Pt(0, 10), image.Point{}},
	}
	for _, tt := range tests {
		if got := Fit(tt.src, box); got != tt.want {
			t.Errorf("Fit(%v) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestFitBounds(t *testing.T) {
	box := image.Pt(128, 128)
	for w := 1; w <= 600; w += 7 {
		for h := 1; h <= 600; h += 11 {
			got := Fit(image.Pt(w, h), box)
			if got.X > box.X || got.Y > box.Y || got.X < 1 || got.Y < 1 {
				t.Fatalf("Fit(%dx%d) = %v escapes %v", w, h, got, box)
			}
			if got.X != box.X && got.Y != box.Y {
				t.Fatalf("Fit(%dx%d) = %v touches neither edge", w, h, got)
			}
			// Rounding moves each side by at most half a pixel.
			s := math.Min(128/float64(w), 128/float64(h))
			if math.Abs(float64(got.X)-float64(w)*s) > 0.5+1e-9 && got.X != 1 {
				t.Fatalf("Fit(%dx%d) width %d off from %.2f", w, h, got.X, float64(w)*s)
			}
			if math.Abs(float64(got.Y)-float64(h)*s) > 0.5+1e-9 && got.Y != 1 {
				t.Fatalf("Fit(%dx%d) height %d off from %.2f", w, h, got.Y, float64(h)*s)
			}
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []string{
		"An emote with a hat",
		"A frog emote",
		"Supercalifragilistic emote",
		"short",
		"  padded   words  here ",
	}
	for _, in := range tests {
		lines := Wrap(in, DefaultWrapWidth)
		if len(lines) == 0 {
			t.Errorf("Wrap(%q) returned no lines", in)
		}
		for _, l := range lines {
			if n := len([]rune(l)); n > DefaultWrapWidth {
				t.Errorf("Wrap(%q) line %q has %d chars", in, l, n)
			}
		}
		got := strings.Join(strings.Fields(strings.Join(lines, "")), "")
		want := strings.Join(strings.Fields(in), "")
		if got != want {
			t.Errorf("Wrap(%q) lost text: %q", in, got)
		}
	}

	exact := []struct {
		in   string
		want []string
	}{
		{"絵文字絵文字絵文字絵文字", []string{"絵文字絵文字絵文字絵", "文字"}},
		{"A black-and-white emote", []string{"A black-", "and-white", "emote"}},
		{"Supercalifragilistic emote", []string{"Supercalif", "ragilistic", "emote"}},
		{"An emote with a hat", []string{"An emote", "with a hat"}},
		{"\x1b[31mRed\x1b[0m emote", []string{"Red emote"}},
		{"tab\tseparated", []string{"tab", "separated"}},
	}
	for _, tt := range exact {
		if got := Wrap(tt.in, DefaultWrapWidth); !slices.Equal(got, tt.want) {
			t.Errorf("Wrap(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if got := Wrap("short", 10); len(got) != 1 || got[0] != "short" {
		t.Errorf("Wrap(short) = %q", got)
	}
	if got := Wrap("", 10); len(got) != 0 {
		t.Errorf("Wrap(\"\") = %q, want none", got)
	}
}
