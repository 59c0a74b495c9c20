package render

import (
	"image"
	"math"
)

// Fit scales src uniformly so it fits inside box, preserving its aspect
// ratio. The factor is min(box.X/src.X, box.Y/src.Y) and both sides are
// rounded to the nearest pixel, never below one. A degenerate src yields
// the zero point.
func Fit(src, box image.Point) image.Point {
	if src.X <= 0 || src.Y <= 0 || box.X <= 0 || box.Y <= 0 {
		return image.Point{}
	}
	s := min(float64(box.X)/float64(src.X), float64(box.Y)/float64(src.Y))
	w := min(box.X, max(1, int(math.Round(float64(src.X)*s))))
	h := min(box.Y, max(1, int(math.Round(float64(src.Y)*s))))
	return image.Pt(w, h)
}
