// Package render draws a bingo board onto its base canvas.
//
// # Overview
//
// Rendering is a fixed three-step composition:
//
//   - the base canvas (a PNG asset or the synthesized [StandardCanvas])
//   - every category label, word-wrapped at 10 characters and printed at its
//     cell anchor in column-major order
//   - every marker image, scaled to fit half a cell and composited over the
//     canvas near the cell's right side
//
// Cell positions come from a [Grid], an immutable table of five column and
// five row offsets. [StandardGrid] is the geometry of the stock board.
//
//	r := render.New(canvas, face)
//	img, err := r.Render(b)
//	err = render.EncodePNG(w, img)
//
// A marker that cannot be decoded fails the whole render with CORRUPT_RECORD;
// markers are never skipped silently.
package render
