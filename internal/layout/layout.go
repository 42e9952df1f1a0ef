// Package layout positions the swatch bar, score line and drawing canvas
// on a screen of a given size.
package layout

import "image"

const (
	SwatchSize  = 40
	BarPadding  = 8
	ScoreHeight = 40
)

// Screen holds the regions of one frame.
type Screen struct {
	Bounds   image.Rectangle
	Swatches []image.Rectangle
	Score    image.Rectangle
	Canvas   image.Rectangle
}

// Compute lays out n swatches spaced evenly across the top of a w×h screen,
// the score line below them and the canvas filling the rest.
func Compute(n, w, h int) Screen {
	bounds := image.Rect(0, 0, w, h)
	barH := SwatchSize + 2*BarPadding
	s := Screen{
		Bounds:   bounds,
		Swatches: make([]image.Rectangle, n),
		Score:    image.Rect(0, barH, w, barH+ScoreHeight).Intersect(bounds),
		Canvas:   image.Rect(0, barH+ScoreHeight, w, h).Intersect(bounds),
	}
	if n == 0 {
		return s
	}

	avail := w - 2*BarPadding
	size := SwatchSize
	if n*size > avail {
		size = max(avail/n, 1)
	}
	gap := max((avail-n*size)/(n+1), 0)
	for i := range s.Swatches {
		x := BarPadding + gap*(i+1) + size*i
		y := BarPadding + (SwatchSize-size)/2
		s.Swatches[i] = image.Rect(x, y, x+size, y+size)
	}
	return s
}

// Header is everything above the canvas.
func (s Screen) Header() image.Rectangle {
	return image.Rect(s.Bounds.Min.X, s.Bounds.Min.Y, s.Bounds.Max.X, s.Canvas.Min.Y)
}

// SwatchAt returns the index of the swatch under p, or -1.
func (s Screen) SwatchAt(p image.Point) int {
	for i, r := range s.Swatches {
		if p.In(r) {
			return i
		}
	}
	return -1
}

func (s Screen) InCanvas(p image.Point) bool {
	return p.In(s.Canvas)
}
