// Package geom turns a traced stroke into an area and a display score.
package geom

import "math"

// DefaultDivisor keeps displayed scores in a readable range for
// screen-pixel areas.
const DefaultDivisor = 1000

type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// SignedArea treats points as a closed polygon and returns its shoelace
// area. The sign follows the winding: positive for counter-clockwise in a
// y-up frame, which is clockwise on screen.
func SignedArea(points []Point) float64 {
	n := len(points)
	if n < 2 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Area is the unsigned area of the closed polygon described by points.
// Fewer than three points enclose nothing and yield 0.
func Area(points []Point) float64 {
	return math.Abs(SignedArea(points))
}

// Scorer rescales raw areas into display scores.
type Scorer struct {
	Divisor float64
}

func (s Scorer) divisor() float64 {
	if s.Divisor <= 0 {
		return DefaultDivisor
	}
	return s.Divisor
}

// Score converts an area into a score. It is linear in area, so it never
// decreases as the area grows and maps 0 to 0.
func (s Scorer) Score(area float64) float64 {
	return area / s.divisor()
}

// ScoreFromArea scores an area with DefaultDivisor.
func ScoreFromArea(area float64) float64 {
	return Scorer{}.Score(area)
}
