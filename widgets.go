package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/example/paperio/internal/geom"
	"github.com/example/paperio/internal/session"
)

var (
	selectedBorder = color.White
	swatchBorder   = color.RGBA{211, 211, 211, 255}
)

type swatch struct {
	rect  image.Rectangle
	index int
}

func (s *swatch) draw(dst *ebiten.Image, clr color.Color, selected bool) {
	cx := float32(s.rect.Min.X) + float32(s.rect.Dx())/2
	cy := float32(s.rect.Min.Y) + float32(s.rect.Dy())/2
	r := float32(s.rect.Dx()) / 2
	vector.DrawFilledCircle(dst, cx, cy, r, clr, true)

	border, width := color.Color(swatchBorder), float32(2)
	if selected {
		border, width = selectedBorder, 4
	}
	vector.StrokeCircle(dst, cx, cy, r-width/2, width, border, true)
}

var whiteImage *ebiten.Image

// whiteSubImage is a 1x1 white source for DrawTriangles. The outer pixels of
// whiteImage keep edges from bleeding when sampling.
func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// drawTrace draws the stroke offset by origin: filled once closed, as an
// outline while it is still being traced.
func drawTrace(dst *ebiten.Image, origin image.Point, snap session.Snapshot, clr color.Color, width float32) {
	if len(snap.Points) < 2 {
		return
	}
	path := tracePath(snap.Points, origin, snap.Closed)

	var (
		vs []ebiten.Vertex
		is []uint16
	)
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	if snap.Closed {
		vs, is = path.AppendVerticesAndIndicesForFilling(nil, nil)
		op.FillRule = ebiten.EvenOdd
	} else {
		vs, is = path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
			Width:    width,
			LineJoin: vector.LineJoinRound,
			LineCap:  vector.LineCapRound,
		})
	}
	tint(vs, clr)
	dst.DrawTriangles(vs, is, whiteSubImage(), op)
}

func tracePath(points []geom.Point, origin image.Point, closed bool) *vector.Path {
	o := geom.Pt(float64(origin.X), float64(origin.Y))
	path := &vector.Path{}
	start := points[0].Add(o)
	path.MoveTo(float32(start.X), float32(start.Y))
	for _, p := range points[1:] {
		p = p.Add(o)
		path.LineTo(float32(p.X), float32(p.Y))
	}
	if closed {
		path.Close()
	}
	return path
}

func tint(vs []ebiten.Vertex, clr color.Color) {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	r, g, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
}
