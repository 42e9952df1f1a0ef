package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/example/paperio/internal/config"
	"github.com/example/paperio/internal/geom"
	"github.com/example/paperio/internal/gesture"
	"github.com/example/paperio/internal/layout"
	"github.com/example/paperio/internal/palette"
	"github.com/example/paperio/internal/session"
)

var (
	canvasColor = color.White
	headerColor = color.RGBA{20, 20, 20, 255}
	scoreColor  = color.White
)

type Game struct {
	cfg      config.Config
	log      *slog.Logger
	palette  *palette.Palette
	session  *session.Session
	tracker  gesture.Tracker
	screen   layout.Screen
	swatches []*swatch

	touches  []ebiten.TouchID
	primary  gesture.Primary[ebiten.TouchID]
	lastDown bool
}

func NewGame(cfg config.Config, logger *slog.Logger) (*Game, error) {
	pal, err := cfg.NewPalette()
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:     cfg,
		log:     logger,
		palette: pal,
		session: session.New(session.WithScorer(cfg.Scorer()), session.WithLogger(logger)),
		tracker: gesture.Tracker{StartSlop: cfg.Gesture.StartSlop, Slop: cfg.Gesture.Slop},
	}
	g.setupUI(cfg.Window.Width, cfg.Window.Height)
	return g, nil
}

func (g *Game) setupUI(w, h int) {
	g.screen = layout.Compute(g.palette.Len(), w, h)
	g.swatches = g.swatches[:0]
	for i, r := range g.screen.Swatches {
		g.swatches = append(g.swatches, &swatch{rect: r, index: i})
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.screen.Bounds.Dx() != outsideWidth || g.screen.Bounds.Dy() != outsideHeight {
		g.setupUI(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || !ebiten.IsFocused() {
		if g.tracker.Active() {
			g.log.Debug("drag cancelled", "focused", ebiten.IsFocused())
		}
		g.tracker.Cancel(g)
	}

	s := g.sample()
	if s.Down && !g.lastDown {
		pt := image.Pt(int(s.X), int(s.Y))
		if i := g.screen.SwatchAt(pt); i >= 0 {
			if err := g.palette.Select(i); err != nil {
				g.log.Error("select colour", "err", err)
			} else {
				g.log.Debug("colour selected", "index", i)
			}
		}
		if !g.screen.InCanvas(pt) {
			g.tracker.Suppress()
		}
	}
	g.lastDown = s.Down

	// Strokes live in canvas coordinates.
	s.X -= float64(g.screen.Canvas.Min.X)
	s.Y -= float64(g.screen.Canvas.Min.Y)
	g.tracker.Feed(s, g)
	return nil
}

// sample reads the primary pointer: the tracked touch while any finger is
// down, otherwise the left mouse button.
func (g *Game) sample() gesture.Sample {
	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	if id, ok := g.primary.Pick(g.touches); ok {
		x, y := ebiten.TouchPosition(id)
		return gesture.Sample{Down: true, X: float64(x), Y: float64(y)}
	}
	if len(g.touches) > 0 {
		return gesture.Sample{}
	}

	mx, my := ebiten.CursorPosition()
	return gesture.Sample{
		Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:    float64(mx),
		Y:    float64(my),
	}
}

func (g *Game) DragStart(p geom.Point) { g.session.Start(p) }

func (g *Game) DragUpdate(p geom.Point) { g.session.Append(p) }

func (g *Game) DragEnd() { g.session.End() }

func (g *Game) DragCancel() { g.session.Cancel() }

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()

	screen.Fill(canvasColor)
	if !g.screen.Canvas.Empty() {
		canvas := screen.SubImage(g.screen.Canvas).(*ebiten.Image)
		drawTrace(canvas, g.screen.Canvas.Min, snap, g.palette.Selected(), float32(g.cfg.Stroke.Width))
	}

	header := g.screen.Header()
	vector.DrawFilledRect(screen, float32(header.Min.X), float32(header.Min.Y), float32(header.Dx()), float32(header.Dy()), headerColor, false)
	for _, sw := range g.swatches {
		sw.draw(screen, g.palette.At(sw.index), sw.index == g.palette.SelectedIndex())
	}

	label := fmt.Sprintf("Score: %d", int(snap.Score))
	face := basicfont.Face7x13
	x := g.screen.Score.Min.X + (g.screen.Score.Dx()-text.BoundString(face, label).Dx())/2
	y := g.screen.Score.Min.Y + (g.screen.Score.Dy()+face.Ascent)/2
	text.Draw(screen, label, face, x, y, scoreColor)

	if g.cfg.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f %s %d", ebiten.ActualTPS(), snap.State, len(snap.Points)), 4, g.screen.Score.Min.Y+4)
	}
}
