// Package session holds the state of the current trace: the stroke being
// drawn, whether it has been closed into a polygon, and the latest score.
//
// A Session is driven by drag events and read by the renderer each frame.
// It is not safe for concurrent use.
package session

import (
	"context"
	"log/slog"

	"github.com/example/paperio/internal/geom"
)

type State int

const (
	Idle State = iota
	Tracing
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Tracing:
		return "tracing"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// minClosedPoints is the smallest stroke that gets closed and scored.
const minClosedPoints = 3

// Result describes a trace that was closed and scored.
type Result struct {
	Points int
	Area   float64
	Score  float64
}

// Snapshot is a copy of the session state for rendering.
type Snapshot struct {
	Points []geom.Point
	Closed bool
	Score  float64
	State  State
}

type Session struct {
	points []geom.Point
	closed bool
	score  float64
	state  State

	scorer geom.Scorer
	log    *slog.Logger
}

type Option func(*Session)

func WithScorer(s geom.Scorer) Option {
	return func(ss *Session) { ss.scorer = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(ss *Session) {
		if l != nil {
			ss.log = l
		}
	}
}

func New(opts ...Option) *Session {
	s := &Session{
		log: slog.New(discardHandler{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a new trace at p, discarding whatever stroke came before.
// The previous score stays until another trace is closed.
func (s *Session) Start(p geom.Point) {
	s.points = append(s.points[:0], p)
	s.closed = false
	s.state = Tracing
	s.log.Debug("trace started", "x", p.X, "y", p.Y)
}

// Append adds p to the trace. It reports false when no trace is active.
func (s *Session) Append(p geom.Point) bool {
	if s.state != Tracing {
		return false
	}
	s.points = append(s.points, p)
	return true
}

// End finishes the active trace. Strokes of three or more points are closed
// and scored; shorter ones are left open and the score is not touched.
func (s *Session) End() (Result, bool) {
	if s.state != Tracing {
		return Result{}, false
	}
	if len(s.points) < minClosedPoints {
		s.state = Idle
		s.log.Debug("trace too short to close", "points", len(s.points))
		return Result{}, false
	}
	area := geom.Area(s.points)
	s.score = s.scorer.Score(area)
	s.closed = true
	s.state = Closed
	res := Result{Points: len(s.points), Area: area, Score: s.score}
	s.log.Info("trace closed", "points", res.Points, "area", res.Area, "score", res.Score)
	return res, true
}

// Cancel drops the active trace without scoring it. It reports false when
// no trace is active.
func (s *Session) Cancel() bool {
	if s.state != Tracing {
		return false
	}
	s.log.Debug("trace cancelled", "points", len(s.points))
	s.points = s.points[:0]
	s.closed = false
	s.state = Idle
	return true
}

func (s *Session) State() State   { return s.state }
func (s *Session) Closed() bool   { return s.closed }
func (s *Session) Score() float64 { return s.score }
func (s *Session) Len() int       { return len(s.points) }

func (s *Session) Snapshot() Snapshot {
	pts := make([]geom.Point, len(s.points))
	copy(pts, s.points)
	return Snapshot{
		Points: pts,
		Closed: s.closed,
		Score:  s.score,
		State:  s.state,
	}
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
