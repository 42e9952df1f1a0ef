// Package gesture turns polled pointer state into drag events.
package gesture

import "github.com/example/paperio/internal/geom"

// DefaultStartSlop is how far a press must travel before it counts as a
// drag rather than a tap.
const DefaultStartSlop = 4

// Sample is the primary pointer's state for one tick.
type Sample struct {
	Down bool
	X, Y float64
}

func (s Sample) Point() geom.Point {
	return geom.Pt(s.X, s.Y)
}

// Handler receives drag events.
type Handler interface {
	DragStart(p geom.Point)
	DragUpdate(p geom.Point)
	DragEnd()
	DragCancel()
}

// Tracker follows a single pointer across ticks.
//
// A press only becomes a drag once the pointer moves more than StartSlop
// away from where it went down; DragStart then reports the press point.
// A press that is released before that emits nothing.
type Tracker struct {
	// StartSlop is the distance a press must travel to start a drag.
	StartSlop float64
	// Slop is how far the pointer must travel from the last reported
	// point before another update is emitted.
	Slop float64

	down    bool
	pending bool
	active  bool
	press   geom.Point
	last    geom.Point
	latest  geom.Point
}

// Active reports whether a drag is in progress.
func (t *Tracker) Active() bool {
	return t.active
}

// Feed advances the tracker by one tick.
func (t *Tracker) Feed(s Sample, h Handler) {
	wasDown := t.down
	t.down = s.Down
	p := s.Point()

	switch {
	case s.Down && !wasDown:
		t.pending = true
		t.press = p
	case s.Down && t.pending:
		if p == t.press || p.Dist(t.press) <= t.StartSlop {
			return
		}
		t.pending = false
		t.active = true
		h.DragStart(t.press)
		t.last, t.latest = p, p
		h.DragUpdate(p)
	case s.Down && t.active:
		t.latest = p
		if p == t.last || p.Dist(t.last) < t.Slop {
			return
		}
		t.last = p
		h.DragUpdate(p)
	case !s.Down && wasDown:
		t.pending = false
		if !t.active {
			return
		}
		t.active = false
		if t.latest != t.last {
			t.last = t.latest
			h.DragUpdate(t.latest)
		}
		h.DragEnd()
	}
}

// Cancel aborts the active drag, or forgets a press that has not become
// one yet. Further samples are ignored until the pointer is lifted.
func (t *Tracker) Cancel(h Handler) {
	t.pending = false
	if !t.active {
		return
	}
	t.active = false
	h.DragCancel()
}

// Suppress marks the current press as consumed so that it never starts a
// drag, e.g. when it landed on a control.
func (t *Tracker) Suppress() {
	t.down = true
	t.pending = false
}
