package aspen

import (
	"math"
	"time"
)

// classifier turns normalized events plus tracker state into zero or more
// gesture decisions. It never calls handlers; dispatch is the registry's job.
type classifier struct {
	cfg   Config
	track tracker
	now   func() time.Time
	trace tracefn
}

func newClassifier(cfg Config) classifier {
	return classifier{
		cfg:   cfg,
		track: newTracker(),
		now:   time.Now,
	}
}

// handle applies one event to the tracker and returns the resulting gestures.
func (c *classifier) handle(ev Event) []Gesture {
	switch ev.Kind {
	case EventPointerDown:
		return c.onDown(ev)
	case EventPointerUp:
		return c.onUp(ev)
	case EventPointerMove:
		return c.onMove(ev, false)
	case EventPointerLeave:
		return c.onMove(ev, true)
	case EventPointerCancel:
		// In-flight drags and pinches are abandoned without end events.
		c.track.cancelAll()
		return nil
	case EventClick:
		return c.onClick(ev)
	case EventWheel:
		return c.onWheel(ev)
	}
	return nil
}

func (c *classifier) onDown(ev Event) []Gesture {
	c.track.down(ev.Pointer, ev.Pos, ev.Button, ev.Bound, c.now())
	return []Gesture{{
		Kind: GesturePointerDown,
		Pointer: PointerContext{
			Pointer: ev.Pointer,
			Pos:     ev.Pos,
			Button:  ev.Button,
			Bound:   ev.Bound,
		},
	}}
}

func (c *classifier) onUp(ev Event) []Gesture {
	ps, ok := c.track.get(ev.Pointer)
	if !ok {
		// Stray up after an implicit loss of the contact.
		return nil
	}

	var out []Gesture
	if ps.dragging {
		out = append(out, Gesture{
			Kind: GestureDragEnd,
			Drag: DragContext{
				Pointer: ev.Pointer,
				Pos:     ev.Pos,
				Start:   ps.start,
				Delta:   ev.Pos.Sub(ps.last),
				Button:  ps.button,
				Bound:   ps.bound,
			},
		})
	} else {
		if held := c.now().Sub(ps.downAt); held >= time.Duration(c.cfg.HoldTimeMs)*time.Millisecond {
			c.trace.printf("pointer %d held %v before release, click-and-hold", ev.Pointer, held)
			out = append(out, Gesture{
				Kind: GestureClickAndHold,
				Click: ClickContext{
					Pos:    ev.Pos,
					Button: ps.button,
					Bound:  ps.bound,
					Times:  1,
				},
			})
		}
		out = append(out, Gesture{
			Kind: GesturePointerUp,
			Pointer: PointerContext{
				Pointer: ev.Pointer,
				Pos:     ev.Pos,
				Button:  ps.button,
				Bound:   ps.bound,
			},
		})
	}

	c.track.up(ev.Pointer)
	return out
}

func (c *classifier) onMove(ev Event, leave bool) []Gesture {
	ps, ok := c.track.get(ev.Pointer)
	if !ok {
		// No contact down for this id: a pure hover move.
		if leave {
			return nil
		}
		return []Gesture{{
			Kind: GestureMove,
			Move: MoveContext{Pos: ev.Pos, Bound: ev.Bound},
		}}
	}

	// Pinch and single-contact drag are mutually exclusive per event.
	if c.track.arity == TwoContact {
		return c.pinchStep(ev.Pointer, ps, ev.Pos)
	}

	delta := ev.Pos.Sub(ps.last)
	var out []Gesture
	if !ps.dragging {
		dist := ev.Pos.Dist(ps.start)
		if dist > c.cfg.DragThresholdPx || leave {
			ps.dragging = true
			c.trace.printf("pointer %d promoted to drag (moved %.1fpx, threshold %.1fpx, leave=%v)",
				ev.Pointer, dist, c.cfg.DragThresholdPx, leave)
			out = append(out,
				Gesture{
					Kind: GestureDragStart,
					Drag: DragContext{
						Pointer: ev.Pointer,
						Pos:     ev.Pos,
						Start:   ps.start,
						Delta:   ev.Pos.Sub(ps.start),
						Button:  ps.button,
						Bound:   ps.bound,
						IsFirst: true,
					},
				},
				Gesture{
					Kind: GestureDrag,
					Drag: DragContext{
						Pointer: ev.Pointer,
						Pos:     ev.Pos,
						Start:   ps.start,
						Delta:   delta,
						Button:  ps.button,
						Bound:   ps.bound,
						IsFirst: true,
					},
				})
		} else {
			c.trace.printf("pointer %d within drag threshold (%.1fpx <= %.1fpx), still a click candidate",
				ev.Pointer, dist, c.cfg.DragThresholdPx)
		}
	} else {
		out = append(out, Gesture{
			Kind: GestureDrag,
			Drag: DragContext{
				Pointer: ev.Pointer,
				Pos:     ev.Pos,
				Start:   ps.start,
				Delta:   delta,
				Button:  ps.button,
				Bound:   ps.bound,
			},
		})
	}
	ps.last = ev.Pos
	return out
}

// pinchStep computes one pinch decision from a move of either contact.
// prevDistance uses both contacts' previous last-known positions;
// currentDistance pairs the moved contact's new position with the other
// contact's last-known position.
func (c *classifier) pinchStep(id PointerID, ps *pointerState, pos Vec2) []Gesture {
	_, other, ok := c.track.other(id)
	if !ok {
		// Arity said two contacts but the pair lookup disagreed; emit nothing.
		ps.last = pos
		return nil
	}

	prev := ps.last.Dist(other.last)
	cur := pos.Dist(other.last)
	ps.last = pos
	if prev == 0 {
		return nil
	}

	return []Gesture{{
		Kind: GesturePinch,
		Pinch: PinchContext{
			Midpoint: Midpoint(pos, other.last),
			Scale:    cur / prev,
		},
	}}
}

func (c *classifier) onClick(ev Event) []Gesture {
	ctx := ClickContext{
		Pos:    ev.Pos,
		Button: ev.Button,
		Bound:  ev.Bound,
		Times:  ev.Times,
	}
	// The platform's repeat count is authoritative; no internal timing window.
	switch ev.Times {
	case 1:
		return []Gesture{{Kind: GestureClick, Click: ctx}}
	case 2:
		return []Gesture{{Kind: GestureDoubleClick, Click: ctx}}
	default:
		return nil
	}
}

func (c *classifier) onWheel(ev Event) []Gesture {
	steps := wheelSteps(ev.WheelDelta, ev.WheelMode)
	if steps == 0 {
		return nil
	}
	return []Gesture{{
		Kind: GestureWheel,
		Wheel: WheelContext{
			Pos:   ev.Pos,
			Steps: steps,
			Scale: math.Pow(c.cfg.WheelZoomStep, -steps),
		},
	}}
}

// wheelSteps normalizes a wheel delta to a step count clamped to [-1, 1], so
// one wheel notch is one multiplicative zoom step regardless of the
// platform's delta units.
func wheelSteps(delta float64, mode WheelMode) float64 {
	var unit float64
	switch mode {
	case WheelLine:
		unit = 1.0 / 3.0
	case WheelPage:
		unit = 1.0
	default: // WheelPixel and anything unrecognized
		unit = 1.0 / 50.0
	}
	return math.Max(-1, math.Min(1, delta*unit))
}
