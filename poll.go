package aspen

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch
	// wheelNotchPx converts one ebiten wheel notch into pixel-mode delta
	// units, so a notch normalizes to exactly one zoom step.
	wheelNotchPx = 50.0
)

// pollPointer is the previous-frame state of one polled pointer slot.
type pollPointer struct {
	down   bool
	pos    Vec2
	start  Vec2
	button MouseButton
}

// PollSource converts ebiten's polled mouse and touch state into normalized
// events: the element-scoped attachment mode. Call Poll once per frame from
// Update and feed the returned events to an Engine or Scene.
//
// Ebiten has no native click repeat counting, so click events are synthesized
// on release with a time-windowed repeat count (the double-click window from
// Config). Platform-delivered click events are authoritative where they
// exist; this fallback applies only to polled sources.
type PollSource struct {
	bind   func(Vec2) any
	now    func() time.Time
	window time.Duration
	slopPx float64

	pointers     [maxPointers]pollPointer
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	lastClickAt     time.Time
	lastClickPos    Vec2
	lastClickButton MouseButton
	clickTimes      int
}

// NewPollSource creates a poll source. bind maps a screen position to a
// bound value (typically Scene.Bind) and may be nil.
func NewPollSource(cfg Config, bind func(Vec2) any) *PollSource {
	return &PollSource{
		bind:   bind,
		now:    time.Now,
		window: time.Duration(cfg.DoubleClickWindowMs) * time.Millisecond,
		slopPx: cfg.DragThresholdPx,
	}
}

// SetNowFunc overrides the clock used for click repeat counting.
func (p *PollSource) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		p.now = fn
	}
}

// Poll reads this frame's input state and appends the resulting events to
// buf.
func (p *PollSource) Poll(buf []Event) []Event {
	buf = p.pollMouse(buf)
	buf = p.pollTouches(buf)
	return buf
}

func (p *PollSource) bound(pos Vec2) any {
	if p.bind == nil {
		return nil
	}
	return p.bind(pos)
}

// pollMouse handles mouse input (pointer 0).
func (p *PollSource) pollMouse(buf []Event) []Event {
	mx, my := ebiten.CursorPosition()
	pos := Vec2{float64(mx), float64(my)}

	// Detect which button is pressed. If the pointer is already down, keep
	// the stored button to avoid changing mid-interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = ButtonLeft
		} else if right {
			button = ButtonRight
		} else {
			button = ButtonMiddle
		}
	}

	buf = p.syncPointer(buf, 0, pos, pressed, button)

	if _, yoff := ebiten.Wheel(); yoff != 0 {
		buf = append(buf, Event{
			Kind:       EventWheel,
			Pos:        pos,
			WheelDelta: -yoff * wheelNotchPx,
			WheelMode:  WheelPixel,
		})
	}
	return buf
}

// pollTouches handles touch input (pointers 1-9).
func (p *PollSource) pollTouches(buf []Event) []Event {
	touchIDs := ebiten.AppendTouchIDs(p.prevTouchIDs[:0])
	p.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := p.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		pos := Vec2{float64(tx), float64(ty)}
		buf = p.syncPointer(buf, slot, pos, true, ButtonLeft)
	}

	// Release any touch slots that disappeared this frame.
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && !activeSlots[i] {
			buf = p.syncPointer(buf, i, p.pointers[i].pos, false, ButtonLeft)
			p.touchUsed[i] = false
			p.touchMap[i] = 0
		}
	}
	return buf
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (p *PollSource) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && p.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !p.touchUsed[i] {
			p.touchUsed[i] = true
			p.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// syncPointer diffs one pointer slot against its previous state and emits
// the matching events.
func (p *PollSource) syncPointer(buf []Event, slot int, pos Vec2, pressed bool, button MouseButton) []Event {
	ps := &p.pointers[slot]
	id := PointerID(slot)

	if pos != ps.pos {
		buf = append(buf, Event{
			Kind:    EventPointerMove,
			Pointer: id,
			Button:  ps.button,
			Pos:     pos,
			Bound:   p.bound(pos),
		})
		ps.pos = pos
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.start = pos
		buf = append(buf, Event{
			Kind:    EventPointerDown,
			Pointer: id,
			Button:  button,
			Pos:     pos,
			Bound:   p.bound(pos),
		})
	case !pressed && ps.down:
		ps.down = false
		buf = append(buf, Event{
			Kind:    EventPointerUp,
			Pointer: id,
			Button:  ps.button,
			Pos:     pos,
			Bound:   p.bound(pos),
		})
		// A press that stayed within the tap slop counts as a click.
		if pos.Dist(ps.start) <= p.slopPx {
			buf = append(buf, Event{
				Kind:    EventClick,
				Pointer: id,
				Button:  ps.button,
				Pos:     pos,
				Bound:   p.bound(pos),
				Times:   p.repeatCount(ps.button, pos),
			})
		}
	}
	return buf
}

// repeatCount maintains the synthesized click repeat counter: consecutive
// taps of the same button, close in time and space, count up; anything else
// resets to 1.
func (p *PollSource) repeatCount(button MouseButton, pos Vec2) int {
	at := p.now()
	sameRun := button == p.lastClickButton &&
		!p.lastClickAt.IsZero() &&
		at.Sub(p.lastClickAt) <= p.window &&
		pos.Dist(p.lastClickPos) <= p.slopPx
	if sameRun {
		p.clickTimes++
	} else {
		p.clickTimes = 1
	}
	p.lastClickAt = at
	p.lastClickPos = pos
	p.lastClickButton = button
	return p.clickTimes
}
