package aspen

// ButtonHandlers holds the optional per-button gesture callbacks. Each slot is
// independently nil; a nil slot means that gesture kind produces no message
// for the button.
type ButtonHandlers[M any] struct {
	Click        func(ClickContext) M
	DoubleClick  func(ClickContext) M
	ClickAndHold func(ClickContext) M
	DragStart    func(DragContext) M
	Drag         func(DragContext) M
	DragEnd      func(DragContext) M
	PointerDown  func(PointerContext) M
	PointerUp    func(PointerContext) M
}

// Registry maps classified gestures to caller messages. It has value
// semantics: every On* call returns a new Registry and never mutates its
// receiver, so registries can be composed before being attached to an engine.
// Attaching replaces the previous registry wholesale; unspecified slots fall
// back to "no handler".
type Registry[M any] struct {
	buttons map[MouseButton]ButtonHandlers[M]
	wheel   func(WheelContext) M
	pinch   func(PinchContext) M
	move    func(MoveContext) M
}

// NewRegistry returns an empty registry.
func NewRegistry[M any]() Registry[M] {
	return Registry[M]{}
}

// clone copies the registry and its button map so the receiver stays
// untouched.
func (r Registry[M]) clone() Registry[M] {
	buttons := make(map[MouseButton]ButtonHandlers[M], len(r.buttons)+1)
	for b, h := range r.buttons {
		buttons[b] = h
	}
	r.buttons = buttons
	return r
}

func (r Registry[M]) withButton(b MouseButton, mod func(*ButtonHandlers[M])) Registry[M] {
	out := r.clone()
	h := out.buttons[b]
	mod(&h)
	out.buttons[b] = h
	return out
}

// OnClick registers a single-click handler for the button.
func (r Registry[M]) OnClick(b MouseButton, h func(ClickContext) M) Registry[M] {
	return r.withButton(b, func(bh *ButtonHandlers[M]) { bh.Click = h })
}

// OnDoubleClick registers a double-click handler for the button.
func (r Registry[M]) OnDoubleClick(b MouseButton, h func(ClickContext) M) Registry[M] {
	return r.withButton(b, func(bh *ButtonHandlers[M]) { bh.DoubleClick = h })
}

// OnClickAndHold registers a click-and-hold handler for the button, fired on
// release of a non-dragging contact held longer than the configured hold time.
func (r Registry[M]) OnClickAndHold(b MouseButton, h func(ClickContext) M) Registry[M] {
	return r.withButton(b, func(bh *ButtonHandlers[M]) { bh.ClickAndHold = h })
}

// OnDrag registers drag and drag-end handlers for the button. Either handler
// may be nil.
func (r Registry[M]) OnDrag(b MouseButton, drag, dragEnd func(DragContext) M) Registry[M] {
	return r.withButton(b, func(bh *ButtonHandlers[M]) {
		bh.Drag = drag
		bh.DragEnd = dragEnd
	})
}

// OnDragStart registers a drag-start handler for the button, fired once when
// a contact crosses the drag threshold.
func (r Registry[M]) OnDragStart(b MouseButton, h func(DragContext) M) Registry[M] {
	return r.withButton(b, func(bh *ButtonHandlers[M]) { bh.DragStart = h })
}

// OnPointerDown registers a raw pointer-down handler for the button.
func (r Registry[M]) OnPointerDown(b MouseButton, h func(PointerContext) M) Registry[M] {
	return r.withButton(b, func(bh *ButtonHandlers[M]) { bh.PointerDown = h })
}

// OnPointerUp registers a raw pointer-up handler for the button, fired on
// release of a non-dragging contact.
func (r Registry[M]) OnPointerUp(b MouseButton, h func(PointerContext) M) Registry[M] {
	return r.withButton(b, func(bh *ButtonHandlers[M]) { bh.PointerUp = h })
}

// OnWheel registers the engine-wide wheel-zoom handler.
func (r Registry[M]) OnWheel(h func(WheelContext) M) Registry[M] {
	out := r.clone()
	out.wheel = h
	return out
}

// OnPinch registers the engine-wide pinch handler.
func (r Registry[M]) OnPinch(h func(PinchContext) M) Registry[M] {
	out := r.clone()
	out.pinch = h
	return out
}

// OnMove registers the engine-wide hover-move handler.
func (r Registry[M]) OnMove(h func(MoveContext) M) Registry[M] {
	out := r.clone()
	out.move = h
	return out
}

// dispatch maps one gesture to a caller message via the matching slot.
// Gestures with no registered slot are dropped; that is normal, not an error.
func (r Registry[M]) dispatch(g Gesture) (msg M, ok bool) {
	switch g.Kind {
	case GestureClick:
		if h := r.buttons[g.Click.Button].Click; h != nil {
			return h(g.Click), true
		}
	case GestureDoubleClick:
		if h := r.buttons[g.Click.Button].DoubleClick; h != nil {
			return h(g.Click), true
		}
	case GestureClickAndHold:
		if h := r.buttons[g.Click.Button].ClickAndHold; h != nil {
			return h(g.Click), true
		}
	case GestureDragStart:
		if h := r.buttons[g.Drag.Button].DragStart; h != nil {
			return h(g.Drag), true
		}
	case GestureDrag:
		if h := r.buttons[g.Drag.Button].Drag; h != nil {
			return h(g.Drag), true
		}
	case GestureDragEnd:
		if h := r.buttons[g.Drag.Button].DragEnd; h != nil {
			return h(g.Drag), true
		}
	case GesturePointerDown:
		if h := r.buttons[g.Pointer.Button].PointerDown; h != nil {
			return h(g.Pointer), true
		}
	case GesturePointerUp:
		if h := r.buttons[g.Pointer.Button].PointerUp; h != nil {
			return h(g.Pointer), true
		}
	case GestureWheel:
		if r.wheel != nil {
			return r.wheel(g.Wheel), true
		}
	case GesturePinch:
		if r.pinch != nil {
			return r.pinch(g.Pinch), true
		}
	case GestureMove:
		if r.move != nil {
			return r.move(g.Move), true
		}
	}
	var zero M
	return zero, false
}
