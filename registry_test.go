package aspen

import "testing"

func TestRegistryValueSemantics(t *testing.T) {
	base := NewRegistry[string]()
	derived := base.OnClick(ButtonLeft, func(ClickContext) string { return "click" })

	g := Gesture{Kind: GestureClick, Click: ClickContext{Button: ButtonLeft}}

	if _, ok := base.dispatch(g); ok {
		t.Error("base registry gained a handler from a derived registry")
	}
	if msg, ok := derived.dispatch(g); !ok || msg != "click" {
		t.Errorf("derived dispatch = %q, %v", msg, ok)
	}
}

func TestRegistryReRegistrationReplaces(t *testing.T) {
	r := NewRegistry[string]().
		OnClick(ButtonLeft, func(ClickContext) string { return "first" }).
		OnClick(ButtonLeft, func(ClickContext) string { return "second" })

	msg, ok := r.dispatch(Gesture{Kind: GestureClick, Click: ClickContext{Button: ButtonLeft}})
	if !ok || msg != "second" {
		t.Errorf("dispatch = %q, %v, want the later registration", msg, ok)
	}
}

func TestRegistryPerButtonIndependence(t *testing.T) {
	r := NewRegistry[string]().
		OnClick(ButtonLeft, func(ClickContext) string { return "left" }).
		OnClick(ButtonRight, func(ClickContext) string { return "right" })

	tests := []struct {
		name   string
		button MouseButton
		want   string
		wantOK bool
	}{
		{"left", ButtonLeft, "left", true},
		{"right", ButtonRight, "right", true},
		{"middle unbound", ButtonMiddle, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := r.dispatch(Gesture{Kind: GestureClick, Click: ClickContext{Button: tt.button}})
			if ok != tt.wantOK || msg != tt.want {
				t.Errorf("dispatch = %q, %v, want %q, %v", msg, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRegistryOnDragBindsBothSlots(t *testing.T) {
	r := NewRegistry[string]().OnDrag(ButtonLeft,
		func(DragContext) string { return "drag" },
		func(DragContext) string { return "dragEnd" })

	if msg, _ := r.dispatch(Gesture{Kind: GestureDrag, Drag: DragContext{Button: ButtonLeft}}); msg != "drag" {
		t.Errorf("drag dispatch = %q", msg)
	}
	if msg, _ := r.dispatch(Gesture{Kind: GestureDragEnd, Drag: DragContext{Button: ButtonLeft}}); msg != "dragEnd" {
		t.Errorf("dragEnd dispatch = %q", msg)
	}
	// DragStart was not bound by OnDrag.
	if _, ok := r.dispatch(Gesture{Kind: GestureDragStart, Drag: DragContext{Button: ButtonLeft}}); ok {
		t.Error("OnDrag bound the drag-start slot")
	}
}

func TestRegistryNilDragEnd(t *testing.T) {
	r := NewRegistry[string]().OnDrag(ButtonLeft,
		func(DragContext) string { return "drag" }, nil)

	if _, ok := r.dispatch(Gesture{Kind: GestureDragEnd, Drag: DragContext{Button: ButtonLeft}}); ok {
		t.Error("nil dragEnd slot dispatched")
	}
}

func TestRegistryEngineWideSlots(t *testing.T) {
	r := NewRegistry[string]().
		OnWheel(func(WheelContext) string { return "wheel" }).
		OnPinch(func(PinchContext) string { return "pinch" }).
		OnMove(func(MoveContext) string { return "move" })

	cases := []struct {
		g    Gesture
		want string
	}{
		{Gesture{Kind: GestureWheel}, "wheel"},
		{Gesture{Kind: GesturePinch}, "pinch"},
		{Gesture{Kind: GestureMove}, "move"},
	}
	for _, c := range cases {
		if msg, ok := r.dispatch(c.g); !ok || msg != c.want {
			t.Errorf("dispatch(%v) = %q, %v", c.g.Kind, msg, ok)
		}
	}
}
