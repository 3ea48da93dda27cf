package aspen

// PointerID identifies one continuous pointer contact (down to up). IDs are
// supplied by the platform and are unique among currently-active contacts.
type PointerID int

// MouseButton uses the platform's button numbering.
type MouseButton int

const (
	ButtonLeft   MouseButton = 0
	ButtonMiddle MouseButton = 1
	ButtonRight  MouseButton = 2
)

// EventKind discriminates normalized input events.
type EventKind uint8

const (
	EventPointerDown EventKind = iota
	EventPointerUp
	EventPointerMove
	// EventPointerLeave is a synthetic move reported when a tracked pointer
	// leaves the interactive surface while down. A contact that leaves is
	// promoted to dragging regardless of the drag threshold.
	EventPointerLeave
	// EventPointerCancel is a platform-level cancel. It carries no per-pointer
	// information and clears all tracked state.
	EventPointerCancel
	EventClick
	EventWheel
)

// WheelMode is the unit of a wheel event's delta.
type WheelMode int

const (
	WheelPixel WheelMode = 0
	WheelLine  WheelMode = 1
	WheelPage  WheelMode = 2
)

// Event is a normalized input event. Which fields are meaningful depends on
// Kind: pointer events carry Pointer/Button/Pos/Bound, click events add Times,
// wheel events carry Pos/WheelDelta/WheelMode, and cancel carries nothing.
type Event struct {
	Kind    EventKind
	Pointer PointerID
	Button  MouseButton
	Pos     Vec2
	// Bound is the opaque hit-test payload attached by the binder
	// (typically an EntityID).
	Bound any
	// Times is the platform's click repeat count: 1 for a single click,
	// 2 for a double click.
	Times      int
	WheelDelta float64
	WheelMode  WheelMode
}

// GestureKind discriminates classified gestures.
type GestureKind uint8

const (
	GesturePointerDown GestureKind = iota
	GesturePointerUp
	GestureClick
	GestureDoubleClick
	GestureClickAndHold
	GestureDragStart
	GestureDrag
	GestureDragEnd
	GestureMove
	GestureWheel
	GesturePinch
)

// PointerContext carries data for plain pointer down/up gestures.
type PointerContext struct {
	Pointer PointerID
	Pos     Vec2
	Button  MouseButton
	Bound   any
}

// ClickContext carries data for click, double-click, and click-and-hold
// gestures.
type ClickContext struct {
	Pos    Vec2
	Button MouseButton
	Bound  any
	Times  int
}

// DragContext carries data for drag start, drag, and drag end gestures.
// Start is the position where the contact went down; Delta is the movement
// since the previous drag event. IsFirst is true only for the drag emitted by
// the threshold-crossing move itself.
type DragContext struct {
	Pointer PointerID
	Pos     Vec2
	Start   Vec2
	Delta   Vec2
	Button  MouseButton
	Bound   any
	IsFirst bool
}

// PinchContext carries data for a two-contact pinch step. Scale is the ratio
// of the current contact separation to the previous one; two contacts held at
// constant separation produce Scale == 1.
type PinchContext struct {
	Midpoint Vec2
	Scale    float64
}

// WheelContext carries data for a wheel-zoom step. Steps is the normalized
// wheel amount clamped to [-1, 1]; Scale is the multiplicative zoom factor
// derived from it.
type WheelContext struct {
	Pos   Vec2
	Steps float64
	Scale float64
}

// MoveContext carries data for a hover move (no button pressed).
type MoveContext struct {
	Pos   Vec2
	Bound any
}

// Gesture is one classified gesture decision. Exactly one of the context
// fields is meaningful, selected by Kind: Pointer for down/up, Click for
// click/double-click/click-and-hold, Drag for drag start/drag/drag end,
// Pinch, Wheel, and Move for the rest.
type Gesture struct {
	Kind    GestureKind
	Pointer PointerContext
	Click   ClickContext
	Drag    DragContext
	Pinch   PinchContext
	Wheel   WheelContext
	Move    MoveContext
}

// GestureStore is the interface for optional ECS integration. When set on an
// Engine, every classified gesture is forwarded after handler dispatch.
type GestureStore interface {
	Emit(g Gesture)
}
