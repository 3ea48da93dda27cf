package aspen

import (
	"encoding/json"
	"fmt"
)

// Binder maps a raw event's target chain (innermost element first) to an
// opaque bound value identifying what was hit.
type Binder func(chain []string) any

// ChainBinder returns a Binder that walks the target chain outward until it
// finds an element present in marks, falling back to root when no element
// matches.
func ChainBinder(marks map[string]any, root any) Binder {
	return func(chain []string) any {
		for _, el := range chain {
			if v, ok := marks[el]; ok {
				return v
			}
		}
		return root
	}
}

// DecodeError reports a malformed raw event payload. A decode error never
// mutates tracker state; the triggering event is a no-op.
type DecodeError struct {
	Kind  EventKind
	Field string
	Cause error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("aspen: decode event kind %d: %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("aspen: decode event kind %d: missing field %q", e.Kind, e.Field)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// rawPointer is the wire shape of pointer and click events. Pointer fields so
// that absent keys are distinguishable from zero values.
type rawPointer struct {
	PointerID *int     `json:"pointerId"`
	Button    *int     `json:"button"`
	ClientX   *float64 `json:"clientX"`
	ClientY   *float64 `json:"clientY"`
	Detail    *int     `json:"detail"`
	Target    []string `json:"target"`
}

// rawWheel is the wire shape of wheel events.
type rawWheel struct {
	ClientX   *float64 `json:"clientX"`
	ClientY   *float64 `json:"clientY"`
	DeltaY    *float64 `json:"deltaY"`
	DeltaMode *int     `json:"deltaMode"`
}

// DecodeEvent decodes a raw platform payload into a normalized Event.
// Missing or malformed fields yield a *DecodeError; fields are never
// default-substituted. bind may be nil, in which case Bound is left nil.
func DecodeEvent(kind EventKind, data []byte, bind Binder) (Event, error) {
	switch kind {
	case EventPointerCancel:
		// Cancel carries no per-pointer information.
		return Event{Kind: EventPointerCancel}, nil
	case EventWheel:
		return decodeWheel(data)
	case EventPointerDown, EventPointerUp, EventPointerMove, EventPointerLeave, EventClick:
		return decodePointer(kind, data, bind)
	default:
		return Event{}, &DecodeError{Kind: kind, Cause: fmt.Errorf("unknown event kind %d", kind)}
	}
}

func decodePointer(kind EventKind, data []byte, bind Binder) (Event, error) {
	var raw rawPointer
	if err := json.Unmarshal(data, &raw); err != nil {
		return Event{}, &DecodeError{Kind: kind, Cause: err}
	}
	switch {
	case raw.PointerID == nil:
		return Event{}, &DecodeError{Kind: kind, Field: "pointerId"}
	case raw.Button == nil:
		return Event{}, &DecodeError{Kind: kind, Field: "button"}
	case raw.ClientX == nil:
		return Event{}, &DecodeError{Kind: kind, Field: "clientX"}
	case raw.ClientY == nil:
		return Event{}, &DecodeError{Kind: kind, Field: "clientY"}
	case kind == EventClick && raw.Detail == nil:
		return Event{}, &DecodeError{Kind: kind, Field: "detail"}
	}

	ev := Event{
		Kind:    kind,
		Pointer: PointerID(*raw.PointerID),
		Button:  MouseButton(*raw.Button),
		Pos:     Vec2{*raw.ClientX, *raw.ClientY},
	}
	if raw.Detail != nil {
		ev.Times = *raw.Detail
	}
	if bind != nil {
		ev.Bound = bind(raw.Target)
	}
	return ev, nil
}

func decodeWheel(data []byte) (Event, error) {
	var raw rawWheel
	if err := json.Unmarshal(data, &raw); err != nil {
		return Event{}, &DecodeError{Kind: EventWheel, Cause: err}
	}
	switch {
	case raw.ClientX == nil:
		return Event{}, &DecodeError{Kind: EventWheel, Field: "clientX"}
	case raw.ClientY == nil:
		return Event{}, &DecodeError{Kind: EventWheel, Field: "clientY"}
	case raw.DeltaY == nil:
		return Event{}, &DecodeError{Kind: EventWheel, Field: "deltaY"}
	case raw.DeltaMode == nil:
		return Event{}, &DecodeError{Kind: EventWheel, Field: "deltaMode"}
	}

	return Event{
		Kind:       EventWheel,
		Pos:        Vec2{*raw.ClientX, *raw.ClientY},
		WheelDelta: *raw.DeltaY,
		WheelMode:  WheelMode(*raw.DeltaMode),
	}, nil
}
