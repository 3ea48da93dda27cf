package aspen

import "time"

// Arity is the number of simultaneously tracked contacts, used to select
// single-contact (drag/click) vs dual-contact (pinch) classification.
type Arity uint8

const (
	NoContact Arity = iota
	OneContact
	TwoContact
)

// pointerState is the per-contact state for one active PointerID. It is
// created on the first down event for the id and destroyed by the matching
// up or by a global cancel. dragging transitions false→true at most once
// while the contact stays down.
type pointerState struct {
	start    Vec2
	last     Vec2
	bound    any
	dragging bool
	button   MouseButton
	downAt   time.Time
}

// tracker maintains the map from pointer id to per-contact state and the
// derived contact arity.
type tracker struct {
	pointers map[PointerID]*pointerState
	arity    Arity
}

func newTracker() tracker {
	return tracker{pointers: make(map[PointerID]*pointerState)}
}

// down inserts state for id and recomputes the arity from the size
// transition.
func (t *tracker) down(id PointerID, pos Vec2, button MouseButton, bound any, now time.Time) {
	before := len(t.pointers)
	t.pointers[id] = &pointerState{
		start:  pos,
		last:   pos,
		bound:  bound,
		button: button,
		downAt: now,
	}
	t.reclassify(before, len(t.pointers))
}

// up removes state for id. The arity rule is applied to the post-removal
// size. Removing an unknown id leaves the map untouched but still
// reclassifies, which is a no-op transition.
func (t *tracker) up(id PointerID) {
	before := len(t.pointers)
	delete(t.pointers, id)
	t.reclassify(before, len(t.pointers))
}

// move updates the last-known position for id. A move for an unknown id is a
// benign no-op: platform event ordering is not fully reliable.
func (t *tracker) move(id PointerID, pos Vec2) {
	if ps, ok := t.pointers[id]; ok {
		ps.last = pos
	}
}

// cancelAll clears all tracked state. Used for platform-level cancel, which
// carries no per-pointer information.
func (t *tracker) cancelAll() {
	clear(t.pointers)
	t.arity = NoContact
}

// get returns the state for id, if tracked.
func (t *tracker) get(id PointerID) (*pointerState, bool) {
	ps, ok := t.pointers[id]
	return ps, ok
}

// other returns the id and state of the contact that is not id. Valid only
// when exactly two contacts are tracked.
func (t *tracker) other(id PointerID) (PointerID, *pointerState, bool) {
	if len(t.pointers) != 2 {
		return 0, nil, false
	}
	for oid, ps := range t.pointers {
		if oid != id {
			return oid, ps, true
		}
	}
	return 0, nil, false
}

// reclassify derives the arity from a size transition. Transitions outside
// the expected table come from duplicate or out-of-order platform events;
// rather than guess, all state is dropped and the arity reset.
func (t *tracker) reclassify(before, after int) {
	switch {
	case after == 0:
		t.arity = NoContact
	case after == 1 && before <= 2:
		t.arity = OneContact
	case after == 2 && before >= 1 && before <= 2:
		t.arity = TwoContact
	default:
		t.cancelAll()
	}
}
