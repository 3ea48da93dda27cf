package aspen

import "time"

// Engine owns the live pointer state, gesture configuration, and the attached
// handler registry for one interactive surface. It is single-threaded: one
// event is fully processed before the next is accepted, so no locking is
// needed.
type Engine[M any] struct {
	class classifier
	reg   Registry[M]
	store GestureStore
}

// NewEngine creates an engine with the given configuration and registry.
// The configuration is not validated; degenerate values (a zero drag
// threshold, say) behave exactly as the classification formulas dictate.
func NewEngine[M any](cfg Config, reg Registry[M]) *Engine[M] {
	return &Engine[M]{
		class: newClassifier(cfg),
		reg:   reg,
	}
}

// Attach replaces the active registry wholesale. Slots not present in the new
// registry fall back to "no handler", never to the previous registry's
// bindings.
func (e *Engine[M]) Attach(reg Registry[M]) {
	e.reg = reg
}

// SetGestureStore sets the optional ECS bridge. Every classified gesture is
// forwarded to the store after handler dispatch, whether or not a handler was
// registered for it.
func (e *Engine[M]) SetGestureStore(store GestureStore) {
	e.store = store
}

// SetDebug enables gesture-classification tracing on stderr.
func (e *Engine[M]) SetDebug(debug bool) {
	e.class.trace = tracefn(debug)
}

// SetNowFunc overrides the clock used for click-and-hold timing.
func (e *Engine[M]) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		e.class.now = fn
	}
}

// Arity returns the current contact-count classification.
func (e *Engine[M]) Arity() Arity {
	return e.class.track.arity
}

// Handle processes one normalized event and returns the messages produced by
// the registered handlers, in classification order.
func (e *Engine[M]) Handle(ev Event) []M {
	gestures := e.class.handle(ev)
	var msgs []M
	for _, g := range gestures {
		if msg, ok := e.reg.dispatch(g); ok {
			msgs = append(msgs, msg)
		}
		if e.store != nil {
			e.store.Emit(g)
		}
	}
	return msgs
}

// HandleRaw decodes a raw platform payload and processes it. A decode error
// is returned to the caller and leaves tracker state untouched; the event is
// a no-op for state-machine purposes.
func (e *Engine[M]) HandleRaw(kind EventKind, payload []byte, bind Binder) ([]M, error) {
	ev, err := DecodeEvent(kind, payload, bind)
	if err != nil {
		return nil, err
	}
	return e.Handle(ev), nil
}

// CancelAll clears all tracked pointer state, abandoning in-flight gestures
// without emitting end events. Equivalent to a platform-level cancel.
func (e *Engine[M]) CancelAll() {
	e.class.track.cancelAll()
}
