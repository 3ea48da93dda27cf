package aspen

// binding is one timeline bound inside a host state object.
type binding[S any] struct {
	active func(host *S) bool
	step   func(nowMs float64, host *S)
}

// Animator aggregates named timelines embedded in a host state object and
// decides whether a per-frame tick subscription should be active. It has
// value semantics like Registry: Animate returns a new Animator.
type Animator[S any] struct {
	bindings []binding[S]
}

// Animate registers one more timeline binding. get reads the timeline out of
// the current host state (a nil timeline means nothing is animating for that
// binding); apply writes the timeline's current value back into the host
// after each step and may be nil.
//
// Step applies bindings in registration order, re-reading the host through
// get each time, so later bindings observe earlier bindings' effects within
// the same step.
func Animate[S, T any](a Animator[S], get func(*S) *Timeline[T], apply func(*S, T)) Animator[S] {
	b := binding[S]{
		active: func(host *S) bool {
			return !get(host).Done()
		},
		step: func(nowMs float64, host *S) {
			tl := get(host)
			if tl.Done() {
				return
			}
			tl.Step(nowMs)
			if apply != nil {
				apply(host, tl.Value())
			}
		},
	}
	bindings := make([]binding[S], len(a.bindings), len(a.bindings)+1)
	copy(bindings, a.bindings)
	return Animator[S]{bindings: append(bindings, b)}
}

// Active reports whether any bound timeline is Ready or Running. While false,
// no frame-tick subscription is needed; inactivity is the cancellation
// mechanism.
func (a Animator[S]) Active(host *S) bool {
	for _, b := range a.bindings {
		if b.active(host) {
			return true
		}
	}
	return false
}

// Step advances every bound timeline one step at nowMs, in registration
// order.
func (a Animator[S]) Step(nowMs float64, host *S) {
	for _, b := range a.bindings {
		b.step(nowMs, host)
	}
}
