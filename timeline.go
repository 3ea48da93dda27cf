package aspen

import "github.com/tanema/gween/ease"

// Easing maps normalized progress in [0, 1] to eased progress. It must
// satisfy easing(0) == 0 and easing(1) == 1 but may overshoot in between.
type Easing func(t float64) float64

// EaseLinear is the identity easing.
func EaseLinear(t float64) float64 { return t }

// Ease adapts a gween easing function, which gives access to the full gween
// easing library (ease.OutQuad, ease.InOutCubic, and so on).
func Ease(fn ease.TweenFunc) Easing {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Interp produces the value at eased progress t between from and to.
type Interp[T any] func(t float64, from, to T) T

// LerpFloat linearly interpolates between two float64 values.
func LerpFloat(t, from, to float64) float64 {
	return from + (to-from)*t
}

// LerpVec2 linearly interpolates between two points.
func LerpVec2(t float64, from, to Vec2) Vec2 {
	return Vec2{
		X: LerpFloat(t, from.X, to.X),
		Y: LerpFloat(t, from.Y, to.Y),
	}
}

// TimelineState is the lifecycle state of a Timeline.
type TimelineState uint8

const (
	// TimelineReady means the timeline has been constructed but not yet
	// advanced by any step.
	TimelineReady TimelineState = iota
	// TimelineRunning means at least one step has been applied and the
	// timeline has not yet completed.
	TimelineRunning
	// TimelineComplete is terminal: the value permanently equals the fully
	// interpolated end value.
	TimelineComplete
)

// Timeline interpolates from a start value to an end value over a fixed
// duration. Value is defined in every state: the start value while Ready, the
// current interpolation while Running, and the exact end-state under the
// easing function once Complete.
type Timeline[T any] struct {
	state      TimelineState
	startMs    float64
	durationMs float64
	easing     Easing
	from, to   T
	interp     Interp[T]
	cur        T
}

// NewTimeline constructs a timeline in the Ready state. A nil easing falls
// back to EaseLinear. The duration is accepted as supplied; a non-positive
// duration completes on the second step.
func NewTimeline[T any](from, to T, durationMs float64, easing Easing, interp Interp[T]) *Timeline[T] {
	if easing == nil {
		easing = EaseLinear
	}
	return &Timeline[T]{
		state:      TimelineReady,
		durationMs: durationMs,
		easing:     easing,
		from:       from,
		to:         to,
		interp:     interp,
		cur:        from,
	}
}

// Step advances the timeline to nowMs. The first step records the start time;
// the step where progress reaches 1 pins the value to interp(easing(1), from,
// to) and the timeline never advances again. Steps past completion are
// no-ops.
func (tl *Timeline[T]) Step(nowMs float64) {
	switch tl.state {
	case TimelineReady:
		tl.state = TimelineRunning
		tl.startMs = nowMs
		tl.cur = tl.from
	case TimelineRunning:
		progress := (nowMs - tl.startMs) / tl.durationMs
		if progress < 1.0 {
			tl.cur = tl.interp(tl.easing(progress), tl.from, tl.to)
		} else {
			tl.cur = tl.interp(tl.easing(1.0), tl.from, tl.to)
			tl.state = TimelineComplete
		}
	case TimelineComplete:
	}
}

// Value returns the timeline's current value. Defined in all states.
func (tl *Timeline[T]) Value() T {
	return tl.cur
}

// State returns the lifecycle state.
func (tl *Timeline[T]) State() TimelineState {
	return tl.state
}

// Done reports whether there is nothing left to animate. A nil timeline is
// done.
func (tl *Timeline[T]) Done() bool {
	return tl == nil || tl.state == TimelineComplete
}
