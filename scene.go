package aspen

import "github.com/tanema/gween/ease"

// Msg is a deferred scene mutation produced by a gesture handler. The engine
// returns messages; the scene applies them in order.
type Msg func(*Scene)

// Scene composes the gesture engine, a set of entities, and an animated
// camera into one interactive canvas. Default interactions:
//
//   - left-drag on an entity moves it; left-drag on empty canvas pans
//   - left-click toggles entity selection; clicking empty canvas clears it
//   - double-click zooms the camera to the entity (or resets over canvas)
//   - wheel and pinch zoom around the cursor/midpoint
type Scene struct {
	Camera *Camera

	cfg      Config
	engine   *Engine[Msg]
	anim     Animator[Scene]
	entities []Entity
	hovered  EntityID
}

// NewScene creates a scene with the given configuration and viewport.
func NewScene(cfg Config, viewport Rect) *Scene {
	s := &Scene{
		Camera: NewCamera(viewport),
		cfg:    cfg,
	}
	s.engine = NewEngine(cfg, s.registry())

	anim := Animate(Animator[Scene]{},
		func(sc *Scene) *Timeline[Vec2] { return sc.Camera.scrollTL },
		func(sc *Scene, v Vec2) { sc.Camera.SetCenter(v) })
	s.anim = Animate(anim,
		func(sc *Scene) *Timeline[float64] { return sc.Camera.zoomTL },
		func(sc *Scene, z float64) { sc.Camera.SetZoom(z) })
	return s
}

// registry wires the scene's default gesture bindings.
func (s *Scene) registry() Registry[Msg] {
	return NewRegistry[Msg]().
		OnClick(ButtonLeft, func(c ClickContext) Msg {
			return func(sc *Scene) { sc.toggleSelect(c.Bound) }
		}).
		OnDoubleClick(ButtonLeft, func(c ClickContext) Msg {
			return func(sc *Scene) { sc.focus(c.Bound) }
		}).
		OnDrag(ButtonLeft,
			func(c DragContext) Msg {
				return func(sc *Scene) { sc.dragStep(c) }
			},
			func(c DragContext) Msg {
				return func(*Scene) {} // nothing to finalize
			}).
		OnMove(func(c MoveContext) Msg {
			return func(sc *Scene) { sc.hovered = boundID(c.Bound) }
		}).
		OnWheel(func(c WheelContext) Msg {
			return func(sc *Scene) { sc.Camera.ZoomAt(c.Pos, c.Scale) }
		}).
		OnPinch(func(c PinchContext) Msg {
			return func(sc *Scene) { sc.Camera.ZoomAt(c.Midpoint, c.Scale) }
		})
}

// Engine exposes the underlying gesture engine, e.g. to attach a custom
// registry or enable tracing.
func (s *Scene) Engine() *Engine[Msg] {
	return s.engine
}

// Add appends an entity. Later entities are topmost for hit testing.
func (s *Scene) Add(e Entity) {
	s.entities = append(s.entities, e)
}

// Entity returns the entity with the given id, or nil.
func (s *Scene) Entity(id EntityID) Entity {
	for _, e := range s.entities {
		if e.ID() == id {
			return e
		}
	}
	return nil
}

// Entities returns the entities in paint order (topmost last).
func (s *Scene) Entities() []Entity {
	return s.entities
}

// Hovered returns the entity currently under a hovering pointer, or
// CanvasBound.
func (s *Scene) Hovered() EntityID {
	return s.hovered
}

// EntityAt returns the topmost entity whose view contains the world point,
// or nil.
func (s *Scene) EntityAt(world Vec2) Entity {
	for i := len(s.entities) - 1; i >= 0; i-- {
		e := s.entities[i]
		local := world.Sub(e.Position())
		if e.View().Contains(local.X, local.Y) {
			return e
		}
	}
	return nil
}

// Bind is the scene's hit-test decoder: it maps a screen position to the
// bound value of the topmost entity there, falling back to CanvasBound.
func (s *Scene) Bind(screen Vec2) any {
	wx, wy := s.Camera.ScreenToWorld(screen.X, screen.Y)
	if e := s.EntityAt(Vec2{wx, wy}); e != nil {
		return e.ID()
	}
	return CanvasBound
}

// Handle processes one normalized event and applies the resulting scene
// mutations.
func (s *Scene) Handle(ev Event) {
	for _, msg := range s.engine.Handle(ev) {
		msg(s)
	}
}

// HandleRaw decodes and processes a raw platform payload. Decode errors are
// returned and leave the scene untouched.
func (s *Scene) HandleRaw(kind EventKind, payload []byte, bind Binder) error {
	msgs, err := s.engine.HandleRaw(kind, payload, bind)
	if err != nil {
		return err
	}
	for _, msg := range msgs {
		msg(s)
	}
	return nil
}

// Active reports whether any camera or entity animation is in flight. While
// false, no frame-tick subscription is needed.
func (s *Scene) Active() bool {
	if s.anim.Active(s) {
		return true
	}
	for _, e := range s.entities {
		if e.Animating() {
			return true
		}
	}
	return false
}

// Step advances all in-flight animations to nowMs.
func (s *Scene) Step(nowMs float64) {
	s.anim.Step(nowMs, s)
	for _, e := range s.entities {
		e.Step(nowMs)
	}
}

// dragStep moves the dragged entity, or pans the camera when the drag began
// on empty canvas. Drag deltas arrive in screen pixels.
func (s *Scene) dragStep(c DragContext) {
	if id := boundID(c.Bound); id != CanvasBound {
		if e := s.Entity(id); e != nil {
			e.MoveBy(c.Delta.Scale(1 / s.Camera.Zoom))
			return
		}
	}
	s.Camera.Pan(c.Delta.Scale(-1))
}

// toggleSelect flips selection on the clicked entity; a click on empty
// canvas clears all selection.
func (s *Scene) toggleSelect(bound any) {
	id := boundID(bound)
	if id == CanvasBound {
		for _, e := range s.entities {
			e.SetSelected(false)
		}
		return
	}
	if e := s.Entity(id); e != nil {
		e.SetSelected(!e.Selected())
	}
}

// focus starts the zoom-to-target camera transition: center on the entity's
// bounding box and zoom in. Double-clicking empty canvas eases back to the
// default zoom.
func (s *Scene) focus(bound any) {
	easing := Ease(ease.OutQuad)
	if e := s.Entity(boundID(bound)); e != nil {
		bb := e.BBox()
		center := Vec2{bb.X + bb.Width/2, bb.Y + bb.Height/2}
		s.Camera.ScrollTo(center, s.cfg.FocusDurationMs, easing)
		s.Camera.ZoomTo(s.cfg.FocusZoom, s.cfg.FocusDurationMs, easing)
		return
	}
	s.Camera.ZoomTo(1.0, s.cfg.FocusDurationMs, easing)
}

// boundID extracts an EntityID from an opaque bound value.
func boundID(bound any) EntityID {
	if id, ok := bound.(EntityID); ok {
		return id
	}
	return CanvasBound
}
