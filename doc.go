// Package aspen turns streams of low-level pointer events into high-level
// gestures for interactive 2D canvases, and drives smooth camera transitions
// with a small generic animation-timeline engine.
//
// The gesture pipeline is: raw payload → decode → pointer tracker → gesture
// classifier → handler registry → caller messages. Per-contact state tracking
// disambiguates clicks, double clicks, drags, pinches, wheel zooms, and hover
// moves across any number of simultaneous contacts.
//
// # Quick start
//
// Build a registry, attach it to an engine, and feed it events:
//
//	reg := aspen.NewRegistry[string]().
//		OnClick(aspen.ButtonLeft, func(c aspen.ClickContext) string {
//			return fmt.Sprintf("clicked %v", c.Bound)
//		}).
//		OnDrag(aspen.ButtonLeft,
//			func(c aspen.DragContext) string { return "drag" },
//			func(c aspen.DragContext) string { return "drop" })
//
//	engine := aspen.NewEngine(aspen.DefaultConfig(), reg)
//	msgs := engine.Handle(ev)
//
// [Scene] bundles the engine with entities and an animated [Camera] into a
// ready-made pannable, zoomable canvas:
//
//	scene := aspen.NewScene(aspen.DefaultConfig(), aspen.Rect{Width: 640, Height: 480})
//	scene.Add(aspen.NewBox(1, aspen.Vec2{X: 100, Y: 100}, 60, 60))
//
// # Event sources
//
// Two attachment modes feed the same pipeline. [PollSource] polls Ebitengine
// mouse/touch/wheel state each frame (element-scoped). [WSServer] accepts raw
// JSON events over a websocket from an external transport (document-scoped),
// which keeps a drag alive after it leaves the original surface.
//
// # Animation
//
// [Timeline] interpolates any typed value from start to end over a fixed
// duration with an easing function; the [gween] easing library plugs in via
// [Ease]. [Animator] aggregates timelines bound inside a host state object
// and gates the per-frame tick subscription: ticks run only while something
// is animating.
//
// Gestures can also be bridged into an ECS world via the [Donburi] adapter in
// aspen/ecs.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package aspen
