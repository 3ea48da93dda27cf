// Package ecs provides ECS adapters for aspen's gesture system.
//
// The primary adapter is [NewDonburiStore], which bridges classified gestures
// (clicks, drags, pinches, wheel zooms) into a [Donburi] world as typed
// events. Subscribe to [GestureEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	engine.SetGestureStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
