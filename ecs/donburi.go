package ecs

import (
	"github.com/korvid/aspen"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for aspen gestures. Subscribe to
// this in your ECS systems to receive click, drag, pinch, wheel, and hover
// events.
var GestureEventType = events.NewEventType[aspen.Gesture]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates a GestureStore backed by a Donburi world. Gestures
// are published to GestureEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) aspen.GestureStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) Emit(g aspen.Gesture) {
	GestureEventType.Publish(s.world, g)
}
