package ecs

import (
	"testing"

	"github.com/korvid/aspen"

	"github.com/yohamta/donburi"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_Emit(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []aspen.Gesture
	GestureEventType.Subscribe(world, func(w donburi.World, g aspen.Gesture) {
		received = append(received, g)
	})

	store.Emit(aspen.Gesture{
		Kind: aspen.GestureClick,
		Click: aspen.ClickContext{
			Pos:    aspen.Vec2{X: 100, Y: 200},
			Button: aspen.ButtonLeft,
			Bound:  aspen.EntityID(42),
			Times:  1,
		},
	})
	store.Emit(aspen.Gesture{
		Kind:  aspen.GesturePinch,
		Pinch: aspen.PinchContext{Scale: 2.0, Midpoint: aspen.Vec2{X: 50, Y: 50}},
	})

	// Events are queued — process them.
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 gestures, got %d", len(received))
	}

	g0 := received[0]
	if g0.Kind != aspen.GestureClick || g0.Click.Bound != aspen.EntityID(42) {
		t.Errorf("gesture 0: %+v", g0)
	}
	if g0.Click.Pos.X != 100 || g0.Click.Pos.Y != 200 {
		t.Errorf("gesture 0 position: %+v", g0.Click.Pos)
	}

	g1 := received[1]
	if g1.Kind != aspen.GesturePinch || g1.Pinch.Scale != 2.0 {
		t.Errorf("gesture 1: %+v", g1)
	}
}

func TestDonburiStore_EngineIntegration(t *testing.T) {
	world := donburi.NewWorld()

	engine := aspen.NewEngine(aspen.DefaultConfig(), aspen.NewRegistry[struct{}]())
	engine.SetGestureStore(NewDonburiStore(world))

	var kinds []aspen.GestureKind
	GestureEventType.Subscribe(world, func(w donburi.World, g aspen.Gesture) {
		kinds = append(kinds, g.Kind)
	})

	// Down then up: both forwarded even with no handlers registered.
	engine.Handle(aspen.Event{Kind: aspen.EventPointerDown, Pointer: 1, Button: aspen.ButtonLeft, Pos: aspen.Vec2{X: 5, Y: 5}})
	engine.Handle(aspen.Event{Kind: aspen.EventPointerUp, Pointer: 1, Pos: aspen.Vec2{X: 5, Y: 5}})
	GestureEventType.ProcessEvents(world)

	want := []aspen.GestureKind{aspen.GesturePointerDown, aspen.GesturePointerUp}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d gestures, got %d: %v", len(want), len(kinds), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("gesture %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}
