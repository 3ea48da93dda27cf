package aspen

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestDecodeWireEvent(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantKind EventKind
	}{
		{"down", `{"t":"down","pointerId":1,"button":0,"clientX":10,"clientY":20}`, EventPointerDown},
		{"up", `{"t":"up","pointerId":1,"button":0,"clientX":10,"clientY":20}`, EventPointerUp},
		{"move", `{"t":"move","pointerId":1,"button":0,"clientX":11,"clientY":21}`, EventPointerMove},
		{"leave", `{"t":"leave","pointerId":1,"button":0,"clientX":0,"clientY":0}`, EventPointerLeave},
		{"cancel", `{"t":"cancel"}`, EventPointerCancel},
		{"click", `{"t":"click","pointerId":1,"button":0,"clientX":10,"clientY":20,"detail":2}`, EventClick},
		{"wheel", `{"t":"wheel","clientX":10,"clientY":20,"deltaY":50,"deltaMode":0}`, EventWheel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := DecodeWireEvent([]byte(tt.payload), nil)
			if err != nil {
				t.Fatalf("DecodeWireEvent: %v", err)
			}
			if ev.Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", ev.Kind, tt.wantKind)
			}
		})
	}
}

func TestDecodeWireEventUnknownType(t *testing.T) {
	_, err := DecodeWireEvent([]byte(`{"t":"hover"}`), nil)
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("error = %v, want *DecodeError", err)
	}
}

func TestDecodeWireEventMissingField(t *testing.T) {
	_, err := DecodeWireEvent([]byte(`{"t":"down","pointerId":1,"button":0,"clientY":20}`), nil)
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("error = %v, want *DecodeError", err)
	}
	if derr.Field != "clientX" {
		t.Errorf("field = %q, want clientX", derr.Field)
	}
}

func TestWSServerDeliversEvents(t *testing.T) {
	bind := ChainBinder(map[string]any{"box": EntityID(5)}, CanvasBound)
	srv := NewWSServer(bind)
	defer srv.Close()

	ts := httptest.NewServer(srv)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	msg := `{"t":"down","pointerId":1,"button":0,"clientX":10,"clientY":20,"target":["box"]}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case ev := <-srv.Events():
		if ev.Kind != EventPointerDown || ev.Pointer != 1 {
			t.Errorf("event = %+v", ev)
		}
		if ev.Bound != EntityID(5) {
			t.Errorf("bound = %v, want EntityID(5)", ev.Bound)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event delivered")
	}
}

func TestWSServerSurfacesDecodeErrors(t *testing.T) {
	srv := NewWSServer(nil)
	defer srv.Close()

	ts := httptest.NewServer(srv)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Malformed message, then a good one: the bad one must not kill the loop.
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"t":"down"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"t":"cancel"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case err := <-srv.Errors():
		var derr *DecodeError
		if !errors.As(err, &derr) {
			t.Errorf("error = %v, want *DecodeError", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no decode error surfaced")
	}

	select {
	case ev := <-srv.Events():
		if ev.Kind != EventPointerCancel {
			t.Errorf("event after bad message = %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("good event after bad message not delivered")
	}
}
