package aspen

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// wireEnvelope is the discriminator of a transport message. The raw payload
// fields sit alongside "t" in the same object.
type wireEnvelope struct {
	T string `json:"t"`
}

// kindFromWire maps a wire type tag to an event kind.
func kindFromWire(t string) (EventKind, bool) {
	switch t {
	case "down":
		return EventPointerDown, true
	case "up":
		return EventPointerUp, true
	case "move":
		return EventPointerMove, true
	case "leave":
		return EventPointerLeave, true
	case "cancel":
		return EventPointerCancel, true
	case "click":
		return EventClick, true
	case "wheel":
		return EventWheel, true
	}
	return 0, false
}

// DecodeWireEvent decodes one transport message, e.g.
//
//	{"t":"down","pointerId":1,"button":0,"clientX":10,"clientY":20,"target":["entity-3"]}
//
// into a normalized Event using the same defensive decoding as element input.
func DecodeWireEvent(data []byte, bind Binder) (Event, error) {
	var env wireEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Event{}, &DecodeError{Cause: err}
	}
	kind, ok := kindFromWire(env.T)
	if !ok {
		return Event{}, &DecodeError{Cause: fmt.Errorf("unknown event type %q", env.T)}
	}
	return DecodeEvent(kind, data, bind)
}

// WSServer is the document-scoped attachment mode: an external transport
// delivers raw events over a websocket, so a drag that leaves the original
// surface keeps being tracked. Decoded events are delivered on Events and
// drained by the application's single event loop; decode failures are
// surfaced on Errors without touching engine state.
//
// Only one connection is held at a time; a new connection replaces the
// previous one.
type WSServer struct {
	bind     Binder
	upgrader websocket.Upgrader
	events   chan Event
	errs     chan error

	mu   sync.Mutex
	conn *websocket.Conn
}

// NewWSServer creates a websocket event server. bind attaches hit-test
// payloads from each message's target chain and may be nil.
func NewWSServer(bind Binder) *WSServer {
	return &WSServer{
		bind: bind,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		events: make(chan Event, 64),
		errs:   make(chan error, 16),
	}
}

// Events returns the stream of decoded input events.
func (s *WSServer) Events() <-chan Event {
	return s.events
}

// Errors returns the stream of decode failures. Entries are dropped if the
// consumer falls behind; decode errors are diagnostic, never fatal.
func (s *WSServer) Errors() <-chan error {
	return s.errs
}

// ServeHTTP upgrades the connection and reads raw events until it closes.
func (s *WSServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.acceptConn(conn)
	s.readLoop(conn)
}

// acceptConn installs conn as the active connection, closing any previous
// one.
func (s *WSServer) acceptConn(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		_ = s.conn.Close()
	}
	s.conn = conn
}

// Close shuts down the active connection, if any.
func (s *WSServer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}
}

func (s *WSServer) readLoop(conn *websocket.Conn) {
	defer func() {
		s.mu.Lock()
		if s.conn == conn {
			s.conn = nil
		}
		s.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		ev, err := DecodeWireEvent(data, s.bind)
		if err != nil {
			select {
			case s.errs <- err:
			default:
			}
			continue
		}
		s.events <- ev
	}
}
