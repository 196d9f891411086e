package gateway

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

const sendBufferSize = 64

// session is one socket connection. State moves Unauthenticated ->
// Authenticated -> Disconnected; a reconnect is always a fresh session.
// userID is written by the connection's own dispatch goroutine only.
type session struct {
	conn   *websocket.Conn
	userID string

	mu     sync.Mutex
	send   chan []byte
	closed bool
}

func newSession(conn *websocket.Conn) *session {
	return &session{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

func (s *session) authenticated() bool {
	return s.userID != ""
}

// push marshals an event envelope into the send buffer. A full buffer drops
// the frame rather than blocking the caller; delivery is at-most-once per
// socket. A closed session drops silently: fan-out may race teardown and a
// stale room snapshot must never crash the process.
func (s *session) push(event string, data interface{}) {
	frame, err := json.Marshal(outEnvelope{Event: event, Data: data})
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	select {
	case s.send <- frame:
	default:
	}
}

// close is idempotent and serialized against push, so the send channel is
// never written after it is closed.
func (s *session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.send)
}

// writePump drains the send buffer into the socket. Runs as the connection's
// single writer goroutine.
func (s *session) writePump() {
	defer s.conn.Close()

	for frame := range s.send {
		if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return
		}
	}
}
