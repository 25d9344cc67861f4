package controller

import (
	"sync"

	"github.com/gorilla/websocket"
)

// wsSurface adapts a websocket connection to the surface interface: the
// attached client receives full documents as LOAD frames and command
// scripts as EVAL frames.
type wsSurface struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func newWSSurface(conn *websocket.Conn) *wsSurface {
	return &wsSurface{conn: conn}
}

func (s *wsSurface) send(output *Output) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.conn.WriteJSON(output)
}

func (s *wsSurface) Load(document string) error {
	return s.send(&Output{
		Type: "LOAD",
		Payload: map[string]any{
			"document": document,
		},
	})
}

func (s *wsSurface) Eval(script string) error {
	return s.send(&Output{
		Type: "EVAL",
		Payload: map[string]any{
			"script": script,
		},
	})
}

func (s *wsSurface) Close() error {
	return s.conn.Close()
}
