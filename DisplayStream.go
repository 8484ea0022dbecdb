package main

import (
	"minisheet/contracts"
	"net/http"
	"sync"

	json "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
)

var streamUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// DisplayStream pushes every display update to all connected websocket
// clients. Writes happen from the request goroutine holding the store
// mutex, so one lock of its own is enough to serialize the sockets.
type DisplayStream struct {
	mutex   sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewDisplayStream() *DisplayStream {
	return &DisplayStream{
		clients: map[*websocket.Conn]bool{},
	}
}

func (stream *DisplayStream) Subscribe(w http.ResponseWriter, r *http.Request) error {
	conn, err := streamUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	stream.mutex.Lock()
	stream.clients[conn] = true
	stream.mutex.Unlock()

	// drain control frames; a read error means the client is gone
	go func() {
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				stream.drop(conn)
				return
			}
		}
	}()

	return nil
}

func (stream *DisplayStream) Broadcast(update contracts.DisplayUpdate) {
	payload, err := json.Marshal(update)
	if err != nil {
		return
	}

	stream.mutex.Lock()
	defer stream.mutex.Unlock()

	for conn := range stream.clients {
		if writeErr := conn.WriteMessage(websocket.TextMessage, payload); writeErr != nil {
			_ = conn.Close()
			delete(stream.clients, conn)
		}
	}
}

func (stream *DisplayStream) Close() {
	stream.mutex.Lock()
	defer stream.mutex.Unlock()

	for conn := range stream.clients {
		_ = conn.Close()
		delete(stream.clients, conn)
	}
}

func (stream *DisplayStream) drop(conn *websocket.Conn) {
	stream.mutex.Lock()
	defer stream.mutex.Unlock()

	_ = conn.Close()
	delete(stream.clients, conn)
}
