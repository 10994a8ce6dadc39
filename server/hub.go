package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Snapshot is one tick's worth of world state pushed to subscribers.
type Snapshot struct {
	Tick             int64 `json:"tick"`
	Time             int64 `json:"time"`
	TrackedObstacles []int `json:"trackedObstacles"`
	ActivePaths      int   `json:"activePaths"`
}

// Hub fans tick snapshots out to connected websocket clients.
type Hub struct {
	mu        sync.Mutex
	clients   map[*websocket.Conn]bool
	broadcast chan Snapshot
	done      chan struct{}
}

// NewHub creates an idle hub; call Run to start delivery.
func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan Snapshot, 16),
		done:      make(chan struct{}),
	}
}

// Run delivers broadcasts until Close is called.
func (h *Hub) Run() {
	for {
		select {
		case snap := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				if err := conn.WriteJSON(snap); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		case <-h.done:
			h.mu.Lock()
			for conn := range h.clients {
				conn.Close()
			}
			h.clients = make(map[*websocket.Conn]bool)
			h.mu.Unlock()
			return
		}
	}
}

// Publish queues a snapshot for delivery. Drops the snapshot when the
// delivery channel is full rather than stalling the tick loop.
func (h *Hub) Publish(snap Snapshot) {
	select {
	case h.broadcast <- snap:
	default:
	}
}

// ServeWS upgrades an HTTP request and registers the connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	// Drain reads so close frames are processed; drop the client on error.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.clients, conn)
				h.mu.Unlock()
				conn.Close()
				return
			}
		}
	}()
}

// ClientCount returns the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close stops the hub and disconnects all clients.
func (h *Hub) Close() {
	close(h.done)
}
