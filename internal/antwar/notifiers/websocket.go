// Package notifiers carries the world's snapshots to external renderers.
package notifiers

import (
	"sync"
	"time"

	"github.com/daniacca/antwar/internal/antwar"
	"github.com/gorilla/websocket"
)

// SnapshotBroadcaster fans per-phase snapshots out to connected WebSocket
// clients. It implements antwar.Observer: the handoff from the simulation is
// a non-blocking enqueue, and frames are dropped when the queue is full —
// a renderer that falls behind just misses frames, the simulation never
// waits for it.
type SnapshotBroadcaster struct {
	mu         sync.RWMutex
	clients    map[*websocket.Conn]bool
	upgrader   websocket.Upgrader
	broadcast  chan antwar.Snapshot
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	wg         sync.WaitGroup
	logger     antwar.Logger
}

// NewSnapshotBroadcaster creates a broadcaster and starts its hub goroutine.
func NewSnapshotBroadcaster(logger antwar.Logger) *SnapshotBroadcaster {
	if logger == nil {
		logger = antwar.NewNoOpLogger()
	}
	b := &SnapshotBroadcaster{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan antwar.Snapshot, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	b.wg.Add(1)
	go b.run()

	return b
}

// ObservePhase enqueues a snapshot for broadcast without blocking the
// simulation loop.
func (b *SnapshotBroadcaster) ObservePhase(s antwar.Snapshot) {
	select {
	case b.broadcast <- s:
	case <-b.done:
	default:
		b.logger.Debugf("snapshot queue full, dropping frame for tick %d phase %s", s.Tick, s.Phase)
	}
}

// RegisterClient registers a new WebSocket client connection.
func (b *SnapshotBroadcaster) RegisterClient(conn *websocket.Conn) {
	select {
	case b.register <- conn:
	case <-b.done:
		// Broadcaster is closing, ignore
	}
}

// UnregisterClient unregisters a WebSocket client connection.
func (b *SnapshotBroadcaster) UnregisterClient(conn *websocket.Conn) {
	select {
	case b.unregister <- conn:
	case <-b.done:
		// Broadcaster is closing, ignore
	}
}

// ClientCount returns the number of connected clients.
func (b *SnapshotBroadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// run handles client registration/unregistration and frame broadcasting.
func (b *SnapshotBroadcaster) run() {
	defer b.wg.Done()
	for {
		select {
		case <-b.done:
			return

		case conn := <-b.register:
			if conn == nil {
				continue
			}
			b.mu.Lock()
			b.clients[conn] = true
			b.mu.Unlock()

		case conn := <-b.unregister:
			if conn == nil {
				continue
			}
			b.mu.Lock()
			if _, ok := b.clients[conn]; ok {
				delete(b.clients, conn)
				conn.Close()
			}
			b.mu.Unlock()

		case s := <-b.broadcast:
			data, err := antwar.EncodeSnapshotJSON(s)
			if err != nil {
				b.logger.Errorf("cannot encode snapshot: %v", err)
				continue
			}

			// Collect connections first so no lock is held while writing.
			b.mu.RLock()
			conns := make([]*websocket.Conn, 0, len(b.clients))
			for conn := range b.clients {
				conns = append(conns, conn)
			}
			b.mu.RUnlock()

			var toRemove []*websocket.Conn
			for _, conn := range conns {
				conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
				if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
					toRemove = append(toRemove, conn)
					conn.Close()
				}
			}

			if len(toRemove) > 0 {
				b.mu.Lock()
				for _, conn := range toRemove {
					delete(b.clients, conn)
				}
				b.mu.Unlock()
			}
		}
	}
}

// Close closes all client connections and stops the hub goroutine.
func (b *SnapshotBroadcaster) Close() error {
	close(b.done)
	b.wg.Wait()

	b.mu.Lock()
	for conn := range b.clients {
		conn.Close()
		delete(b.clients, conn)
	}
	b.mu.Unlock()

	return nil
}

// Upgrader returns the WebSocket upgrader for HTTP handlers.
func (b *SnapshotBroadcaster) Upgrader() websocket.Upgrader {
	return b.upgrader
}
