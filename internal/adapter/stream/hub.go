package stream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/gorilla/websocket"

	"ecosim/internal/app/ports"
	"ecosim/internal/domain/ecology"
)

// SnapshotFunc loads the current snapshot sent to a new subscriber.
type SnapshotFunc func(ctx context.Context, worldID string) (ecology.Snapshot, error)

// Hub fans world snapshots out to websocket subscribers. It is an
// http.Handler for GET /ws?world=<id> and a ports.SnapshotPublisher.
type Hub struct {
	mu       sync.RWMutex
	subs     map[string]map[*connection]struct{}
	lastTurn map[string]int64
	current  SnapshotFunc
	upgrader websocket.Upgrader
}

func NewHub(current SnapshotFunc) *Hub {
	return &Hub{
		subs:     map[string]map[*connection]struct{}{},
		lastTurn: map[string]int64{},
		current:  current,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	worldID := strings.TrimSpace(r.URL.Query().Get("world"))
	if worldID == "" {
		http.Error(w, "world query parameter is required", http.StatusBadRequest)
		return
	}
	var first []byte
	if h.current != nil {
		snap, err := h.current(r.Context(), worldID)
		if errors.Is(err, ports.ErrNotFound) {
			http.Error(w, "world not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if first, err = encode(worldID, snap); err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		hlog.Warnf("stream: upgrade: %v", err)
		return
	}
	c := newConnection(ws, worldID)
	if first != nil {
		c.send <- first
	}
	h.subscribe(c)
	go c.writePump()
	if h.gone(r.Context(), worldID) {
		// deleted between the first lookup and subscribe; CloseWorld missed it
		h.unsubscribe(c)
	}
	c.readPump(h)
}

func (h *Hub) gone(ctx context.Context, worldID string) bool {
	if h.current == nil {
		return false
	}
	_, err := h.current(ctx, worldID)
	return errors.Is(err, ports.ErrNotFound)
}

// Publish fans snap out to worldID's subscribers. Snapshots older than the
// last one published for the world are dropped.
func (h *Hub) Publish(_ context.Context, worldID string, snap ecology.Snapshot) error {
	msg, err := encode(worldID, snap)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if last, ok := h.lastTurn[worldID]; ok && snap.Turn < last {
		return nil
	}
	h.lastTurn[worldID] = snap.Turn
	for c := range h.subs[worldID] {
		select {
		case c.send <- msg:
		default:
			h.dropLocked(c)
			hlog.Warnf("stream: dropped slow subscriber of world %s", worldID)
		}
	}
	return nil
}

// Subscribers returns the number of live connections for worldID.
func (h *Hub) Subscribers(worldID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[worldID])
}

// CloseWorld disconnects every subscriber of worldID.
func (h *Hub) CloseWorld(worldID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.lastTurn, worldID)
	for c := range h.subs[worldID] {
		h.dropLocked(c)
	}
}

func (h *Hub) subscribe(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.subs[c.worldID]
	if !ok {
		set = map[*connection]struct{}{}
		h.subs[c.worldID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) unsubscribe(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(c)
}

func (h *Hub) dropLocked(c *connection) {
	set, ok := h.subs[c.worldID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.subs, c.worldID)
	}
}

func encode(worldID string, snap ecology.Snapshot) ([]byte, error) {
	return json.Marshal(Message{Type: MessageTypeSnapshot, WorldID: worldID, Payload: snap})
}
