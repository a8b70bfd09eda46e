// Package ws pushes task list changes to websocket clients.
package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"

	"tasklist/internal/domain"
	"tasklist/internal/http/dto"
)

const writeTimeout = 5 * time.Second

// EventSnapshot is the kind sent to a client right after it connects.
const EventSnapshot = "snapshot"

type SnapshotSource interface {
	Snapshot() domain.Snapshot
}

type client struct {
	conn *websocket.Conn
	id   string

	// mu orders writes so the initial snapshot precedes any broadcast
	mu sync.Mutex
}

type Hub struct {
	src    SnapshotSource
	logger *slog.Logger

	clients sync.Map
	nextID  atomic.Int64
	count   atomic.Int64
}

func NewHub(src SnapshotSource, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{src: src, logger: logger.With(slog.String("component", "ws"))}
}

// ServeHTTP upgrades the request, sends the current snapshot and then
// keeps the connection open until the client goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.logger.Warn("websocket accept failed", slog.Any("err", err))
		return
	}

	c := &client{conn: conn, id: fmt.Sprintf("ws-%d", h.nextID.Add(1))}

	c.mu.Lock()
	h.clients.Store(c.id, c)
	h.count.Add(1)
	initial := dto.EventResponse{Kind: EventSnapshot, Snapshot: dto.Snapshot(h.src.Snapshot())}
	err = h.writeLocked(r.Context(), c, initial)
	c.mu.Unlock()
	if err != nil {
		h.drop(c)
		return
	}
	h.logger.Debug("client connected", slog.String("client", c.id))

	defer func() {
		h.drop(c)
		h.logger.Debug("client disconnected", slog.String("client", c.id))
	}()

	// clients only listen; CloseRead handles control frames for us
	ctx := conn.CloseRead(r.Context())
	<-ctx.Done()
}

// Broadcast sends ev to every connected client. Clients that fail to
// receive it are disconnected.
func (h *Hub) Broadcast(ev domain.Event) {
	msg := dto.Event(ev)

	h.clients.Range(func(_, value any) bool {
		c := value.(*client)
		if err := h.write(context.Background(), c, msg); err != nil {
			h.logger.Warn("websocket write failed", slog.String("client", c.id), slog.Any("err", err))
			h.drop(c)
		}
		return true
	})
}

func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.clients.Range(func(_, value any) bool {
		h.drop(value.(*client))
		return true
	})
}

func (h *Hub) write(ctx context.Context, c *client, v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return h.writeLocked(ctx, c, v)
}

func (h *Hub) writeLocked(ctx context.Context, c *client, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return c.conn.Write(ctx, websocket.MessageText, data)
}

func (h *Hub) drop(c *client) {
	if _, loaded := h.clients.LoadAndDelete(c.id); loaded {
		h.count.Add(-1)
		c.conn.CloseNow()
	}
}
