package stream

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/kino-avatar/kino/internal/model/classroom"
	classroomService "github.com/kino-avatar/kino/internal/service/classroom"
	"github.com/kino-avatar/kino/pkg/utils"
)

const writeWait = 10 * time.Second

// Handler pushes classroom events to browsers over SSE or WebSocket.
type Handler struct {
	hub       *classroomService.Hub
	keepalive time.Duration
	upgrader  websocket.Upgrader
}

// New creates a stream handler. keepalive is the idle interval between
// keepalive events.
func New(hub *classroomService.Hub, keepalive time.Duration) *Handler {
	if keepalive <= 0 {
		keepalive = 30 * time.Second
	}
	return &Handler{
		hub:       hub,
		keepalive: keepalive,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the SSE and WebSocket feeds.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stream", h.handleSSE)
	r.Get("/ws", h.handleWebSocket)
}

func (h *Handler) handleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	utils.SetupSSEHeaders(w)
	w.WriteHeader(http.StatusOK)

	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)
	log.Printf("[sse] subscriber=%s connected", sub.ID)

	if err := utils.SendSSEChunk(w, flusher, classroom.Event{Type: classroom.EventConnected}); err != nil {
		return
	}

	ticker := time.NewTicker(h.keepalive)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		var event classroom.Event
		select {
		case <-ctx.Done():
			log.Printf("[sse] subscriber=%s disconnected", sub.ID)
			return
		case <-ticker.C:
			event = classroom.Event{Type: classroom.EventKeepalive}
		case next, open := <-sub.Events:
			if !open {
				return
			}
			event = next
		}

		if err := utils.SendSSEChunk(w, flusher, event); err != nil {
			log.Printf("[sse] subscriber=%s write failed: %v", sub.ID, err)
			return
		}
	}
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)
	log.Printf("[ws] subscriber=%s connected", sub.ID)

	// The feed is one-way; reading only detects the client closing.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := h.writeEvent(conn, classroom.Event{Type: classroom.EventConnected}); err != nil {
		return
	}

	ticker := time.NewTicker(h.keepalive)
	defer ticker.Stop()

	for {
		var event classroom.Event
		select {
		case <-closed:
			log.Printf("[ws] subscriber=%s disconnected", sub.ID)
			return
		case <-ticker.C:
			event = classroom.Event{Type: classroom.EventKeepalive}
		case next, open := <-sub.Events:
			if !open {
				return
			}
			event = next
		}

		if err := h.writeEvent(conn, event); err != nil {
			log.Printf("[ws] subscriber=%s write failed: %v", sub.ID, err)
			return
		}
	}
}

func (h *Handler) writeEvent(conn *websocket.Conn, event classroom.Event) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(event)
}
