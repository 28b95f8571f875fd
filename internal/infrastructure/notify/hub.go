package notify

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"alumninet/internal/core/domain"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Should be configured properly for production
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Hub fans events out to connected WebSocket clients. One connection per
// user; a reconnect replaces the previous connection.
type Hub struct {
	connections map[domain.UserID]*websocket.Conn
	mu          sync.RWMutex

	writeTimeout time.Duration

	logger *zap.SugaredLogger
}

func NewHub(logger *zap.SugaredLogger) *Hub {
	return &Hub{
		connections:  make(map[domain.UserID]*websocket.Conn),
		writeTimeout: 10 * time.Second,
		logger:       logger,
	}
}

func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Errorw("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	userID := domain.UserID(r.URL.Query().Get("userId"))
	if userID == "" {
		h.logger.Warn("missing userId in query parameters")
		return
	}

	h.mu.Lock()
	if existing, ok := h.connections[userID]; ok && existing != nil {
		existing.Close()
		h.logger.Infow("closing old connection for reconnecting user", "user_id", userID)
	}
	h.connections[userID] = conn
	h.mu.Unlock()

	h.logger.Infow("client connected", "user_id", userID)

	defer func() {
		h.mu.Lock()
		if h.connections[userID] == conn {
			delete(h.connections, userID)
		}
		h.mu.Unlock()
		h.logger.Infow("client disconnected", "user_id", userID)
	}()

	// Drain the connection; clients only receive.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Dispatch routes an event to the clients that should see it.
func (h *Hub) Dispatch(event *Event) error {
	switch event.Type {
	case EventMessageCreated:
		var msg domain.Message
		if err := json.Unmarshal(event.Payload, &msg); err != nil {
			return err
		}
		h.send(msg.ReceiverID, event)
		h.send(msg.SenderID, event)
	default:
		h.logger.Debugw("ignoring event", "type", event.Type)
	}
	return nil
}

func (h *Hub) send(userID domain.UserID, event *Event) {
	h.mu.RLock()
	conn, ok := h.connections[userID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
	if err := conn.WriteJSON(event); err != nil {
		h.logger.Warnw("failed to deliver event",
			"user_id", userID,
			"type", event.Type,
			"error", err,
		)
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

func (h *Hub) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "healthy",
		"clients": h.ClientCount(),
	})
}
