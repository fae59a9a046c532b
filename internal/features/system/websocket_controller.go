package system

import (
	"encoding/json"

	"studio-crm/internal/store"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// WebSocketController streams the aggregate to connected UIs: the current
// snapshot on connect, then one message per mutation.
type WebSocketController struct {
	Store  *store.Store
	Logger *zap.Logger
}

func NewWebSocketController(s *store.Store, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{Store: s, Logger: logger}
}

func (h *WebSocketController) HandleWebSocket(c *websocket.Conn) {
	send := func(data interface{}) error {
		raw, err := json.Marshal(data)
		if err != nil {
			return err
		}
		return c.WriteMessage(websocket.TextMessage, raw)
	}

	if err := send(h.Store.Snapshot()); err != nil {
		h.Logger.Warn("websocket write failed", zap.Error(err))
		return
	}

	snapshots, unsubscribe := h.Store.Subscribe()
	defer unsubscribe()

	for snapshot := range snapshots {
		if err := send(snapshot); err != nil {
			h.Logger.Debug("websocket client gone", zap.Error(err))
			return
		}
	}
}
