package realtime

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// wsConn serializes writes to a websocket connection. The registry may fan
// out two broadcasts concurrently and gorilla-style conns forbid concurrent
// writers.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *wsConn) WriteJSON(v interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteJSON(v)
}

// Upgrade gates the websocket route to upgrade requests.
func Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler serves the per-workspace realtime channel. The connection joins
// the workspace's fan-out set for its lifetime; inbound client messages are
// read and discarded. Disconnect triggers leave.
func Handler(registry *Registry, logger *zap.Logger) fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		workspaceID := c.Params("workspace_id")
		conn := &wsConn{conn: c}

		registry.Join(workspaceID, conn)
		logger.Debug("realtime connection joined", zap.String("workspace_id", workspaceID))
		defer func() {
			registry.Leave(workspaceID, conn)
			logger.Debug("realtime connection left", zap.String("workspace_id", workspaceID))
		}()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	})
}
