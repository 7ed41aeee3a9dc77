package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const wsWriteTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Доступ уже ограничен API-ключом, Origin не проверяем
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Subscribe to change notifications
// @Description Upgrade to a WebSocket and receive change and heartbeat events. Events carry no payload; clients re-fetch state on change. Requires API key.
// @Tags State
// @Security ApiKeyAuth
// @Success 101 "Switching Protocols"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /ws/monitor [get]
func (h *Handler) monitorWS(c *gin.Context) {
	log := h.logger.WithField("method", "monitorWS")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)
	defer conn.Close()

	// Читающая горутина нужна только чтобы заметить закрытие со стороны клиента
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(ev); err != nil {
				log.WithError(err).Debug("WebSocket write failed, dropping subscriber")
				return
			}
		}
	}
}
