package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/onlybot12/costumer-service/internal/hub"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebsocketHandler handles WebSocket connection requests.
type WebsocketHandler struct {
	hub *hub.Hub
}

// NewWebsocketHandler creates a new WebsocketHandler.
func NewWebsocketHandler(h *hub.Hub) *WebsocketHandler {
	return &WebsocketHandler{hub: h}
}

// HandleConnection upgrades GET /ws and hands the connection to the hub.
// Customers and agents identify themselves afterwards with their join event.
func (h *WebsocketHandler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.Debugf("upgrade: %v", err)
		return
	}
	h.hub.ServeWs(conn)
}
