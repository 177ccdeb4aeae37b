package hub

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/onlybot12/costumer-service/internal/domain"
)

// Client mediates between one WebSocket connection and the Hub.
type Client struct {
	ID   string
	Hub  *Hub
	Conn *websocket.Conn
	Send chan []byte // outbound event queue
}

// readPump reads events from the WebSocket into the hub's event channel.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		var req domain.WebSocketMessage
		if err := c.Conn.ReadJSON(&req); err != nil {
			logrus.WithField("connection", c.ID).Debugf("readPump: %v", err)
			break
		}
		c.Hub.events <- &ClientRequest{Client: c, Message: req}
	}
}

// writePump drains the Send channel into the WebSocket.
func (c *Client) writePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logrus.WithField("connection", c.ID).Debugf("writePump: %v", err)
			return
		}
	}
}

// sendEvent queues an outbound event for this connection. Events are
// dropped rather than blocking when the queue is full or already closed.
func (c *Client) sendEvent(eventType string, payload interface{}) {
	msg, err := json.Marshal(domain.WebSocketMessage{Type: eventType, Payload: payload})
	if err != nil {
		return
	}
	select {
	case c.Send <- msg:
	default:
		logrus.WithField("connection", c.ID).Debug("send buffer full, dropping event")
	}
}
