package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatStatus is the lifecycle state of a chat session.
type ChatStatus string

const (
	StatusWaiting              ChatStatus = "waiting"
	StatusActive               ChatStatus = "active"
	StatusEnded                ChatStatus = "ended"
	StatusCustomerDisconnected ChatStatus = "customer_disconnected"
)

// ChatSession is the full record of one customer's support interaction:
// the message log, the customer it belongs to and the agent bound to it.
type ChatSession struct {
	ID        string     `json:"id"`
	Customer  *Customer  `json:"customer"`
	Agent     *Agent     `json:"agent"`
	Messages  []*Message `json:"messages"`
	Status    ChatStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewChatID allocates a globally unique chat id.
func NewChatID() string {
	return "chat_" + uuid.NewString()
}

// NewChatSession creates a waiting session for a customer.
func NewChatSession(id string, customer *Customer) *ChatSession {
	return &ChatSession{
		ID:        id,
		Customer:  customer,
		Messages:  []*Message{},
		Status:    StatusWaiting,
		CreatedAt: time.Now(),
	}
}
